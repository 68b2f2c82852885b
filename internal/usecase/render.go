package usecase

import (
	"fmt"
	"strings"

	"shopping-list-bot/internal/domain"
)

const (
	ReactionCreated = "👌"
	ReactionAdded   = "💸"
	ReactionBought  = "✔"

	// AnnouncementFormat takes the author's name. Presenters that support
	// rich text show the name in bold.
	AnnouncementFormat = "%s created a new shopping list!"

	ListTitle  = "Our Shopping List!"
	ListFooter = `To add something to the list, type "-product name"`
	HelpTitle  = "Help is here!"
	HelpText   = `"!shop new" - creates a new empty list` + "\n" +
		`"-product name" - adds a product to the list` + "\n" +
		`"!bought <number>" - removes item <number> from the list.`
)

// Reply is the transport-free rendering of a Result. A zero Reply means
// nothing should be shown to the user.
type Reply struct {
	Reaction     string
	Announcement string
	Author       string
	Title        string
	Text         string
	Footer       string
}

// IsEmpty reports whether the reply has nothing user-visible.
func (r Reply) IsEmpty() bool {
	return r.Reaction == "" && r.Announcement == "" && r.Title == "" && r.Text == ""
}

// RenderList formats items as "{index}) {item}" lines with 1-based indexes.
func RenderList(list domain.List) string {
	var b strings.Builder
	for i, item := range list {
		fmt.Fprintf(&b, "%d) %s\n", i+1, item)
	}
	return b.String()
}

// RenderReply builds what the user sees for res. author is only used in the
// announcement of a new list.
func RenderReply(res Result, author string) Reply {
	switch res.Outcome {
	case OutcomeCreated:
		r := listReply(res.List, ReactionCreated)
		r.Announcement = fmt.Sprintf(AnnouncementFormat, author)
		r.Author = author
		return r
	case OutcomeAdded:
		return listReply(res.List, ReactionAdded)
	case OutcomeBought:
		return listReply(res.List, ReactionBought)
	case OutcomeHelp:
		return Reply{Title: HelpTitle, Text: HelpText}
	default:
		return Reply{}
	}
}

func listReply(list domain.List, reaction string) Reply {
	return Reply{
		Reaction: reaction,
		Title:    ListTitle,
		Text:     RenderList(list),
		Footer:   ListFooter,
	}
}
