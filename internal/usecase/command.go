package usecase

import (
	"strconv"
	"strings"
)

// CommandKind tags the variant held by a Command.
type CommandKind int

const (
	CmdUnrecognized CommandKind = iota
	CmdNewList
	CmdAddItem
	CmdMarkBought
	CmdHelp
)

func (k CommandKind) String() string {
	switch k {
	case CmdNewList:
		return "new_list"
	case CmdAddItem:
		return "add_item"
	case CmdMarkBought:
		return "mark_bought"
	case CmdHelp:
		return "help"
	default:
		return "unrecognized"
	}
}

const (
	keywordPrefix = "!"
	itemPrefix    = "-"

	familyShop   = "shop"
	familyBought = "bought"
	familyHelp   = "help"
	subNew       = "new"
)

// Command is a parsed user intent. Position is 0-based and only set for
// CmdMarkBought; Item is only set for CmdAddItem.
type Command struct {
	Kind     CommandKind
	Position int
	Item     string
}

// IsCommandText reports whether text is addressed to the bot at all.
// Everything else is ignored before parsing.
func IsCommandText(text string) bool {
	return strings.HasPrefix(text, keywordPrefix) || strings.HasPrefix(text, itemPrefix)
}

// ParseCommand classifies raw message text. Keyword families are matched by
// substring, so "!shopping new" and "!boughty 2" are accepted. Malformed input
// yields CmdUnrecognized, never an error.
func ParseCommand(text string) Command {
	switch {
	case strings.HasPrefix(text, keywordPrefix):
		return parseKeyword(text)
	case strings.HasPrefix(text, itemPrefix):
		return Command{Kind: CmdAddItem, Item: strings.TrimPrefix(text, itemPrefix)}
	default:
		return Command{Kind: CmdUnrecognized}
	}
}

func parseKeyword(text string) Command {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return Command{Kind: CmdUnrecognized}
	}
	word := strings.TrimPrefix(tokens[0], keywordPrefix)
	var arg string
	hasArg := len(tokens) > 1
	if hasArg {
		arg = tokens[1]
	}

	switch {
	case strings.Contains(word, familyShop):
		if hasArg && strings.Contains(arg, subNew) {
			return Command{Kind: CmdNewList}
		}
	case strings.Contains(word, familyBought):
		if !hasArg {
			return Command{Kind: CmdUnrecognized}
		}
		// positions are 32-bit; anything wider is not a number we accept
		num, err := strconv.ParseInt(arg, 10, 32)
		if err != nil {
			return Command{Kind: CmdUnrecognized}
		}
		// users count from 1
		return Command{Kind: CmdMarkBought, Position: int(num) - 1}
	case strings.Contains(word, familyHelp):
		return Command{Kind: CmdHelp}
	}
	return Command{Kind: CmdUnrecognized}
}
