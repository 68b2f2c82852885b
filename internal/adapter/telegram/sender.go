package telegram

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"shopping-list-bot/internal/usecase"
)

// Sender presents command results in the chat the command came from.
type Sender struct{ bot Bot }

func NewSender(bot Bot) *Sender { return &Sender{bot: bot} }

// Present sends every part of reply, carrying on after a failed part so one
// error does not hide the rest. The acknowledgement marker is sent as a reply
// to the command message.
func (s *Sender) Present(_ context.Context, msg usecase.Message, reply usecase.Reply) error {
	var errs []error
	if reply.Reaction != "" {
		ack := tgbotapi.NewMessage(msg.ChatID, reply.Reaction)
		ack.ReplyToMessageID = msg.MessageID
		errs = append(errs, s.send(ack))
	}
	if reply.Announcement != "" {
		errs = append(errs, s.send(announcement(msg.ChatID, reply)))
	}
	if body := composeBody(reply); body != "" {
		errs = append(errs, s.send(tgbotapi.NewMessage(msg.ChatID, body)))
	}
	return errors.Join(errs...)
}

func (s *Sender) send(c tgbotapi.Chattable) error {
	_, err := s.bot.Send(c)
	return err
}

// announcement bolds the author with HTML parse mode; the name is escaped so
// user-chosen names cannot inject markup.
func announcement(chatID int64, r usecase.Reply) tgbotapi.MessageConfig {
	if r.Author == "" {
		return tgbotapi.NewMessage(chatID, r.Announcement)
	}
	text := fmt.Sprintf(usecase.AnnouncementFormat, "<b>"+html.EscapeString(r.Author)+"</b>")
	m := tgbotapi.NewMessage(chatID, text)
	m.ParseMode = tgbotapi.ModeHTML
	return m
}

func composeBody(r usecase.Reply) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{r.Title, strings.TrimRight(r.Text, "\n"), r.Footer} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "\n\n")
}
