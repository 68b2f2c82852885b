package telegram

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	chart "github.com/wcharczuk/go-chart/v2"

	"shopping-list-bot/internal/domain"
	"shopping-list-bot/internal/usecase"
)

const statsCommand = "/stats"

// Bot is the part of *tgbotapi.BotAPI the adapter uses.
type Bot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type Handler struct {
	bot          Bot
	dispatcher   *usecase.Dispatcher
	stats        *usecase.StatsUsecase
	adminIDs     map[int64]struct{}
	workers      int
	allowPrivate bool
	logger       *slog.Logger
}

func NewHandler(bot Bot, dispatcher *usecase.Dispatcher, adminIDs map[int64]struct{}, workers int, logger *slog.Logger) *Handler {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{
		bot:        bot,
		dispatcher: dispatcher,
		adminIDs:   adminIDs,
		workers:    workers,
		logger:     logger,
	}
}

func (h *Handler) SetStats(s *usecase.StatsUsecase) { h.stats = s }

// AllowPrivateChats makes private chats act as their own tenant.
func (h *Handler) AllowPrivateChats(allow bool) { h.allowPrivate = allow }

// Run long-polls Telegram until ctx is cancelled.
func (h *Handler) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := h.bot.GetUpdatesChan(u)
	go func() {
		<-ctx.Done()
		h.bot.StopReceivingUpdates()
	}()
	h.Serve(ctx, updates)
}

// Serve handles updates with a fixed pool of workers until the channel is
// closed. Updates for the same chat may be handled by different workers; the
// list store serializes them.
func (h *Handler) Serve(ctx context.Context, updates <-chan tgbotapi.Update) {
	var wg sync.WaitGroup
	for i := 0; i < h.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for update := range updates {
				h.handleUpdate(ctx, update)
			}
		}()
	}
	wg.Wait()
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	m := update.Message
	if m == nil || m.Chat == nil {
		return
	}
	chatID := m.Chat.ID

	if botCommand(m.Text) == statsCommand {
		h.handleStats(chatID)
		return
	}

	msg := usecase.Message{
		TenantID:  TenantFor(m.Chat, h.allowPrivate),
		ChatID:    chatID,
		MessageID: m.MessageID,
		Text:      m.Text,
		Author:    authorName(m.From),
	}
	_, _, err := h.dispatcher.Dispatch(ctx, msg)
	switch {
	case err == nil:
	case errors.Is(err, usecase.ErrNoTenant):
		h.logger.Debug("ignored command outside group", "chat_id", chatID)
	default:
		h.logger.Warn("dispatch finished with error", "chat_id", chatID, "error", err)
	}
}

func (h *Handler) handleStats(chatID int64) {
	if !h.isAdmin(chatID) {
		h.sendText(chatID, "Access denied")
		h.logger.Warn("stats denied", "chat_id", chatID)
		return
	}
	if h.stats == nil {
		h.sendText(chatID, "Statistics unavailable")
		return
	}
	labels, values := h.stats.GraphData()
	if err := h.sendStatsChart(chatID, labels, values); err != nil {
		h.logger.Error("stats chart failed", "error", err)
		h.sendText(chatID, h.stats.Summary())
		return
	}
	h.logger.Info("stats sent", "chat_id", chatID)
}

func (h *Handler) isAdmin(chatID int64) bool {
	if len(h.adminIDs) == 0 {
		return false
	}
	_, ok := h.adminIDs[chatID]
	return ok
}

func (h *Handler) sendText(chatID int64, text string) {
	if _, err := h.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		h.logger.Error("send text failed", "chat_id", chatID, "error", err)
	}
}

func (h *Handler) sendStatsChart(chatID int64, labels []string, values []int) error {
	bars := make([]chart.Value, 0, len(labels))
	maxVal := 0
	for i := range labels {
		v := values[i]
		if v > maxVal {
			maxVal = v
		}
		bars = append(bars, chart.Value{Value: float64(v), Label: labels[i]})
	}
	// a zero range makes go-chart fail with "invalid data range"
	yMax := float64(maxVal)
	if yMax <= 0 {
		yMax = 1
	}
	graph := chart.BarChart{
		Title:    "Commands by outcome",
		Width:    900,
		Height:   500,
		BarWidth: 64,
		Background: chart.Style{Padding: chart.Box{
			Top:    50,
			Left:   16,
			Right:  16,
			Bottom: 0,
		}},
		YAxis: chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: yMax}},
		Bars:  bars,
	}
	buf := bytes.NewBuffer(nil)
	if err := graph.Render(chart.PNG, buf); err != nil {
		return err
	}
	fname := "stats_" + strconv.FormatInt(time.Now().UnixNano(), 10) + ".png"
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: fname, Bytes: buf.Bytes()})
	_, err := h.bot.Send(photo)
	return err
}

// botCommand returns the leading "/command" of text with any "@botname"
// suffix removed, or "" when text is not a bot command.
func botCommand(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return ""
	}
	name, _, _ := strings.Cut(fields[0], "@")
	return name
}

// TenantFor maps a chat to its tenant. Only groups own a list unless private
// chats are allowed; channels never do.
func TenantFor(chat *tgbotapi.Chat, allowPrivate bool) domain.TenantID {
	if chat == nil {
		return ""
	}
	switch {
	case chat.IsGroup(), chat.IsSuperGroup():
	case chat.IsPrivate() && allowPrivate:
	default:
		return ""
	}
	return domain.TenantID(strconv.FormatInt(chat.ID, 10))
}

func authorName(u *tgbotapi.User) string {
	if u == nil {
		return "Someone"
	}
	if u.UserName != "" {
		return u.UserName
	}
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return "Someone"
	}
	return name
}
