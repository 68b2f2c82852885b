package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"shopping-list-bot/internal/domain"
	"shopping-list-bot/internal/metrics"
)

var (
	// ErrNoTenant is returned for command messages that arrive outside any tenant
	// (for example a private chat).
	ErrNoTenant = errors.New("message has no tenant")
	// ErrPresentation wraps a failure to show a result. The command itself has
	// already been applied when this is returned.
	ErrPresentation = errors.New("presentation failed")
)

// Message is one inbound chat message as seen by the core.
type Message struct {
	TenantID  domain.TenantID
	ChatID    int64
	MessageID int
	Text      string
	Author    string
}

// Presenter shows a rendered reply to the user (implemented by the transport adapter).
type Presenter interface {
	Present(ctx context.Context, msg Message, reply Reply) error
}

type Dispatcher struct {
	executor  *Executor
	presenter Presenter
	stats     *StatsUsecase
	tenants   domain.TenantRepository
	logger    *slog.Logger
}

func NewDispatcher(executor *Executor, presenter Presenter, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Dispatcher{executor: executor, presenter: presenter, logger: logger}
}

func (d *Dispatcher) SetStats(s *StatsUsecase) { d.stats = s }

func (d *Dispatcher) SetTenantRepository(repo domain.TenantRepository) { d.tenants = repo }

// Dispatch runs one message through parse, execute and present. handled is
// false when the message is not addressed to the bot and nothing ran.
func (d *Dispatcher) Dispatch(ctx context.Context, msg Message) (res Result, handled bool, err error) {
	if !IsCommandText(msg.Text) {
		return Result{}, false, nil
	}
	if msg.TenantID == "" {
		metrics.RejectedTotal.Inc()
		d.logger.Debug("command outside tenant rejected", "chat_id", msg.ChatID)
		return Result{}, false, ErrNoTenant
	}

	log := d.logger.With("event_id", uuid.NewString(), "tenant", string(msg.TenantID))
	d.registerTenant(log, msg)

	cmd := ParseCommand(msg.Text)
	res = d.executor.Execute(msg.TenantID, cmd)
	metrics.CommandsTotal.WithLabelValues(string(res.Outcome)).Inc()
	if d.stats != nil {
		if err := d.stats.Record(res.Outcome, msg.TenantID); err != nil {
			log.Error("stats record failed", "error", err)
		}
	}

	if res.Outcome == OutcomeUnknown {
		log.Info("received unknown command", "text", msg.Text)
		return res, true, nil
	}
	log.Info("command applied", "command", cmd.Kind.String(), "outcome", string(res.Outcome), "items", len(res.List))

	reply := RenderReply(res, msg.Author)
	if reply.IsEmpty() || d.presenter == nil {
		return res, true, nil
	}
	if err := d.presenter.Present(ctx, msg, reply); err != nil {
		metrics.PresentationFailuresTotal.Inc()
		log.Error("present result failed", "outcome", string(res.Outcome), "error", err)
		return res, true, fmt.Errorf("%w: %w", ErrPresentation, err)
	}
	return res, true, nil
}

func (d *Dispatcher) registerTenant(log *slog.Logger, msg Message) {
	if d.tenants == nil {
		return
	}
	if err := d.tenants.SaveTenant(domain.Tenant{ID: msg.TenantID, ChatID: msg.ChatID}); err != nil {
		log.Error("tenant save failed", "error", err)
	}
}
