package usecase

import (
	"fmt"
	"strings"

	"shopping-list-bot/internal/domain"
)

type OutcomeCount struct {
	Commands int
	Tenants  int
}

type StatsRepository interface {
	Hit(outcome Outcome, tenant domain.TenantID) error
	Counts() map[Outcome]OutcomeCount
}

// StatsUsecase aggregates command outcomes for the admin report.
type StatsUsecase struct {
	repo    StatsRepository
	tenants domain.TenantRepository
	order   []Outcome
}

func NewStatsUsecase(repo StatsRepository, tenants domain.TenantRepository) *StatsUsecase {
	return &StatsUsecase{repo: repo, tenants: tenants, order: Outcomes}
}

func (u *StatsUsecase) Record(outcome Outcome, tenant domain.TenantID) error {
	if outcome == "" {
		return nil
	}
	return u.repo.Hit(outcome, tenant)
}

func (u *StatsUsecase) Summary() string {
	counts := u.repo.Counts()
	if len(counts) == 0 {
		return "No commands recorded yet"
	}
	var total int
	for _, c := range counts {
		total += c.Commands
	}
	var b strings.Builder
	if u.tenants != nil {
		if ts, err := u.tenants.ListTenants(); err == nil {
			fmt.Fprintf(&b, "Known chats: %d\n", len(ts))
		}
	}
	b.WriteString("Commands by outcome:\n")
	for _, o := range u.order {
		c := counts[o]
		fmt.Fprintf(&b, "- %s: %d in %d chats | %3d%% %s\n", outcomeLabel(o), c.Commands, c.Tenants, share(c.Commands, total), shareBar(c.Commands, total))
	}
	return b.String()
}

// GraphData returns labels and command counts in display order for charting.
func (u *StatsUsecase) GraphData() ([]string, []int) {
	counts := u.repo.Counts()
	labels := make([]string, 0, len(u.order))
	values := make([]int, 0, len(u.order))
	for _, o := range u.order {
		labels = append(labels, outcomeLabel(o))
		values = append(values, counts[o].Commands)
	}
	return labels, values
}

const shareBarWidth = 20

// share returns part as a whole percentage of total, 0 for an empty total.
func share(part, total int) int {
	if total <= 0 {
		return 0
	}
	return (100 * part) / total
}

// shareBar draws part/total as a fixed-width bar clamped to [0, shareBarWidth].
func shareBar(part, total int) string {
	if total <= 0 {
		return ""
	}
	filled := min(max(shareBarWidth*part/total, 0), shareBarWidth)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", shareBarWidth-filled) + "]"
}

func outcomeLabel(o Outcome) string {
	switch o {
	case OutcomeCreated:
		return "New list"
	case OutcomeAdded:
		return "Added"
	case OutcomeBought:
		return "Bought"
	case OutcomeHelp:
		return "Help"
	case OutcomeUnknown:
		return "Unknown"
	default:
		return string(o)
	}
}
