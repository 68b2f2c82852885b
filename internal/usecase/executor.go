package usecase

import "shopping-list-bot/internal/domain"

// Outcome tags the variant held by a Result.
type Outcome string

const (
	OutcomeCreated Outcome = "created"
	OutcomeAdded   Outcome = "added"
	OutcomeBought  Outcome = "bought"
	OutcomeHelp    Outcome = "help"
	OutcomeUnknown Outcome = "unknown"
)

// Outcomes lists every outcome in display order.
var Outcomes = []Outcome{OutcomeCreated, OutcomeAdded, OutcomeBought, OutcomeHelp, OutcomeUnknown}

// Result is what a command produced. List is a snapshot taken when the command
// completed; the live list may have moved on since.
type Result struct {
	Outcome Outcome
	List    domain.List
}

// HasList reports whether the outcome carries a list to render.
func (r Result) HasList() bool {
	switch r.Outcome {
	case OutcomeCreated, OutcomeAdded, OutcomeBought:
		return true
	}
	return false
}

type Executor struct {
	store domain.ListStore
}

func NewExecutor(store domain.ListStore) *Executor { return &Executor{store: store} }

// Execute applies cmd to the tenant's list with exactly one store call.
func (e *Executor) Execute(tenant domain.TenantID, cmd Command) Result {
	switch cmd.Kind {
	case CmdNewList:
		e.store.Replace(tenant, domain.List{})
		return Result{Outcome: OutcomeCreated, List: domain.List{}}
	case CmdAddItem:
		list := e.store.Mutate(tenant, appendItem(cmd.Item))
		return Result{Outcome: OutcomeAdded, List: list}
	case CmdMarkBought:
		list := e.store.Mutate(tenant, removeAt(cmd.Position))
		return Result{Outcome: OutcomeBought, List: list}
	case CmdHelp:
		return Result{Outcome: OutcomeHelp}
	default:
		return Result{Outcome: OutcomeUnknown}
	}
}

// appendItem skips empty items: list entries are never empty strings.
func appendItem(item string) func(domain.List) domain.List {
	return func(l domain.List) domain.List {
		if item == "" {
			return l
		}
		return append(l, item)
	}
}

// removeAt leaves the list untouched when idx is out of range.
func removeAt(idx int) func(domain.List) domain.List {
	return func(l domain.List) domain.List {
		if idx < 0 || idx >= len(l) {
			return l
		}
		return append(l[:idx], l[idx+1:]...)
	}
}
