package memory

import (
	"sync"

	"shopping-list-bot/internal/domain"
	"shopping-list-bot/internal/usecase"
)

// StatsRepo counts commands and distinct tenants per outcome.
type StatsRepo struct {
	mu      sync.RWMutex
	hits    map[usecase.Outcome]int
	tenants map[usecase.Outcome]map[domain.TenantID]struct{}
}

func NewStatsRepo() *StatsRepo {
	return &StatsRepo{
		hits:    make(map[usecase.Outcome]int),
		tenants: make(map[usecase.Outcome]map[domain.TenantID]struct{}),
	}
}

func (r *StatsRepo) Hit(outcome usecase.Outcome, tenant domain.TenantID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hits[outcome]++
	m, ok := r.tenants[outcome]
	if !ok {
		m = make(map[domain.TenantID]struct{})
		r.tenants[outcome] = m
	}
	m[tenant] = struct{}{}
	return nil
}

func (r *StatsRepo) Counts() map[usecase.Outcome]usecase.OutcomeCount {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[usecase.Outcome]usecase.OutcomeCount, len(r.hits))
	for o, n := range r.hits {
		out[o] = usecase.OutcomeCount{Commands: n, Tenants: len(r.tenants[o])}
	}
	return out
}
