package memory

import (
	"sync"
	"sync/atomic"

	"shopping-list-bot/internal/domain"
)

// ListStore keeps every tenant's list in memory. Each tenant has its own entry
// with its own mutex; the entries map is a sync.Map so looking up one tenant
// never waits on another tenant's critical section.
type ListStore struct {
	entries sync.Map // domain.TenantID -> *listEntry
	count   atomic.Int64
}

type listEntry struct {
	mu    sync.Mutex
	items domain.List
}

func NewListStore() *ListStore {
	return &ListStore{}
}

func (s *ListStore) entry(tenant domain.TenantID) *listEntry {
	if e, ok := s.entries.Load(tenant); ok {
		return e.(*listEntry)
	}
	e, loaded := s.entries.LoadOrStore(tenant, &listEntry{items: domain.List{}})
	if !loaded {
		s.count.Add(1)
	}
	return e.(*listEntry)
}

// Get returns a copy of the tenant's list. Unseen tenants get an empty list
// without creating an entry.
func (s *ListStore) Get(tenant domain.TenantID) domain.List {
	e, ok := s.entries.Load(tenant)
	if !ok {
		return domain.List{}
	}
	le := e.(*listEntry)
	le.mu.Lock()
	defer le.mu.Unlock()
	return le.items.Clone()
}

func (s *ListStore) Replace(tenant domain.TenantID, list domain.List) {
	le := s.entry(tenant)
	le.mu.Lock()
	defer le.mu.Unlock()
	le.items = list.Clone()
}

// Mutate hands fn a private copy of the list, so fn may append or reslice freely.
// The tenant's mutex is held for the whole read-transform-write step.
func (s *ListStore) Mutate(tenant domain.TenantID, fn func(domain.List) domain.List) domain.List {
	le := s.entry(tenant)
	le.mu.Lock()
	defer le.mu.Unlock()
	next := fn(le.items.Clone())
	if next == nil {
		next = domain.List{}
	}
	le.items = next
	return next.Clone()
}

// Tenants reports how many tenants have an entry.
func (s *ListStore) Tenants() int {
	return int(s.count.Load())
}
