package memory

import (
	"sort"
	"sync"

	"shopping-list-bot/internal/domain"
)

type TenantRepo struct {
	mu      sync.RWMutex
	tenants map[domain.TenantID]domain.Tenant
}

func NewTenantRepo() *TenantRepo {
	return &TenantRepo{tenants: make(map[domain.TenantID]domain.Tenant)}
}

func (r *TenantRepo) SaveTenant(t domain.Tenant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tenants[t.ID] = t
	return nil
}

func (r *TenantRepo) ListTenants() ([]domain.Tenant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]domain.Tenant, 0, len(r.tenants))
	for _, t := range r.tenants {
		res = append(res, t)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}
