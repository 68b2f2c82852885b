package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopping-list-bot/internal/domain"
	"shopping-list-bot/internal/usecase"
)

func TestTenantRepo_SaveIsIdempotent(t *testing.T) {
	r := NewTenantRepo()
	require.NoError(t, r.SaveTenant(domain.Tenant{ID: "2", ChatID: 2}))
	require.NoError(t, r.SaveTenant(domain.Tenant{ID: "1", ChatID: 1}))
	require.NoError(t, r.SaveTenant(domain.Tenant{ID: "2", ChatID: 2}))

	got, err := r.ListTenants()
	require.NoError(t, err)
	assert.Equal(t, []domain.Tenant{{ID: "1", ChatID: 1}, {ID: "2", ChatID: 2}}, got)
}

func TestStatsRepo_CountsCommandsAndDistinctTenants(t *testing.T) {
	r := NewStatsRepo()
	require.NoError(t, r.Hit(usecase.OutcomeAdded, "g1"))
	require.NoError(t, r.Hit(usecase.OutcomeAdded, "g1"))
	require.NoError(t, r.Hit(usecase.OutcomeAdded, "g2"))
	require.NoError(t, r.Hit(usecase.OutcomeHelp, "g1"))

	counts := r.Counts()
	assert.Equal(t, usecase.OutcomeCount{Commands: 3, Tenants: 2}, counts[usecase.OutcomeAdded])
	assert.Equal(t, usecase.OutcomeCount{Commands: 1, Tenants: 1}, counts[usecase.OutcomeHelp])
	_, ok := counts[usecase.OutcomeBought]
	assert.False(t, ok)
}
