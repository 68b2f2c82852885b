package sqlite

import (
	"database/sql"
	"time"

	"shopping-list-bot/internal/domain"
	"shopping-list-bot/internal/usecase"
)

type StatsRepo struct {
	db *sql.DB
}

func NewStatsRepo(db *sql.DB) (*StatsRepo, error) {
	if err := migrateStats(db); err != nil {
		return nil, err
	}
	return &StatsRepo{db: db}, nil
}

func migrateStats(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS command_hits (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    tenant_id TEXT NOT NULL,
    outcome TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_command_hits_outcome ON command_hits(outcome);
CREATE INDEX IF NOT EXISTS idx_command_hits_tenant_outcome ON command_hits(tenant_id, outcome);
`)
	return err
}

func (r *StatsRepo) Hit(outcome usecase.Outcome, tenant domain.TenantID) error {
	_, err := r.db.Exec(`INSERT INTO command_hits(tenant_id, outcome, created_at) VALUES(?,?,?)`, string(tenant), string(outcome), time.Now())
	return err
}

func (r *StatsRepo) Counts() map[usecase.Outcome]usecase.OutcomeCount {
	rows, err := r.db.Query(`SELECT outcome, COUNT(*), COUNT(DISTINCT tenant_id) FROM command_hits GROUP BY outcome`)
	if err != nil {
		return map[usecase.Outcome]usecase.OutcomeCount{}
	}
	defer rows.Close()
	out := map[usecase.Outcome]usecase.OutcomeCount{}
	for rows.Next() {
		var outcome string
		var c usecase.OutcomeCount
		if err := rows.Scan(&outcome, &c.Commands, &c.Tenants); err == nil {
			out[usecase.Outcome(outcome)] = c
		}
	}
	return out
}
