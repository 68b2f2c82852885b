package sqlite

import (
	"database/sql"
	"time"

	"shopping-list-bot/internal/domain"
)

type TenantRepo struct {
	db *sql.DB
}

func NewTenantRepo(db *sql.DB) (*TenantRepo, error) {
	if err := migrateTenants(db); err != nil {
		return nil, err
	}
	return &TenantRepo{db: db}, nil
}

func migrateTenants(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS tenants (
    tenant_id TEXT PRIMARY KEY,
    chat_id INTEGER NOT NULL,
    created_at TIMESTAMP NOT NULL
);
`)
	return err
}

func (r *TenantRepo) SaveTenant(t domain.Tenant) error {
	// first sighting wins
	_, err := r.db.Exec(`INSERT INTO tenants(tenant_id, chat_id, created_at) VALUES(?, ?, ?) ON CONFLICT(tenant_id) DO NOTHING`, string(t.ID), t.ChatID, time.Now())
	return err
}

func (r *TenantRepo) ListTenants() ([]domain.Tenant, error) {
	rows, err := r.db.Query(`SELECT tenant_id, chat_id FROM tenants ORDER BY tenant_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]domain.Tenant, 0, 64)
	for rows.Next() {
		var id string
		var t domain.Tenant
		if err := rows.Scan(&id, &t.ChatID); err != nil {
			return nil, err
		}
		t.ID = domain.TenantID(id)
		out = append(out, t)
	}
	return out, rows.Err()
}
