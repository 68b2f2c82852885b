package domain

type Tenant struct {
	ID     TenantID
	ChatID int64
}

type TenantRepository interface {
	SaveTenant(t Tenant) error
	ListTenants() ([]Tenant, error)
}
