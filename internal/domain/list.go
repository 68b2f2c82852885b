package domain

// TenantID identifies an isolated chat workspace (a group chat) that owns one list.
type TenantID string

// List is an ordered sequence of items. Positions shown to users are 1-based.
type List []string

// Clone returns a copy that does not alias the receiver.
func (l List) Clone() List {
	out := make(List, len(l))
	copy(out, l)
	return out
}

// ListStore owns every tenant's list. Callers never lock anything themselves:
// Replace and Mutate are the only legal ways to change a list.
type ListStore interface {
	Get(tenant TenantID) List
	Replace(tenant TenantID, list List)
	// Mutate applies fn to the current list and stores its result as one
	// atomic step, returning a snapshot of what was stored.
	Mutate(tenant TenantID, fn func(List) List) List
	Tenants() int
}
