package tenant

import "context"

type Repository interface {
	Create(ctx context.Context, t *Tenant) error
	Update(ctx context.Context, t *Tenant) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Tenant, error)
	// GetByContact returns nil, nil when the contact is not registered.
	GetByContact(ctx context.Context, contact string) (*Tenant, error)
	List(ctx context.Context, filter Filter) ([]*Tenant, int64, error)
}

type Filter struct {
	PropertyID *uint
	Search     string
	Page       int
	PageSize   int
}
