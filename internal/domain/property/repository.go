package property

import "context"

type Repository interface {
	Create(ctx context.Context, p *Property) error
	Update(ctx context.Context, p *Property) error
	GetByID(ctx context.Context, id uint) (*Property, error)
	// GetByName matches case-insensitively and returns nil, nil when absent.
	GetByName(ctx context.Context, name string) (*Property, error)
	List(ctx context.Context) ([]*Property, error)
}
