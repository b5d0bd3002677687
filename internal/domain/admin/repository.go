package admin

import (
	"context"

	"github.com/estatedesk/estatedesk/internal/shared/authorization"
)

type Repository interface {
	Create(ctx context.Context, a *Admin) error
	Update(ctx context.Context, a *Admin) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Admin, error)
	// GetByUsername returns nil, nil when no account uses the username.
	GetByUsername(ctx context.Context, username string) (*Admin, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*Admin, error)
	List(ctx context.Context, filter Filter) ([]*Admin, int64, error)
}

type Filter struct {
	Role     *authorization.AdminRole
	Page     int
	PageSize int
}
