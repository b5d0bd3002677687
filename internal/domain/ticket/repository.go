package ticket

import (
	"context"

	vo "github.com/estatedesk/estatedesk/internal/domain/ticket/valueobjects"
)

type Repository interface {
	Create(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	// GetByIDForUpdate locks the row for the rest of the surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id uint) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
}

type Filter struct {
	Status          *vo.TicketStatus
	Category        *vo.Category
	PropertyID      *uint
	AssignedAdminID *uint
	UserID          *uint
	UnreadOnly      bool
	Page            int
	PageSize        int
}

type UpdateRepository interface {
	Create(ctx context.Context, u *Update) error
	ListByTicket(ctx context.Context, ticketID uint) ([]*Update, error)
}

type ReassignmentRepository interface {
	Create(ctx context.Context, r *Reassignment) error
	// LatestCount returns the reassign count of the newest row, 0 when none exist.
	LatestCount(ctx context.Context, ticketID uint) (int, error)
	ListByTicket(ctx context.Context, ticketID uint) ([]*Reassignment, error)
}

type MediaRepository interface {
	Create(ctx context.Context, m *Media) error
	ListByTicket(ctx context.Context, ticketID uint) ([]*Media, error)
}
