package jobcard

import (
	"context"

	vo "github.com/estatedesk/estatedesk/internal/domain/jobcard/valueobjects"
)

type Repository interface {
	// Create returns ErrTicketHasJobCard when the ticket already has a card.
	Create(ctx context.Context, j *JobCard) error
	// Update writes editable fields and fails with ErrLocked when the stored
	// card is signed off, whatever state j was loaded in.
	Update(ctx context.Context, j *JobCard) error
	// MarkSignedOff persists the Signed Off status set by JobCard.SignOff.
	MarkSignedOff(ctx context.Context, j *JobCard) error
	GetByID(ctx context.Context, id uint) (*JobCard, error)
	// GetByIDForUpdate locks the row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id uint) (*JobCard, error)
	// GetByTicketID returns nil, nil when no card references the ticket.
	GetByTicketID(ctx context.Context, ticketID uint) (*JobCard, error)
	// SetPublicTokenIfEmpty stores the token only when none is set and returns
	// the token that is stored afterwards.
	SetPublicTokenIfEmpty(ctx context.Context, j *JobCard) (string, error)
	List(ctx context.Context, filter Filter) ([]*JobCard, int64, error)
}

type Filter struct {
	Status     *vo.JobCardStatus
	PropertyID *uint
	AssignedTo *uint
	TicketID   *uint
	Page       int
	PageSize   int
}

type SignoffRepository interface {
	Create(ctx context.Context, s *Signoff) error
	ListByJobCard(ctx context.Context, jobCardID uint) ([]*Signoff, error)
}

type MediaRepository interface {
	Create(ctx context.Context, m *Media) error
	// CopyFromTicket inserts copies of the given ticket media, skipping any
	// source row already copied onto the card. It returns the number inserted.
	CopyFromTicket(ctx context.Context, media []*Media) (int, error)
	ListByJobCard(ctx context.Context, jobCardID uint) ([]*Media, error)
}
