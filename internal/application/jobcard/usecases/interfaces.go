package usecases

import (
	"context"
	"time"

	"github.com/estatedesk/estatedesk/internal/domain/ticket"
)

// AdminNameResolver maps the admins referenced by change log rows to names.
type AdminNameResolver interface {
	Resolve(ctx context.Context, rows []*ticket.Reassignment) ticket.AdminNames
}

// SignoffNotice is the summary mailed to a property supervisor.
type SignoffNotice struct {
	SupervisorName string
	JobCardID      uint
	TicketNumber   string
	Title          string
	PropertyName   string
	Unit           string
	SignerName     string
	SignerRole     string
	Notes          string
	ActualCost     int64
	SignedAt       time.Time
}

type SignoffMailer interface {
	SendSignoffNotice(ctx context.Context, to string, notice SignoffNotice) error
}
