package usecases

import (
	"context"
)

// TicketNotifier is the subset of the notifier the ticket use cases need.
type TicketNotifier interface {
	TicketUpdated(ctx context.Context, to, ticketNumber, text string) error
	TicketAssigned(ctx context.Context, to, ticketNumber, category, description string) error
	StatusChanged(ctx context.Context, to, tenantName, ticketNumber, status string) error
	JobCardLink(ctx context.Context, to, ticketNumber, link string) error
}

// JobCardProvisioner creates the job card for a resolved ticket.
type JobCardProvisioner interface {
	EnsureForTicket(ctx context.Context, ticketID uint, copyMedia bool) (uint, error)
	EnsurePublicToken(ctx context.Context, jobCardID uint) (string, error)
}

// LinkBaseURLProvider returns the base URL for public links, or "" when
// link sharing is disabled.
type LinkBaseURLProvider interface {
	PublicBaseURL(ctx context.Context) string
}
