package usecases

import (
	"context"
	"time"
)

// ResolvedSpan is the lifetime of one resolved ticket.
type ResolvedSpan struct {
	CreatedAt  time.Time
	ResolvedAt time.Time
}

type KeyCount struct {
	Key   string
	Count int64
}

// IDCount groups by a nullable foreign key; a nil ID is the unassigned bucket.
type IDCount struct {
	ID    *uint
	Count int64
}

type PropertyCosts struct {
	PropertyID    *uint
	JobCards      int64
	EstimatedCost int64
	ActualCost    int64
}

// TicketStatsReader answers aggregate queries over tickets. Windows are
// half-open: from <= t < to.
type TicketStatsReader interface {
	CountCreated(ctx context.Context, from, to time.Time) (int64, error)
	ListResolved(ctx context.Context, from, to time.Time) ([]ResolvedSpan, error)
	CountByStatus(ctx context.Context) ([]KeyCount, error)
	CountOverdue(ctx context.Context, now time.Time) (int64, error)
	CountCreatedByCategory(ctx context.Context, from, to time.Time) ([]KeyCount, error)
	CountCreatedByProperty(ctx context.Context, from, to time.Time) ([]IDCount, error)
	CountCreatedByAdmin(ctx context.Context, from, to time.Time) ([]IDCount, error)
}

type JobCardCostReader interface {
	CostsByProperty(ctx context.Context, from, to time.Time) ([]PropertyCosts, error)
}
