package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estatedesk/estatedesk/internal/domain/jobcard"
	jobcardvo "github.com/estatedesk/estatedesk/internal/domain/jobcard/valueobjects"
	vo "github.com/estatedesk/estatedesk/internal/domain/ticket/valueobjects"
	"github.com/estatedesk/estatedesk/internal/shared/biztime"
)

func TestReportRepository_TicketStats(t *testing.T) {
	gdb := setupDB(t)
	tickets := NewTicketRepository(gdb)
	repo := NewReportRepository(gdb)
	ctx := context.Background()

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, biztime.Location())
	now := base
	restore := biztime.SetClock(func() time.Time { return now })
	defer restore()

	a := newTicket(t, 1, vo.CategoryPlumbing, uintPtr(10), uintPtr(2))
	require.NoError(t, tickets.Create(ctx, a))
	b := newTicket(t, 1, vo.CategoryPlumbing, nil, nil)
	past := base.Add(-time.Hour)
	b.SetDueDate(&past)
	require.NoError(t, tickets.Create(ctx, b))
	c := newTicket(t, 2, vo.CategorySecurity, uintPtr(10), uintPtr(2))
	require.NoError(t, tickets.Create(ctx, c))

	now = base.Add(6 * time.Hour)
	_, err := a.ChangeStatus(vo.StatusResolved)
	require.NoError(t, err)
	require.NoError(t, tickets.Update(ctx, a))

	// Outside the window.
	now = base.AddDate(0, 0, 5)
	require.NoError(t, tickets.Create(ctx, newTicket(t, 3, vo.CategoryOther, nil, nil)))

	from, to := biztime.Window(base, base)

	created, err := repo.CountCreated(ctx, from, to)
	require.NoError(t, err)
	assert.Equal(t, int64(3), created)

	spans, err := repo.ListResolved(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, spans, 1)
	assert.Equal(t, 6*time.Hour, spans[0].ResolvedAt.Sub(spans[0].CreatedAt))

	overdue, err := repo.CountOverdue(ctx, base)
	require.NoError(t, err)
	assert.Equal(t, int64(1), overdue)

	byStatus, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	statuses := map[string]int64{}
	for _, kc := range byStatus {
		statuses[kc.Key] = kc.Count
	}
	assert.Equal(t, int64(3), statuses[vo.StatusOpen.String()])
	assert.Equal(t, int64(1), statuses[vo.StatusResolved.String()])

	byCategory, err := repo.CountCreatedByCategory(ctx, from, to)
	require.NoError(t, err)
	categories := map[string]int64{}
	for _, kc := range byCategory {
		categories[kc.Key] = kc.Count
	}
	assert.Equal(t, map[string]int64{"Plumbing": 2, "Security": 1}, categories)

	byAdmin, err := repo.CountCreatedByAdmin(ctx, from, to)
	require.NoError(t, err)
	var unassigned, assigned int64
	for _, row := range byAdmin {
		if row.ID == nil {
			unassigned = row.Count
		} else if *row.ID == 2 {
			assigned = row.Count
		}
	}
	assert.Equal(t, int64(1), unassigned)
	assert.Equal(t, int64(2), assigned)

	byProperty, err := repo.CountCreatedByProperty(ctx, from, to)
	require.NoError(t, err)
	assert.Len(t, byProperty, 2)
}

func TestReportRepository_CostsByProperty(t *testing.T) {
	gdb := setupDB(t)
	cards := NewJobCardRepository(gdb)
	repo := NewReportRepository(gdb)
	ctx := context.Background()

	for _, cost := range []int64{1000, 2500} {
		j := newJobCard(t, nil)
		require.NoError(t, j.UpdateCosts(cost, cost+100))
		require.NoError(t, cards.Create(ctx, j))
	}
	cancelled := newJobCard(t, nil)
	require.NoError(t, cancelled.ChangeStatus(jobcardvo.StatusCancelled))
	require.NoError(t, cards.Create(ctx, cancelled))

	standalone, err := jobcard.NewJobCard(jobcard.Draft{Description: "Gate motor service", EstimatedCost: 400})
	require.NoError(t, err)
	require.NoError(t, cards.Create(ctx, standalone))

	from, to := biztime.Window(time.Time{}, time.Time{})
	rows, err := repo.CostsByProperty(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	for _, row := range rows {
		if row.PropertyID == nil {
			assert.Equal(t, int64(1), row.JobCards)
			assert.Equal(t, int64(400), row.EstimatedCost)
			continue
		}
		assert.Equal(t, uint(1), *row.PropertyID)
		assert.Equal(t, int64(2), row.JobCards)
		assert.Equal(t, int64(3500), row.EstimatedCost)
		assert.Equal(t, int64(3700), row.ActualCost)
	}
}
