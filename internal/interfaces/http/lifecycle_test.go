package http

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adminUsecases "github.com/estatedesk/estatedesk/internal/application/admin/usecases"
	propertyUsecases "github.com/estatedesk/estatedesk/internal/application/property/usecases"
	tenantUsecases "github.com/estatedesk/estatedesk/internal/application/tenant/usecases"
	ticketUsecases "github.com/estatedesk/estatedesk/internal/application/ticket/usecases"
	"github.com/estatedesk/estatedesk/internal/domain/jobcard"
	ticketvo "github.com/estatedesk/estatedesk/internal/domain/ticket/valueobjects"
	"github.com/estatedesk/estatedesk/internal/shared/authorization"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
)

type deskFixture struct {
	ucs      *allUseCases
	repos    *repositories
	admins   []uint
	property uint
	tenant   uint
}

// newDeskFixture seeds one property supervised by the first admin, four more
// admins and a tenant in unit B2.
func newDeskFixture(t *testing.T) *deskFixture {
	t.Helper()
	r := newTestRouter(t)
	ctx := context.Background()
	f := &deskFixture{ucs: r.container.ucs, repos: r.container.repos}

	roles := []authorization.AdminRole{
		authorization.RolePropertySupervisor,
		authorization.RoleAdmin, authorization.RoleAdmin, authorization.RoleAdmin, authorization.RoleAdmin,
	}
	for i, role := range roles {
		a, err := f.ucs.createAdmin.Execute(ctx, adminUsecases.CreateAdminCommand{
			Name:     fmt.Sprintf("Staff %d", i+1),
			Username: fmt.Sprintf("staff%d", i+1),
			Password: "correct-horse",
			Contact:  fmt.Sprintf("25470000000%d", i+1),
			Role:     role.String(),
		})
		require.NoError(t, err)
		f.admins = append(f.admins, a.ID)
	}

	p, err := f.ucs.createProperty.Execute(ctx, propertyUsecases.CreatePropertyCommand{
		Name:         "Riverside Court",
		SupervisorID: &f.admins[0],
	})
	require.NoError(t, err)
	f.property = p.ID

	tn, err := f.ucs.registerTenant.Execute(ctx, tenantUsecases.RegisterTenantCommand{
		Name:       "Jane Wanjiku",
		Contact:    "254711000111",
		PropertyID: &f.property,
		Unit:       "B2",
	})
	require.NoError(t, err)
	f.tenant = tn.ID
	return f
}

func (f *deskFixture) openTicket(t *testing.T) uint {
	t.Helper()
	tk, err := f.ucs.createTicket.Execute(context.Background(), ticketUsecases.CreateTicketCommand{
		UserID:      f.tenant,
		Description: "Bathroom ceiling leaking",
		Category:    ticketvo.CategoryPlumbing.String(),
	})
	require.NoError(t, err)
	require.NotNil(t, tk.AssignedAdminID)
	require.Equal(t, f.admins[0], *tk.AssignedAdminID)
	return tk.ID
}

func (f *deskFixture) reassign(ticketID, to uint) (*ticketUsecases.ReassignTicketResult, error) {
	return f.ucs.reassignTicket.Execute(context.Background(), ticketUsecases.ReassignTicketCommand{
		TicketID:   ticketID,
		NewAdminID: to,
		ActorName:  "desk",
		ActorRole:  authorization.RoleAdmin,
		Reason:     "workload",
	})
}

func TestTicketLifecycle_ResolvedTicketCarriesHistoryToJobCard(t *testing.T) {
	f := newDeskFixture(t)
	ctx := context.Background()
	ticketID := f.openTicket(t)

	texts := []string{"Plumber booked for Tuesday", "Pipe joint replaced, ceiling drying"}
	_, err := f.ucs.addUpdate.Execute(ctx, ticketUsecases.AddUpdateCommand{TicketID: ticketID, Text: texts[0], AuthorName: "Staff 1"})
	require.NoError(t, err)
	moved, err := f.reassign(ticketID, f.admins[1])
	require.NoError(t, err)
	assert.Equal(t, 1, moved.ReassignCount)
	assert.False(t, moved.Notified)
	_, err = f.ucs.addUpdate.Execute(ctx, ticketUsecases.AddUpdateCommand{TicketID: ticketID, Text: texts[1], AuthorName: "Staff 2"})
	require.NoError(t, err)

	resolved, err := f.ucs.changeTicketStatus.Execute(ctx, ticketUsecases.ChangeStatusCommand{
		TicketID: ticketID,
		Status:   ticketvo.StatusResolved.String(),
	})
	require.NoError(t, err)
	require.NotNil(t, resolved.JobCardID)
	assert.NotNil(t, resolved.ResolvedAt)
	assert.False(t, resolved.LinkSent)

	card, err := f.repos.jobCardRepo.GetByTicketID(ctx, ticketID)
	require.NoError(t, err)
	require.NotNil(t, card)
	assert.Equal(t, *resolved.JobCardID, card.ID())
	require.NotNil(t, card.TicketID())
	assert.Equal(t, ticketID, *card.TicketID())
	require.NotNil(t, card.PropertyID())
	assert.Equal(t, f.property, *card.PropertyID())
	assert.Equal(t, "B2", card.Unit())
	require.NotNil(t, card.AssignedTo())
	assert.Equal(t, f.admins[1], *card.AssignedTo())

	activities := card.Activities()
	first := strings.Index(activities, texts[0])
	second := strings.Index(activities, texts[1])
	require.GreaterOrEqual(t, first, 0, activities)
	require.GreaterOrEqual(t, second, 0, activities)
	assert.Less(t, first, second)
	assert.Contains(t, activities, "[REASSIGN]")
	assert.Contains(t, activities, "Reason: workload")

	again, err := f.ucs.changeTicketStatus.Execute(ctx, ticketUsecases.ChangeStatusCommand{
		TicketID: ticketID,
		Status:   ticketvo.StatusResolved.String(),
	})
	require.NoError(t, err)
	assert.Nil(t, again.JobCardID)
	cards, total, err := f.repos.jobCardRepo.List(ctx, jobcard.Filter{TicketID: &ticketID, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, cards, 1)
}

func TestTicketLifecycle_ConcurrentReassignAtLimitEdge(t *testing.T) {
	f := newDeskFixture(t)
	ticketID := f.openTicket(t)

	for _, to := range f.admins[1:3] {
		_, err := f.reassign(ticketID, to)
		require.NoError(t, err)
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, to := range f.admins[3:5] {
		wg.Add(1)
		go func(to uint) {
			defer wg.Done()
			_, err := f.reassign(ticketID, to)
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		}(to)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errors.IsLimitExceededError(err), err)
	}
	assert.Equal(t, 1, succeeded)

	ctx := context.Background()
	latest, err := f.repos.reassignmentRepo.LatestCount(ctx, ticketID)
	require.NoError(t, err)
	assert.Equal(t, 3, latest)
	rows, err := f.repos.reassignmentRepo.ListByTicket(ctx, ticketID)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}
