package usecases

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/estatedesk/estatedesk/internal/domain/ticket/valueobjects"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
)

type changeStatusFixture struct {
	tickets  *mockTicketRepo
	jobCards *mockProvisioner
	notifier *mockNotifier
	tx       *fakeTx
	uc       *ChangeStatusUseCase
}

func newChangeStatusFixture(t *testing.T, status vo.TicketStatus, baseURL string) *changeStatusFixture {
	f := &changeStatusFixture{
		tickets:  newMockTicketRepo(newTestTicket(t, 12, status, uintPtr(2))),
		jobCards: &mockProvisioner{},
		notifier: &mockNotifier{},
		tx:       &fakeTx{},
	}
	f.uc = NewChangeStatusUseCase(f.tickets, newMockTenantRepo(newTestTenant("254711000111")),
		f.jobCards, staticLinks(baseURL), f.notifier, f.tx, noopLogger{})
	return f
}

func TestChangeStatus_ResolvedProvisionsJobCardAndSendsLink(t *testing.T) {
	fixClock(t)
	f := newChangeStatusFixture(t, vo.StatusInProgress, "https://crm.example.com")

	result, err := f.uc.Execute(context.Background(), ChangeStatusCommand{TicketID: 12, Status: "resolved"})

	require.NoError(t, err)
	assert.Equal(t, "Resolved", result.Status)
	require.NotNil(t, result.ResolvedAt)
	assert.True(t, result.ResolvedAt.Equal(testNow))
	require.NotNil(t, result.JobCardID)
	assert.Equal(t, uint(112), *result.JobCardID)
	assert.True(t, result.LinkSent)
	assert.Equal(t, []uint{12}, f.jobCards.ensured)
	assert.Equal(t, 1, f.tickets.lockedReads)

	assert.Equal(t, []string{"status", "link"}, f.notifier.kinds())
	link := f.notifier.calls[1].Args[1]
	assert.Equal(t, "https://crm.example.com/public/job-cards/view?id=112&t=tok", link)
}

func TestChangeStatus_ResolvedWithoutBaseURLSkipsLink(t *testing.T) {
	f := newChangeStatusFixture(t, vo.StatusOpen, "")
	tokenCalls := 0
	f.jobCards.EnsurePublicTokenFunc = func(context.Context, uint) (string, error) {
		tokenCalls++
		return "tok", nil
	}

	result, err := f.uc.Execute(context.Background(), ChangeStatusCommand{TicketID: 12, Status: "Resolved"})

	require.NoError(t, err)
	assert.False(t, result.LinkSent)
	assert.NotNil(t, result.JobCardID)
	assert.Zero(t, tokenCalls)
	assert.Equal(t, []string{"status"}, f.notifier.kinds())
}

func TestChangeStatus_ReopenClearsResolvedAt(t *testing.T) {
	f := newChangeStatusFixture(t, vo.StatusOpen, "https://crm.example.com")
	_, err := f.uc.Execute(context.Background(), ChangeStatusCommand{TicketID: 12, Status: "Resolved"})
	require.NoError(t, err)

	result, err := f.uc.Execute(context.Background(), ChangeStatusCommand{TicketID: 12, Status: "In Progress"})

	require.NoError(t, err)
	assert.Nil(t, result.ResolvedAt)
	assert.Nil(t, result.JobCardID)
	assert.Len(t, f.jobCards.ensured, 1)
}

func TestChangeStatus_NotificationFailureDoesNotFail(t *testing.T) {
	f := newChangeStatusFixture(t, vo.StatusOpen, "https://crm.example.com")
	f.notifier.err = stderrors.New("gateway down")

	result, err := f.uc.Execute(context.Background(), ChangeStatusCommand{TicketID: 12, Status: "Resolved"})

	require.NoError(t, err)
	assert.False(t, result.LinkSent)
	assert.Equal(t, "Resolved", result.Status)
}

func TestChangeStatus_ProvisioningFailureAbortsTransaction(t *testing.T) {
	f := newChangeStatusFixture(t, vo.StatusOpen, "https://crm.example.com")
	f.jobCards.EnsureForTicketFunc = func(context.Context, uint, bool) (uint, error) {
		return 0, stderrors.New("db down")
	}

	_, err := f.uc.Execute(context.Background(), ChangeStatusCommand{TicketID: 12, Status: "Resolved"})

	require.Error(t, err)
	assert.Equal(t, 1, f.tx.failures)
	assert.Empty(t, f.notifier.calls)
}

func TestChangeStatus_Validation(t *testing.T) {
	f := newChangeStatusFixture(t, vo.StatusOpen, "")

	_, err := f.uc.Execute(context.Background(), ChangeStatusCommand{TicketID: 12, Status: "Closed"})
	assert.True(t, errors.IsValidationError(err))

	_, err = f.uc.Execute(context.Background(), ChangeStatusCommand{TicketID: 99, Status: "Open"})
	assert.True(t, errors.IsNotFoundError(err))
}
