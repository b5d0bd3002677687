package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jobcardUsecases "github.com/estatedesk/estatedesk/internal/application/jobcard/usecases"
	"github.com/estatedesk/estatedesk/internal/domain/jobcard"
	jobcardvo "github.com/estatedesk/estatedesk/internal/domain/jobcard/valueobjects"
	"github.com/estatedesk/estatedesk/internal/shared/db"
	apperrors "github.com/estatedesk/estatedesk/internal/shared/errors"
)

// inlineTx runs fn without opening a transaction so a test can interleave a
// second writer on the single sqlite connection.
type inlineTx struct{}

func (inlineTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// signOffAfterRead signs the card off right after the editor has read it.
type signOffAfterRead struct {
	*JobCardRepository
	signOff func(ctx context.Context, id uint)
}

func (r *signOffAfterRead) GetByIDForUpdate(ctx context.Context, id uint) (*jobcard.JobCard, error) {
	card, err := r.JobCardRepository.GetByIDForUpdate(ctx, id)
	if err == nil && r.signOff != nil {
		r.signOff(ctx, id)
	}
	return card, err
}

func TestJobCardRepository_UpdateRefusedAfterSignoff(t *testing.T) {
	gdb := setupDB(t)
	repo := NewJobCardRepository(gdb)
	ctx := context.Background()

	j := newJobCard(t, nil)
	require.NoError(t, repo.Create(ctx, j))

	stale, err := repo.GetByID(ctx, j.ID())
	require.NoError(t, err)

	s, err := jobcard.NewSignoff(j.ID(), "Jane Tenant", "Tenant", "", nil)
	require.NoError(t, err)
	require.NoError(t, NewJobCardSignoffRepository(gdb).Create(ctx, s))

	require.NoError(t, stale.UpdateCosts(1, 999999))
	assert.ErrorIs(t, repo.Update(ctx, stale), jobcard.ErrLocked)

	found, err := repo.GetByID(ctx, j.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(0), found.ActualCost())
	assert.Equal(t, int64(250000), found.EstimatedCost())
}

func TestUpdateCosts_SignoffBetweenReadAndWrite(t *testing.T) {
	gdb := setupDB(t)
	cards := NewJobCardRepository(gdb)
	ctx := context.Background()

	j := newJobCard(t, nil)
	require.NoError(t, cards.Create(ctx, j))

	signOff := jobcardUsecases.NewSignOffUseCase(
		cards,
		NewJobCardSignoffRepository(gdb),
		NewPropertyRepository(gdb),
		NewAdminRepository(gdb),
		nil,
		db.NewTransactionManager(gdb),
		discardLogger(),
	)
	racing := &signOffAfterRead{
		JobCardRepository: cards,
		signOff: func(ctx context.Context, id uint) {
			_, err := signOff.Execute(ctx, jobcardUsecases.SignOffCommand{JobCardID: id, SignerName: "Jane Tenant", Role: "Tenant"})
			require.NoError(t, err)
		},
	}

	_, err := jobcardUsecases.NewUpdateCostsUseCase(racing, inlineTx{}, discardLogger()).
		Execute(ctx, jobcardUsecases.UpdateCostsCommand{JobCardID: j.ID(), EstimatedCost: 1, ActualCost: 999999})
	assert.True(t, apperrors.IsConflictError(err), "got %v", err)

	found, err := cards.GetByID(ctx, j.ID())
	require.NoError(t, err)
	assert.Equal(t, jobcardvo.StatusSignedOff, found.Status())
	assert.Equal(t, 1, found.SignoffCount())
	assert.Equal(t, int64(0), found.ActualCost())
}

func TestSignOff_RepeatSignoffKeepsHistory(t *testing.T) {
	gdb := setupDB(t)
	cards := NewJobCardRepository(gdb)
	signoffs := NewJobCardSignoffRepository(gdb)
	ctx := context.Background()

	j := newJobCard(t, nil)
	require.NoError(t, cards.Create(ctx, j))

	uc := jobcardUsecases.NewSignOffUseCase(cards, signoffs, NewPropertyRepository(gdb), NewAdminRepository(gdb),
		nil, db.NewTransactionManager(gdb), discardLogger())
	for _, name := range []string{"Jane Tenant", "Otieno"} {
		_, err := uc.Execute(ctx, jobcardUsecases.SignOffCommand{JobCardID: j.ID(), SignerName: name})
		require.NoError(t, err)
	}

	list, err := signoffs.ListByJobCard(ctx, j.ID())
	require.NoError(t, err)
	assert.Len(t, list, 2)

	found, err := cards.GetByID(ctx, j.ID())
	require.NoError(t, err)
	assert.Equal(t, jobcardvo.StatusSignedOff, found.Status())
}
