package usecases

import (
	"context"

	"github.com/estatedesk/estatedesk/internal/application/jobcard/dto"
	"github.com/estatedesk/estatedesk/internal/domain/jobcard"
	"github.com/estatedesk/estatedesk/internal/shared/db"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

// editLocked loads the card under a row lock, applies edit and writes it back
// in one transaction. A concurrent signoff either commits first and the edit
// is refused, or waits for the edit to finish.
func editLocked(
	ctx context.Context,
	txManager db.Transactor,
	repo jobcard.Repository,
	id uint,
	edit func(card *jobcard.JobCard) error,
) (*jobcard.JobCard, error) {
	var card *jobcard.JobCard
	err := txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		card, err = repo.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if err := edit(card); err != nil {
			return domainError(err)
		}
		return repo.Update(txCtx, card)
	})
	return card, err
}

type UpdateFieldsCommand struct {
	JobCardID   uint
	Title       *string
	Description *string
	Activities  *string
	AssignedTo  *uint
}

type UpdateFieldsUseCase struct {
	jobCardRepo jobcard.Repository
	txManager   db.Transactor
	logger      logger.Interface
}

func NewUpdateFieldsUseCase(jobCardRepo jobcard.Repository, txManager db.Transactor, logger logger.Interface) *UpdateFieldsUseCase {
	return &UpdateFieldsUseCase{jobCardRepo: jobCardRepo, txManager: txManager, logger: logger}
}

func (uc *UpdateFieldsUseCase) Execute(ctx context.Context, cmd UpdateFieldsCommand) (*dto.JobCardDTO, error) {
	card, err := editLocked(ctx, uc.txManager, uc.jobCardRepo, cmd.JobCardID, func(card *jobcard.JobCard) error {
		return card.UpdateFields(jobcard.FieldsUpdate{
			Title:       cmd.Title,
			Description: cmd.Description,
			Activities:  cmd.Activities,
			AssignedTo:  cmd.AssignedTo,
		})
	})
	if err != nil {
		if errors.IsConflictError(err) || errors.IsValidationError(err) {
			uc.logger.Warnw("job card update refused", "job_card_id", cmd.JobCardID, "reason", err.Error())
		}
		return nil, passOrInternal(uc.logger, "failed to update job card", err, "job_card_id", cmd.JobCardID)
	}
	return dto.ToJobCardDTO(card), nil
}

// UpdateCostsCommand carries costs in minor currency units.
type UpdateCostsCommand struct {
	JobCardID     uint
	EstimatedCost int64
	ActualCost    int64
}

type UpdateCostsUseCase struct {
	jobCardRepo jobcard.Repository
	txManager   db.Transactor
	logger      logger.Interface
}

func NewUpdateCostsUseCase(jobCardRepo jobcard.Repository, txManager db.Transactor, logger logger.Interface) *UpdateCostsUseCase {
	return &UpdateCostsUseCase{jobCardRepo: jobCardRepo, txManager: txManager, logger: logger}
}

func (uc *UpdateCostsUseCase) Execute(ctx context.Context, cmd UpdateCostsCommand) (*dto.JobCardDTO, error) {
	if cmd.JobCardID == 0 {
		return nil, errors.NewValidationError("job card ID is required")
	}
	card, err := editLocked(ctx, uc.txManager, uc.jobCardRepo, cmd.JobCardID, func(card *jobcard.JobCard) error {
		return card.UpdateCosts(cmd.EstimatedCost, cmd.ActualCost)
	})
	if err != nil {
		if errors.IsConflictError(err) {
			uc.logger.Warnw("job card cost update refused", "job_card_id", cmd.JobCardID, "reason", err.Error())
		}
		return nil, passOrInternal(uc.logger, "failed to update job card costs", err, "job_card_id", cmd.JobCardID)
	}
	return dto.ToJobCardDTO(card), nil
}
