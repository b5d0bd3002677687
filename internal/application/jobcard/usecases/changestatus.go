package usecases

import (
	"context"

	"github.com/estatedesk/estatedesk/internal/application/jobcard/dto"
	"github.com/estatedesk/estatedesk/internal/domain/jobcard"
	vo "github.com/estatedesk/estatedesk/internal/domain/jobcard/valueobjects"
	"github.com/estatedesk/estatedesk/internal/shared/db"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

type ChangeStatusCommand struct {
	JobCardID uint
	Status    string
}

type ChangeStatusUseCase struct {
	jobCardRepo jobcard.Repository
	txManager   db.Transactor
	logger      logger.Interface
}

func NewChangeStatusUseCase(jobCardRepo jobcard.Repository, txManager db.Transactor, logger logger.Interface) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{jobCardRepo: jobCardRepo, txManager: txManager, logger: logger}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*dto.JobCardDTO, error) {
	uc.logger.Infow("executing change job card status use case", "job_card_id", cmd.JobCardID, "status", cmd.Status)

	status, err := vo.NewJobCardStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	card, err := editLocked(ctx, uc.txManager, uc.jobCardRepo, cmd.JobCardID, func(card *jobcard.JobCard) error {
		return card.ChangeStatus(status)
	})
	if err != nil {
		if errors.IsConflictError(err) || errors.IsValidationError(err) {
			uc.logger.Warnw("job card status change refused", "job_card_id", cmd.JobCardID, "reason", err.Error())
		}
		return nil, passOrInternal(uc.logger, "failed to update job card", err, "job_card_id", cmd.JobCardID)
	}
	return dto.ToJobCardDTO(card), nil
}
