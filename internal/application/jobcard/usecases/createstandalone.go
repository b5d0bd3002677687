package usecases

import (
	"context"

	"github.com/estatedesk/estatedesk/internal/application/jobcard/dto"
	"github.com/estatedesk/estatedesk/internal/domain/jobcard"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

type CreateStandaloneCommand struct {
	Description   string
	PropertyID    *uint
	Unit          string
	CreatedBy     *uint
	AssignedTo    *uint
	Title         string
	Activities    string
	EstimatedCost int64
}

type CreateStandaloneUseCase struct {
	jobCardRepo jobcard.Repository
	logger      logger.Interface
}

func NewCreateStandaloneUseCase(jobCardRepo jobcard.Repository, logger logger.Interface) *CreateStandaloneUseCase {
	return &CreateStandaloneUseCase{jobCardRepo: jobCardRepo, logger: logger}
}

func (uc *CreateStandaloneUseCase) Execute(ctx context.Context, cmd CreateStandaloneCommand) (*dto.JobCardDTO, error) {
	uc.logger.Infow("executing create standalone job card use case", "property_id", cmd.PropertyID)

	card, err := jobcard.NewJobCard(jobcard.Draft{
		PropertyID:    cmd.PropertyID,
		Unit:          cmd.Unit,
		CreatedBy:     cmd.CreatedBy,
		AssignedTo:    cmd.AssignedTo,
		Title:         cmd.Title,
		Description:   cmd.Description,
		Activities:    cmd.Activities,
		EstimatedCost: cmd.EstimatedCost,
	})
	if err != nil {
		return nil, domainError(err)
	}

	if err := uc.jobCardRepo.Create(ctx, card); err != nil {
		return nil, passOrInternal(uc.logger, "failed to create job card", err)
	}

	uc.logger.Infow("standalone job card created", "job_card_id", card.ID())
	return dto.ToJobCardDTO(card), nil
}
