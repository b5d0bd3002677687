package usecases

import (
	"context"

	"github.com/estatedesk/estatedesk/internal/application/jobcard/dto"
	"github.com/estatedesk/estatedesk/internal/domain/jobcard"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

type AddMediaCommand struct {
	JobCardID   uint
	FileName    string
	ContentType string
	Data        []byte
}

// AddMediaUseCase attaches a file. Attachments are evidence, so a signed off
// card still accepts them.
type AddMediaUseCase struct {
	jobCardRepo jobcard.Repository
	mediaRepo   jobcard.MediaRepository
	logger      logger.Interface
}

func NewAddMediaUseCase(jobCardRepo jobcard.Repository, mediaRepo jobcard.MediaRepository, logger logger.Interface) *AddMediaUseCase {
	return &AddMediaUseCase{jobCardRepo: jobCardRepo, mediaRepo: mediaRepo, logger: logger}
}

func (uc *AddMediaUseCase) Execute(ctx context.Context, cmd AddMediaCommand) (*dto.MediaDTO, error) {
	card, err := uc.jobCardRepo.GetByID(ctx, cmd.JobCardID)
	if err != nil {
		return nil, passOrInternal(uc.logger, "failed to load job card", err, "job_card_id", cmd.JobCardID)
	}
	m, err := jobcard.NewMedia(card.ID(), cmd.FileName, cmd.ContentType, cmd.Data)
	if err != nil {
		return nil, domainError(err)
	}
	if err := uc.mediaRepo.Create(ctx, m); err != nil {
		return nil, passOrInternal(uc.logger, "failed to save job card media", err, "job_card_id", card.ID())
	}
	out := dto.ToMediaDTO(m)
	return &out, nil
}

// GetMediaUseCase returns one attachment including its bytes.
type GetMediaUseCase struct {
	mediaRepo jobcard.MediaRepository
	logger    logger.Interface
}

func NewGetMediaUseCase(mediaRepo jobcard.MediaRepository, logger logger.Interface) *GetMediaUseCase {
	return &GetMediaUseCase{mediaRepo: mediaRepo, logger: logger}
}

func (uc *GetMediaUseCase) Execute(ctx context.Context, jobCardID, mediaID uint) (*jobcard.Media, error) {
	items, err := uc.mediaRepo.ListByJobCard(ctx, jobCardID)
	if err != nil {
		return nil, passOrInternal(uc.logger, "failed to load job card media", err, "job_card_id", jobCardID)
	}
	for _, m := range items {
		if m.ID() == mediaID {
			return m, nil
		}
	}
	return nil, errors.NewNotFoundError("media not found")
}
