package usecases

import (
	"context"

	"github.com/estatedesk/estatedesk/internal/application/jobcard/dto"
	"github.com/estatedesk/estatedesk/internal/domain/jobcard"
	vo "github.com/estatedesk/estatedesk/internal/domain/jobcard/valueobjects"
	"github.com/estatedesk/estatedesk/internal/shared/constants"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

type GetJobCardUseCase struct {
	jobCardRepo jobcard.Repository
	mediaRepo   jobcard.MediaRepository
	signoffRepo jobcard.SignoffRepository
	logger      logger.Interface
}

func NewGetJobCardUseCase(
	jobCardRepo jobcard.Repository,
	mediaRepo jobcard.MediaRepository,
	signoffRepo jobcard.SignoffRepository,
	logger logger.Interface,
) *GetJobCardUseCase {
	return &GetJobCardUseCase{
		jobCardRepo: jobCardRepo,
		mediaRepo:   mediaRepo,
		signoffRepo: signoffRepo,
		logger:      logger,
	}
}

func (uc *GetJobCardUseCase) Execute(ctx context.Context, jobCardID uint) (*dto.JobCardDetailDTO, error) {
	if jobCardID == 0 {
		return nil, errors.NewValidationError("job card ID is required")
	}
	card, err := uc.jobCardRepo.GetByID(ctx, jobCardID)
	if err != nil {
		return nil, passOrInternal(uc.logger, "failed to load job card", err, "job_card_id", jobCardID)
	}
	media, err := uc.mediaRepo.ListByJobCard(ctx, jobCardID)
	if err != nil {
		return nil, passOrInternal(uc.logger, "failed to load job card media", err, "job_card_id", jobCardID)
	}
	signoffs, err := uc.signoffRepo.ListByJobCard(ctx, jobCardID)
	if err != nil {
		return nil, passOrInternal(uc.logger, "failed to load signoffs", err, "job_card_id", jobCardID)
	}

	out := &dto.JobCardDetailDTO{
		JobCardDTO: dto.ToJobCardDTO(card),
		Media:      make([]dto.MediaDTO, 0, len(media)),
		Signoffs:   make([]dto.SignoffDTO, 0, len(signoffs)),
	}
	for _, m := range media {
		out.Media = append(out.Media, dto.ToMediaDTO(m))
	}
	for _, s := range signoffs {
		out.Signoffs = append(out.Signoffs, dto.ToSignoffDTO(s))
	}
	return out, nil
}

type ListJobCardsQuery struct {
	Status     string
	PropertyID *uint
	AssignedTo *uint
	TicketID   *uint
	Page       int
	PageSize   int
}

type ListJobCardsResult struct {
	JobCards []*dto.JobCardDTO
	Total    int64
	Page     int
	Size     int
}

type ListJobCardsUseCase struct {
	jobCardRepo jobcard.Repository
	logger      logger.Interface
}

func NewListJobCardsUseCase(jobCardRepo jobcard.Repository, logger logger.Interface) *ListJobCardsUseCase {
	return &ListJobCardsUseCase{jobCardRepo: jobCardRepo, logger: logger}
}

func (uc *ListJobCardsUseCase) Execute(ctx context.Context, query ListJobCardsQuery) (*ListJobCardsResult, error) {
	filter := jobcard.Filter{
		PropertyID: query.PropertyID,
		AssignedTo: query.AssignedTo,
		TicketID:   query.TicketID,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}
	if filter.Page < 1 {
		filter.Page = constants.DefaultPage
	}
	if filter.PageSize < 1 || filter.PageSize > constants.MaxPageSize {
		filter.PageSize = constants.DefaultPageSize
	}
	if query.Status != "" {
		status, err := vo.NewJobCardStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	cards, total, err := uc.jobCardRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list job cards", "error", err)
		return nil, errors.NewInternalError("failed to list job cards")
	}
	return &ListJobCardsResult{
		JobCards: dto.ToJobCardDTOs(cards),
		Total:    total,
		Page:     filter.Page,
		Size:     filter.PageSize,
	}, nil
}
