package jobcard

import (
	"context"

	"github.com/estatedesk/estatedesk/internal/application/jobcard/dto"
	"github.com/estatedesk/estatedesk/internal/application/jobcard/usecases"
	domain "github.com/estatedesk/estatedesk/internal/domain/jobcard"
)

type createStandaloneUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateStandaloneCommand) (*dto.JobCardDTO, error)
}

type listJobCardsUseCase interface {
	Execute(ctx context.Context, query usecases.ListJobCardsQuery) (*usecases.ListJobCardsResult, error)
}

type getJobCardUseCase interface {
	Execute(ctx context.Context, jobCardID uint) (*dto.JobCardDetailDTO, error)
}

type updateFieldsUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateFieldsCommand) (*dto.JobCardDTO, error)
}

type updateCostsUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateCostsCommand) (*dto.JobCardDTO, error)
}

type changeStatusUseCase interface {
	Execute(ctx context.Context, cmd usecases.ChangeStatusCommand) (*dto.JobCardDTO, error)
}

type addMediaUseCase interface {
	Execute(ctx context.Context, cmd usecases.AddMediaCommand) (*dto.MediaDTO, error)
}

type getMediaUseCase interface {
	Execute(ctx context.Context, jobCardID, mediaID uint) (*domain.Media, error)
}

type signOffUseCase interface {
	Execute(ctx context.Context, cmd usecases.SignOffCommand) (*dto.SignoffDTO, error)
}

type listSignoffsUseCase interface {
	Execute(ctx context.Context, jobCardID uint) ([]dto.SignoffDTO, error)
}

type ensurePublicTokenUseCase interface {
	Execute(ctx context.Context, jobCardID uint) (string, error)
}

// baseURLProvider returns the configured public link base, empty when unset.
type baseURLProvider interface {
	PublicBaseURL(ctx context.Context) string
}

type UseCases struct {
	Create       createStandaloneUseCase
	List         listJobCardsUseCase
	Get          getJobCardUseCase
	UpdateFields updateFieldsUseCase
	UpdateCosts  updateCostsUseCase
	ChangeStatus changeStatusUseCase
	AddMedia     addMediaUseCase
	GetMedia     getMediaUseCase
	SignOff      signOffUseCase
	ListSignoffs listSignoffsUseCase
	PublicToken  ensurePublicTokenUseCase
	Links        baseURLProvider
}
