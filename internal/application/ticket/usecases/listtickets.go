package usecases

import (
	"context"

	"github.com/estatedesk/estatedesk/internal/application/ticket/dto"
	"github.com/estatedesk/estatedesk/internal/domain/ticket"
	vo "github.com/estatedesk/estatedesk/internal/domain/ticket/valueobjects"
	"github.com/estatedesk/estatedesk/internal/shared/authorization"
	"github.com/estatedesk/estatedesk/internal/shared/constants"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

type ListTicketsQuery struct {
	Status          string
	Category        string
	PropertyID      *uint
	AssignedAdminID *uint
	UserID          *uint
	UnreadOnly      bool
	Page            int
	PageSize        int

	// Caretakers only see tickets of their own property.
	ActorRole       authorization.AdminRole
	ActorPropertyID *uint
}

type ListTicketsResult struct {
	Tickets []*dto.TicketDTO
	Total   int64
	Page    int
	Size    int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter := ticket.Filter{
		PropertyID:      query.PropertyID,
		AssignedAdminID: query.AssignedAdminID,
		UserID:          query.UserID,
		UnreadOnly:      query.UnreadOnly,
		Page:            query.Page,
		PageSize:        query.PageSize,
	}
	if filter.Page < 1 {
		filter.Page = constants.DefaultPage
	}
	if filter.PageSize < 1 || filter.PageSize > constants.MaxPageSize {
		filter.PageSize = constants.DefaultPageSize
	}

	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.Category != "" {
		category, err := vo.NewCategory(query.Category)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Category = &category
	}

	if authorization.HasPropertyAssignment(query.ActorRole) {
		if query.ActorPropertyID == nil {
			return &ListTicketsResult{Tickets: []*dto.TicketDTO{}, Page: filter.Page, Size: filter.PageSize}, nil
		}
		filter.PropertyID = query.ActorPropertyID
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	return &ListTicketsResult{
		Tickets: dto.ToTicketDTOs(tickets),
		Total:   total,
		Page:    filter.Page,
		Size:    filter.PageSize,
	}, nil
}
