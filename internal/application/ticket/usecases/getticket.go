package usecases

import (
	"context"

	"github.com/estatedesk/estatedesk/internal/application/ticket/dto"
	"github.com/estatedesk/estatedesk/internal/domain/ticket"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, ticketID uint) (*dto.TicketDTO, error) {
	if ticketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	t, err := uc.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, passOrInternal(uc.logger, "failed to load ticket", err, "ticket_id", ticketID)
	}
	return dto.ToTicketDTO(t), nil
}
