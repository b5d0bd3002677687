package usecases

import (
	"context"

	"github.com/estatedesk/estatedesk/internal/application/ticket/dto"
	"github.com/estatedesk/estatedesk/internal/domain/ticket"
	"github.com/estatedesk/estatedesk/internal/shared/biztime"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

type SetDueDateCommand struct {
	TicketID uint
	// DueDate is a YYYY-MM-DD date in the business timezone; empty clears it.
	DueDate string
}

type SetDueDateUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewSetDueDateUseCase(ticketRepo ticket.Repository, logger logger.Interface) *SetDueDateUseCase {
	return &SetDueDateUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *SetDueDateUseCase) Execute(ctx context.Context, cmd SetDueDateCommand) (*dto.TicketDTO, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, passOrInternal(uc.logger, "failed to load ticket", err, "ticket_id", cmd.TicketID)
	}

	if cmd.DueDate == "" {
		t.SetDueDate(nil)
	} else {
		day, err := biztime.ParseDate(cmd.DueDate)
		if err != nil {
			return nil, errors.NewValidationError("invalid due date, expected YYYY-MM-DD")
		}
		due := biztime.EndOfDay(day)
		t.SetDueDate(&due)
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		return nil, passOrInternal(uc.logger, "failed to set due date", err, "ticket_id", cmd.TicketID)
	}
	return dto.ToTicketDTO(t), nil
}
