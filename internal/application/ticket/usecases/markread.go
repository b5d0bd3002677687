package usecases

import (
	"context"

	"github.com/estatedesk/estatedesk/internal/domain/ticket"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

type MarkReadUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewMarkReadUseCase(ticketRepo ticket.Repository, logger logger.Interface) *MarkReadUseCase {
	return &MarkReadUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *MarkReadUseCase) Execute(ctx context.Context, ticketID uint) error {
	if ticketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	t, err := uc.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return passOrInternal(uc.logger, "failed to load ticket", err, "ticket_id", ticketID)
	}
	if t.IsRead() {
		return nil
	}
	t.MarkRead()
	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		return passOrInternal(uc.logger, "failed to mark ticket read", err, "ticket_id", ticketID)
	}
	return nil
}
