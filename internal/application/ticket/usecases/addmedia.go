package usecases

import (
	"context"

	"github.com/estatedesk/estatedesk/internal/application/ticket/dto"
	"github.com/estatedesk/estatedesk/internal/domain/ticket"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

type AddMediaCommand struct {
	TicketID    uint
	FileName    string
	ContentType string
	Data        []byte
}

type AddMediaUseCase struct {
	ticketRepo ticket.Repository
	mediaRepo  ticket.MediaRepository
	logger     logger.Interface
}

func NewAddMediaUseCase(ticketRepo ticket.Repository, mediaRepo ticket.MediaRepository, logger logger.Interface) *AddMediaUseCase {
	return &AddMediaUseCase{ticketRepo: ticketRepo, mediaRepo: mediaRepo, logger: logger}
}

func (uc *AddMediaUseCase) Execute(ctx context.Context, cmd AddMediaCommand) (*dto.MediaDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, passOrInternal(uc.logger, "failed to load ticket", err, "ticket_id", cmd.TicketID)
	}

	m, err := ticket.NewMedia(t.ID(), cmd.FileName, cmd.ContentType, cmd.Data)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.mediaRepo.Create(ctx, m); err != nil {
		uc.logger.Errorw("failed to save ticket media", "error", err, "ticket_id", t.ID())
		return nil, errors.NewInternalError("failed to save ticket media")
	}

	out := dto.ToMediaDTO(m)
	return &out, nil
}

type ListMediaUseCase struct {
	mediaRepo ticket.MediaRepository
	logger    logger.Interface
}

func NewListMediaUseCase(mediaRepo ticket.MediaRepository, logger logger.Interface) *ListMediaUseCase {
	return &ListMediaUseCase{mediaRepo: mediaRepo, logger: logger}
}

func (uc *ListMediaUseCase) Execute(ctx context.Context, ticketID uint) ([]*ticket.Media, error) {
	items, err := uc.mediaRepo.ListByTicket(ctx, ticketID)
	if err != nil {
		return nil, passOrInternal(uc.logger, "failed to list ticket media", err, "ticket_id", ticketID)
	}
	return items, nil
}
