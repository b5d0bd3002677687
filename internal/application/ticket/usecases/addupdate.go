package usecases

import (
	"context"
	"time"

	"github.com/estatedesk/estatedesk/internal/domain/tenant"
	"github.com/estatedesk/estatedesk/internal/domain/ticket"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

type AddUpdateCommand struct {
	TicketID   uint
	Text       string
	AuthorName string
}

type AddUpdateResult struct {
	UpdateID  uint      `json:"update_id"`
	TicketID  uint      `json:"ticket_id"`
	CreatedAt time.Time `json:"created_at"`
	Notified  bool      `json:"notified"`
}

type AddUpdateUseCase struct {
	ticketRepo ticket.Repository
	updateRepo ticket.UpdateRepository
	tenantRepo tenant.Repository
	notifier   TicketNotifier
	logger     logger.Interface
}

func NewAddUpdateUseCase(
	ticketRepo ticket.Repository,
	updateRepo ticket.UpdateRepository,
	tenantRepo tenant.Repository,
	notifier TicketNotifier,
	logger logger.Interface,
) *AddUpdateUseCase {
	return &AddUpdateUseCase{
		ticketRepo: ticketRepo,
		updateRepo: updateRepo,
		tenantRepo: tenantRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *AddUpdateUseCase) Execute(ctx context.Context, cmd AddUpdateCommand) (*AddUpdateResult, error) {
	uc.logger.Infow("executing add update use case", "ticket_id", cmd.TicketID, "author", cmd.AuthorName)

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, passOrInternal(uc.logger, "failed to load ticket", err, "ticket_id", cmd.TicketID)
	}

	u, err := ticket.NewUpdate(t.ID(), cmd.Text, cmd.AuthorName)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.updateRepo.Create(ctx, u); err != nil {
		uc.logger.Errorw("failed to save ticket update", "error", err, "ticket_id", t.ID())
		return nil, errors.NewInternalError("failed to save ticket update")
	}

	return &AddUpdateResult{
		UpdateID:  u.ID(),
		TicketID:  t.ID(),
		CreatedAt: u.CreatedAt(),
		Notified:  uc.notifyTenant(ctx, t, u),
	}, nil
}

// notifyTenant never fails the update. A tenant without a contact handle is
// only logged.
func (uc *AddUpdateUseCase) notifyTenant(ctx context.Context, t *ticket.Ticket, u *ticket.Update) bool {
	reporter, err := uc.tenantRepo.GetByID(ctx, t.UserID())
	if err != nil {
		uc.logger.Warnw("ticket reporter not found, update not sent", "ticket_id", t.ID(), "error", err)
		return false
	}
	if !reporter.HasContact() {
		uc.logger.Warnw("ticket reporter has no contact handle, update not sent", "ticket_id", t.ID())
		return false
	}
	return uc.notifier.TicketUpdated(ctx, reporter.Contact(), t.Number(), u.Text()) == nil
}
