package usecases

import (
	"context"
	"time"

	"github.com/estatedesk/estatedesk/internal/application/notification"
	"github.com/estatedesk/estatedesk/internal/domain/tenant"
	"github.com/estatedesk/estatedesk/internal/domain/ticket"
	vo "github.com/estatedesk/estatedesk/internal/domain/ticket/valueobjects"
	"github.com/estatedesk/estatedesk/internal/shared/db"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID uint
	Status   string
}

type ChangeStatusResult struct {
	TicketID   uint       `json:"ticket_id"`
	Status     string     `json:"status"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	JobCardID  *uint      `json:"job_card_id,omitempty"`
	LinkSent   bool       `json:"link_sent"`
}

// ChangeStatusUseCase applies a status. A transition into Resolved also
// provisions the ticket's job card and public token in the same transaction,
// then notifies the tenant after commit.
type ChangeStatusUseCase struct {
	ticketRepo ticket.Repository
	tenantRepo tenant.Repository
	jobCards   JobCardProvisioner
	links      LinkBaseURLProvider
	notifier   TicketNotifier
	txManager  db.Transactor
	logger     logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.Repository,
	tenantRepo tenant.Repository,
	jobCards JobCardProvisioner,
	links LinkBaseURLProvider,
	notifier TicketNotifier,
	txManager db.Transactor,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo: ticketRepo,
		tenantRepo: tenantRepo,
		jobCards:   jobCards,
		links:      links,
		notifier:   notifier,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case", "ticket_id", cmd.TicketID, "status", cmd.Status)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	status, err := vo.NewTicketStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var (
		t              *ticket.Ticket
		becameResolved bool
		jobCardID      uint
		token          string
		baseURL        string
	)

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		t, err = uc.ticketRepo.GetByIDForUpdate(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}
		if becameResolved, err = t.ChangeStatus(status); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}
		if !becameResolved {
			return nil
		}

		if jobCardID, err = uc.jobCards.EnsureForTicket(txCtx, t.ID(), true); err != nil {
			return err
		}
		baseURL = uc.links.PublicBaseURL(txCtx)
		if baseURL == "" {
			return nil
		}
		token, err = uc.jobCards.EnsurePublicToken(txCtx, jobCardID)
		return err
	})
	if err != nil {
		return nil, passOrInternal(uc.logger, "failed to change ticket status", err, "ticket_id", cmd.TicketID)
	}

	result := &ChangeStatusResult{
		TicketID:   t.ID(),
		Status:     t.Status().String(),
		ResolvedAt: t.ResolvedAt(),
	}
	if becameResolved {
		result.JobCardID = &jobCardID
		result.LinkSent = uc.notifyResolved(ctx, t, jobCardID, baseURL, token)
	}

	uc.logger.Infow("ticket status changed",
		"ticket_id", t.ID(),
		"status", t.Status().String(),
		"job_card_id", jobCardID)

	return result, nil
}

// notifyResolved runs the post-commit notification steps. It reports whether
// the verification link reached the tenant.
func (uc *ChangeStatusUseCase) notifyResolved(ctx context.Context, t *ticket.Ticket, jobCardID uint, baseURL, token string) bool {
	reporter, err := uc.tenantRepo.GetByID(ctx, t.UserID())
	if err != nil {
		uc.logger.Warnw("cannot notify tenant of resolution", "ticket_id", t.ID(), "error", err)
		return false
	}

	_ = uc.notifier.StatusChanged(ctx, reporter.Contact(), reporter.Name(), t.Number(), t.Status().String())

	if baseURL == "" || token == "" {
		uc.logger.Infow("public base URL not configured, job card link not shared",
			"ticket_id", t.ID(), "job_card_id", jobCardID)
		return false
	}

	link := notification.VerificationLink(baseURL, jobCardID, token)
	return uc.notifier.JobCardLink(ctx, reporter.Contact(), t.Number(), link) == nil
}
