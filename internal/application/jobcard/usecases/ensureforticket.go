package usecases

import (
	"context"
	stderrors "errors"

	"github.com/estatedesk/estatedesk/internal/domain/jobcard"
	"github.com/estatedesk/estatedesk/internal/domain/tenant"
	"github.com/estatedesk/estatedesk/internal/domain/ticket"
	"github.com/estatedesk/estatedesk/internal/shared/db"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

type EnsureForTicketCommand struct {
	TicketID  uint
	CopyMedia bool
}

type EnsureForTicketResult struct {
	JobCardID   uint `json:"job_card_id"`
	Created     bool `json:"created"`
	MediaCopied int  `json:"media_copied"`
}

// EnsureForTicketUseCase returns the job card of a ticket, deriving one from
// the ticket when none exists. Card insert and media copy share a transaction,
// joining the caller's transaction when there is one.
type EnsureForTicketUseCase struct {
	jobCardRepo      jobcard.Repository
	mediaRepo        jobcard.MediaRepository
	ticketRepo       ticket.Repository
	updateRepo       ticket.UpdateRepository
	reassignmentRepo ticket.ReassignmentRepository
	ticketMediaRepo  ticket.MediaRepository
	tenantRepo       tenant.Repository
	names            AdminNameResolver
	txManager        db.Transactor
	logger           logger.Interface
}

func NewEnsureForTicketUseCase(
	jobCardRepo jobcard.Repository,
	mediaRepo jobcard.MediaRepository,
	ticketRepo ticket.Repository,
	updateRepo ticket.UpdateRepository,
	reassignmentRepo ticket.ReassignmentRepository,
	ticketMediaRepo ticket.MediaRepository,
	tenantRepo tenant.Repository,
	names AdminNameResolver,
	txManager db.Transactor,
	logger logger.Interface,
) *EnsureForTicketUseCase {
	return &EnsureForTicketUseCase{
		jobCardRepo:      jobCardRepo,
		mediaRepo:        mediaRepo,
		ticketRepo:       ticketRepo,
		updateRepo:       updateRepo,
		reassignmentRepo: reassignmentRepo,
		ticketMediaRepo:  ticketMediaRepo,
		tenantRepo:       tenantRepo,
		names:            names,
		txManager:        txManager,
		logger:           logger,
	}
}

func (uc *EnsureForTicketUseCase) Execute(ctx context.Context, cmd EnsureForTicketCommand) (*EnsureForTicketResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	result := &EnsureForTicketResult{}
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := uc.jobCardRepo.GetByTicketID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}
		if existing != nil {
			result.JobCardID = existing.ID()
			return nil
		}

		card, err := uc.derive(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}
		if err := uc.jobCardRepo.Create(txCtx, card); err != nil {
			return err
		}
		result.JobCardID = card.ID()
		result.Created = true

		if !cmd.CopyMedia {
			return nil
		}
		result.MediaCopied, err = uc.copyMedia(txCtx, cmd.TicketID, card.ID())
		return err
	})
	if stderrors.Is(err, jobcard.ErrTicketHasJobCard) {
		// a concurrent resolve of the same ticket inserted first
		result, err = uc.existing(ctx, cmd.TicketID)
	}
	if err != nil {
		return nil, passOrInternal(uc.logger, "failed to ensure job card for ticket", err, "ticket_id", cmd.TicketID)
	}

	if result.Created {
		uc.logger.Infow("job card created from ticket",
			"ticket_id", cmd.TicketID,
			"job_card_id", result.JobCardID,
			"media_copied", result.MediaCopied)
	}
	return result, nil
}

func (uc *EnsureForTicketUseCase) existing(ctx context.Context, ticketID uint) (*EnsureForTicketResult, error) {
	card, err := uc.jobCardRepo.GetByTicketID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, errors.NewConflictError(jobcard.ErrTicketHasJobCard.Error())
	}
	return &EnsureForTicketResult{JobCardID: card.ID()}, nil
}

func (uc *EnsureForTicketUseCase) derive(ctx context.Context, ticketID uint) (*jobcard.JobCard, error) {
	t, err := uc.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	unit := ""
	reporter, err := uc.tenantRepo.GetByID(ctx, t.UserID())
	switch {
	case err == nil:
		unit = reporter.Unit()
	case errors.IsNotFoundError(err):
		uc.logger.Warnw("ticket reporter missing, job card has no unit", "ticket_id", ticketID)
	default:
		return nil, err
	}

	updates, err := uc.updateRepo.ListByTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	rows, err := uc.reassignmentRepo.ListByTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	id := t.ID()
	card, err := jobcard.NewJobCard(jobcard.Draft{
		TicketID:    &id,
		PropertyID:  t.PropertyID(),
		Unit:        unit,
		AssignedTo:  t.AssignedAdminID(),
		Title:       t.Category().String() + " " + t.Number(),
		Description: t.Description(),
		Activities:  ticket.RenderActivities(updates, rows, uc.names.Resolve(ctx, rows)),
	})
	if err != nil {
		return nil, domainError(err)
	}
	return card, nil
}

func (uc *EnsureForTicketUseCase) copyMedia(ctx context.Context, ticketID, jobCardID uint) (int, error) {
	items, err := uc.ticketMediaRepo.ListByTicket(ctx, ticketID)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, nil
	}
	copies := make([]*jobcard.Media, 0, len(items))
	for _, m := range items {
		copies = append(copies, jobcard.CopyFromTicketMedia(jobCardID, m))
	}
	return uc.mediaRepo.CopyFromTicket(ctx, copies)
}
