package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/estatedesk/estatedesk/internal/domain/admin"
	"github.com/estatedesk/estatedesk/internal/domain/ticket"
	"github.com/estatedesk/estatedesk/internal/shared/authorization"
	"github.com/estatedesk/estatedesk/internal/shared/constants"
	"github.com/estatedesk/estatedesk/internal/shared/db"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

type ReassignTicketCommand struct {
	TicketID   uint
	NewAdminID uint
	// OldAdminID, when set, must match the current assignee.
	OldAdminID *uint
	ActorName  string
	ActorRole  authorization.AdminRole
	Reason     string
}

type ReassignTicketResult struct {
	TicketID      uint   `json:"ticket_id"`
	OldAdminID    *uint  `json:"old_admin_id,omitempty"`
	NewAdminID    uint   `json:"new_admin_id"`
	ReassignCount int    `json:"reassign_count"`
	Override      bool   `json:"override"`
	Notified      bool   `json:"notified"`
	Message       string `json:"message"`
}

// ReassignTicketUseCase moves a ticket to another admin. The latest
// reassign count is read and the new log row written while the ticket row
// is locked, so two concurrent reassignments cannot both pass the limit.
type ReassignTicketUseCase struct {
	ticketRepo       ticket.Repository
	reassignmentRepo ticket.ReassignmentRepository
	adminRepo        admin.Repository
	notifier         TicketNotifier
	txManager        db.Transactor
	limit            int
	logger           logger.Interface
}

func NewReassignTicketUseCase(
	ticketRepo ticket.Repository,
	reassignmentRepo ticket.ReassignmentRepository,
	adminRepo admin.Repository,
	notifier TicketNotifier,
	txManager db.Transactor,
	limit int,
	logger logger.Interface,
) *ReassignTicketUseCase {
	if limit <= 0 {
		limit = constants.DefaultReassignLimit
	}
	return &ReassignTicketUseCase{
		ticketRepo:       ticketRepo,
		reassignmentRepo: reassignmentRepo,
		adminRepo:        adminRepo,
		notifier:         notifier,
		txManager:        txManager,
		limit:            limit,
		logger:           logger,
	}
}

func (uc *ReassignTicketUseCase) Execute(ctx context.Context, cmd ReassignTicketCommand) (*ReassignTicketResult, error) {
	uc.logger.Infow("executing reassign ticket use case",
		"ticket_id", cmd.TicketID,
		"new_admin_id", cmd.NewAdminID,
		"actor", cmd.ActorName,
		"actor_role", cmd.ActorRole.String())

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	newAdmin, err := uc.adminRepo.GetByID(ctx, cmd.NewAdminID)
	if err != nil {
		return nil, passOrInternal(uc.logger, "failed to load admin", err, "admin_id", cmd.NewAdminID)
	}

	override := authorization.CanOverrideReassignmentLimit(cmd.ActorRole)
	var (
		t     *ticket.Ticket
		entry *ticket.Reassignment
	)

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		t, err = uc.ticketRepo.GetByIDForUpdate(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}

		oldAdminID := t.AssignedAdminID()
		if cmd.OldAdminID != nil && (oldAdminID == nil || *oldAdminID != *cmd.OldAdminID) {
			return errors.NewConflictError("ticket assignment changed, reload and try again")
		}
		if oldAdminID != nil && *oldAdminID == newAdmin.ID() {
			return errors.NewValidationError("ticket is already assigned to this admin")
		}

		latest, err := uc.reassignmentRepo.LatestCount(txCtx, t.ID())
		if err != nil {
			return err
		}
		next, err := ticket.NextReassignCount(latest, uc.limit, override)
		if stderrors.Is(err, ticket.ErrReassignLimitReached) {
			return errors.NewLimitExceededError(
				"reassignment limit reached",
				fmt.Sprintf("ticket has been reassigned %d times; only a super admin can reassign it again", latest),
			)
		}
		if err != nil {
			return err
		}

		if err := t.ReassignTo(newAdmin.ID()); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		entry, err = ticket.NewReassignment(t.ID(), oldAdminID, newAdmin.ID(), cmd.ActorName, cmd.Reason, next, override)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		return uc.reassignmentRepo.Create(txCtx, entry)
	})
	if err != nil {
		if errors.IsLimitExceededError(err) {
			uc.logger.Warnw("reassignment refused", "ticket_id", cmd.TicketID, "actor", cmd.ActorName)
			return nil, err
		}
		return nil, passOrInternal(uc.logger, "failed to reassign ticket", err, "ticket_id", cmd.TicketID)
	}

	// best effort, after commit
	notified := uc.notifyAssignee(ctx, newAdmin, t)

	uc.logger.Infow("ticket reassigned",
		"ticket_id", t.ID(),
		"new_admin_id", newAdmin.ID(),
		"reassign_count", entry.ReassignCount(),
		"override", override)

	return &ReassignTicketResult{
		TicketID:      t.ID(),
		OldAdminID:    entry.OldAdminID(),
		NewAdminID:    newAdmin.ID(),
		ReassignCount: entry.ReassignCount(),
		Override:      override,
		Notified:      notified,
		Message:       fmt.Sprintf("Ticket %s reassigned to %s", t.Number(), newAdmin.Name()),
	}, nil
}

func (uc *ReassignTicketUseCase) notifyAssignee(ctx context.Context, a *admin.Admin, t *ticket.Ticket) bool {
	err := uc.notifier.TicketAssigned(ctx, a.Contact(), t.Number(), t.Category().String(), t.Description())
	if err != nil {
		uc.logger.Warnw("assignee not notified", "ticket_id", t.ID(), "admin_id", a.ID(), "error", err)
		return false
	}
	return true
}

func (uc *ReassignTicketUseCase) validateCommand(cmd ReassignTicketCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if cmd.NewAdminID == 0 {
		return errors.NewValidationError("new admin ID is required")
	}
	if cmd.ActorName == "" {
		return errors.NewValidationError("actor name is required")
	}
	return nil
}
