package usecases

import (
	"context"

	"github.com/estatedesk/estatedesk/internal/application/ticket/dto"
	"github.com/estatedesk/estatedesk/internal/domain/admin"
	"github.com/estatedesk/estatedesk/internal/domain/ticket"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

// AdminNameResolver looks up display names for the admins referenced by
// change log rows. It is shared with the job card activity rendering.
type AdminNameResolver struct {
	adminRepo admin.Repository
	logger    logger.Interface
}

func NewAdminNameResolver(adminRepo admin.Repository, logger logger.Interface) *AdminNameResolver {
	return &AdminNameResolver{adminRepo: adminRepo, logger: logger}
}

// Resolve returns names for every admin in the given rows. Lookup failures
// degrade to the numeric fallback rendered by the timeline.
func (r *AdminNameResolver) Resolve(ctx context.Context, rows []*ticket.Reassignment) ticket.AdminNames {
	names := ticket.AdminNames{}
	seen := map[uint]struct{}{}
	ids := make([]uint, 0, len(rows)*2)
	add := func(id uint) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for _, row := range rows {
		if old := row.OldAdminID(); old != nil {
			add(*old)
		}
		add(row.NewAdminID())
	}
	if len(ids) == 0 {
		return names
	}

	admins, err := r.adminRepo.GetByIDs(ctx, ids)
	if err != nil {
		r.logger.Warnw("failed to resolve admin names", "error", err)
		return names
	}
	for _, a := range admins {
		names[a.ID()] = a.Name()
	}
	return names
}

type GetHistoryUseCase struct {
	ticketRepo       ticket.Repository
	updateRepo       ticket.UpdateRepository
	reassignmentRepo ticket.ReassignmentRepository
	names            *AdminNameResolver
	logger           logger.Interface
}

func NewGetHistoryUseCase(
	ticketRepo ticket.Repository,
	updateRepo ticket.UpdateRepository,
	reassignmentRepo ticket.ReassignmentRepository,
	names *AdminNameResolver,
	logger logger.Interface,
) *GetHistoryUseCase {
	return &GetHistoryUseCase{
		ticketRepo:       ticketRepo,
		updateRepo:       updateRepo,
		reassignmentRepo: reassignmentRepo,
		names:            names,
		logger:           logger,
	}
}

func (uc *GetHistoryUseCase) Execute(ctx context.Context, ticketID uint) ([]dto.HistoryEntryDTO, error) {
	if ticketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if _, err := uc.ticketRepo.GetByID(ctx, ticketID); err != nil {
		return nil, passOrInternal(uc.logger, "failed to load ticket", err, "ticket_id", ticketID)
	}

	updates, err := uc.updateRepo.ListByTicket(ctx, ticketID)
	if err != nil {
		return nil, passOrInternal(uc.logger, "failed to load ticket updates", err, "ticket_id", ticketID)
	}
	rows, err := uc.reassignmentRepo.ListByTicket(ctx, ticketID)
	if err != nil {
		return nil, passOrInternal(uc.logger, "failed to load reassignments", err, "ticket_id", ticketID)
	}

	return dto.ToHistoryDTOs(ticket.BuildHistory(updates, rows, uc.names.Resolve(ctx, rows))), nil
}
