package ticket

import (
	"context"

	admindto "github.com/estatedesk/estatedesk/internal/application/admin/dto"
	jobcardUsecases "github.com/estatedesk/estatedesk/internal/application/jobcard/usecases"
	"github.com/estatedesk/estatedesk/internal/application/ticket/dto"
	"github.com/estatedesk/estatedesk/internal/application/ticket/usecases"
	"github.com/estatedesk/estatedesk/internal/domain/ticket"
)

type createTicketUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateTicketCommand) (*dto.TicketDTO, error)
}

type listTicketsUseCase interface {
	Execute(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error)
}

type getTicketUseCase interface {
	Execute(ctx context.Context, ticketID uint) (*dto.TicketDTO, error)
}

type getHistoryUseCase interface {
	Execute(ctx context.Context, ticketID uint) ([]dto.HistoryEntryDTO, error)
}

type changeStatusUseCase interface {
	Execute(ctx context.Context, cmd usecases.ChangeStatusCommand) (*usecases.ChangeStatusResult, error)
}

type reassignTicketUseCase interface {
	Execute(ctx context.Context, cmd usecases.ReassignTicketCommand) (*usecases.ReassignTicketResult, error)
}

type addUpdateUseCase interface {
	Execute(ctx context.Context, cmd usecases.AddUpdateCommand) (*usecases.AddUpdateResult, error)
}

type markReadUseCase interface {
	Execute(ctx context.Context, ticketID uint) error
}

type setDueDateUseCase interface {
	Execute(ctx context.Context, cmd usecases.SetDueDateCommand) (*dto.TicketDTO, error)
}

type addMediaUseCase interface {
	Execute(ctx context.Context, cmd usecases.AddMediaCommand) (*dto.MediaDTO, error)
}

type listMediaUseCase interface {
	Execute(ctx context.Context, ticketID uint) ([]*ticket.Media, error)
}

type ensureJobCardUseCase interface {
	Execute(ctx context.Context, cmd jobcardUsecases.EnsureForTicketCommand) (*jobcardUsecases.EnsureForTicketResult, error)
}

// adminLookup resolves the property a caretaker is assigned to.
type adminLookup interface {
	Execute(ctx context.Context, adminID uint) (*admindto.AdminDTO, error)
}

// UseCases groups the executors the handler depends on.
type UseCases struct {
	Create        createTicketUseCase
	List          listTicketsUseCase
	Get           getTicketUseCase
	History       getHistoryUseCase
	ChangeStatus  changeStatusUseCase
	Reassign      reassignTicketUseCase
	AddUpdate     addUpdateUseCase
	MarkRead      markReadUseCase
	SetDueDate    setDueDateUseCase
	AddMedia      addMediaUseCase
	ListMedia     listMediaUseCase
	EnsureJobCard ensureJobCardUseCase
	GetAdmin      adminLookup
}
