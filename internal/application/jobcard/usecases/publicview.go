package usecases

import (
	"context"
	"strings"

	"github.com/estatedesk/estatedesk/internal/domain/jobcard"
	"github.com/estatedesk/estatedesk/internal/domain/property"
	"github.com/estatedesk/estatedesk/internal/domain/tenant"
	"github.com/estatedesk/estatedesk/internal/domain/ticket"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

// errPublicNotFound is the only failure the public endpoints expose. A wrong
// token and a missing card are indistinguishable.
func errPublicNotFound() error {
	return errors.NewNotFoundError("job card not found")
}

type PublicViewQuery struct {
	JobCardID uint
	Token     string
}

type GetPublicViewUseCase struct {
	jobCardRepo  jobcard.Repository
	signoffRepo  jobcard.SignoffRepository
	propertyRepo property.Repository
	logger       logger.Interface
}

func NewGetPublicViewUseCase(
	jobCardRepo jobcard.Repository,
	signoffRepo jobcard.SignoffRepository,
	propertyRepo property.Repository,
	logger logger.Interface,
) *GetPublicViewUseCase {
	return &GetPublicViewUseCase{
		jobCardRepo:  jobCardRepo,
		signoffRepo:  signoffRepo,
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

func (uc *GetPublicViewUseCase) Execute(ctx context.Context, q PublicViewQuery) (*jobcard.PublicView, error) {
	card, err := loadByToken(ctx, uc.jobCardRepo, uc.logger, q.JobCardID, q.Token)
	if err != nil {
		return nil, err
	}

	propertyName := ""
	if card.PropertyID() != nil {
		if prop, err := uc.propertyRepo.GetByID(ctx, *card.PropertyID()); err == nil {
			propertyName = prop.Name()
		}
	}

	signoffs, err := uc.signoffRepo.ListByJobCard(ctx, card.ID())
	if err != nil {
		return nil, passOrInternal(uc.logger, "failed to load signoffs", err, "job_card_id", card.ID())
	}

	view := card.Redact(propertyName, signoffs)
	return &view, nil
}

// loadByToken returns the card only when the token matches. Lookup failures
// other than storage errors collapse into the public not found error.
func loadByToken(ctx context.Context, repo jobcard.Repository, log logger.Interface, id uint, token string) (*jobcard.JobCard, error) {
	token = strings.TrimSpace(token)
	if id == 0 || token == "" {
		return nil, errPublicNotFound()
	}
	card, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errPublicNotFound()
		}
		return nil, passOrInternal(log, "failed to load job card", err, "job_card_id", id)
	}
	if !card.TokenMatches(token) {
		log.Warnw("public job card token mismatch", "job_card_id", id)
		return nil, errPublicNotFound()
	}
	return card, nil
}

type VerifyPINCommand struct {
	JobCardID uint
	Token     string
	PIN       string
}

// VerifyPINUseCase checks the PIN against the reporting tenant's contact
// handle. Every missing link in card, ticket and tenant fails closed.
type VerifyPINUseCase struct {
	jobCardRepo jobcard.Repository
	ticketRepo  ticket.Repository
	tenantRepo  tenant.Repository
	logger      logger.Interface
}

func NewVerifyPINUseCase(
	jobCardRepo jobcard.Repository,
	ticketRepo ticket.Repository,
	tenantRepo tenant.Repository,
	logger logger.Interface,
) *VerifyPINUseCase {
	return &VerifyPINUseCase{
		jobCardRepo: jobCardRepo,
		ticketRepo:  ticketRepo,
		tenantRepo:  tenantRepo,
		logger:      logger,
	}
}

func (uc *VerifyPINUseCase) Execute(ctx context.Context, cmd VerifyPINCommand) (bool, error) {
	card, err := loadByToken(ctx, uc.jobCardRepo, uc.logger, cmd.JobCardID, cmd.Token)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return false, nil
		}
		return false, err
	}
	if card.TicketID() == nil {
		return false, nil
	}

	t, err := uc.ticketRepo.GetByID(ctx, *card.TicketID())
	if err != nil {
		if errors.IsNotFoundError(err) {
			return false, nil
		}
		return false, passOrInternal(uc.logger, "failed to load ticket", err, "job_card_id", card.ID())
	}
	reporter, err := uc.tenantRepo.GetByID(ctx, t.UserID())
	if err != nil {
		if errors.IsNotFoundError(err) {
			return false, nil
		}
		return false, passOrInternal(uc.logger, "failed to load tenant", err, "job_card_id", card.ID())
	}

	ok := jobcard.MatchPIN(reporter.Contact(), cmd.PIN)
	if !ok {
		uc.logger.Infow("job card PIN rejected", "job_card_id", card.ID())
	}
	return ok, nil
}
