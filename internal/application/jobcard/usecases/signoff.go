package usecases

import (
	"context"

	"github.com/estatedesk/estatedesk/internal/application/jobcard/dto"
	"github.com/estatedesk/estatedesk/internal/domain/admin"
	"github.com/estatedesk/estatedesk/internal/domain/jobcard"
	"github.com/estatedesk/estatedesk/internal/domain/property"
	"github.com/estatedesk/estatedesk/internal/domain/ticket"
	"github.com/estatedesk/estatedesk/internal/shared/db"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

type SignOffCommand struct {
	JobCardID  uint
	SignerName string
	Role       string
	Notes      string
	Signature  []byte
}

// SignOffUseCase appends a signoff and locks the card. The property
// supervisor is mailed a summary after commit when they have an address.
type SignOffUseCase struct {
	jobCardRepo  jobcard.Repository
	signoffRepo  jobcard.SignoffRepository
	propertyRepo property.Repository
	adminRepo    admin.Repository
	mailer       SignoffMailer
	txManager    db.Transactor
	logger       logger.Interface
}

func NewSignOffUseCase(
	jobCardRepo jobcard.Repository,
	signoffRepo jobcard.SignoffRepository,
	propertyRepo property.Repository,
	adminRepo admin.Repository,
	mailer SignoffMailer,
	txManager db.Transactor,
	logger logger.Interface,
) *SignOffUseCase {
	return &SignOffUseCase{
		jobCardRepo:  jobCardRepo,
		signoffRepo:  signoffRepo,
		propertyRepo: propertyRepo,
		adminRepo:    adminRepo,
		mailer:       mailer,
		txManager:    txManager,
		logger:       logger,
	}
}

func (uc *SignOffUseCase) Execute(ctx context.Context, cmd SignOffCommand) (*dto.SignoffDTO, error) {
	uc.logger.Infow("executing sign off use case", "job_card_id", cmd.JobCardID, "signer", cmd.SignerName)

	var (
		card    *jobcard.JobCard
		signoff *jobcard.Signoff
	)
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		card, err = uc.jobCardRepo.GetByIDForUpdate(txCtx, cmd.JobCardID)
		if err != nil {
			return err
		}
		signoff, err = card.SignOff(cmd.SignerName, cmd.Role, cmd.Notes, cmd.Signature)
		if err != nil {
			return domainError(err)
		}
		if err := uc.signoffRepo.Create(txCtx, signoff); err != nil {
			return err
		}
		return uc.jobCardRepo.MarkSignedOff(txCtx, card)
	})
	if err != nil {
		return nil, passOrInternal(uc.logger, "failed to sign off job card", err, "job_card_id", cmd.JobCardID)
	}

	uc.notifySupervisor(ctx, card, signoff)

	out := dto.ToSignoffDTO(signoff)
	return &out, nil
}

func (uc *SignOffUseCase) notifySupervisor(ctx context.Context, card *jobcard.JobCard, s *jobcard.Signoff) {
	if uc.mailer == nil || card.PropertyID() == nil {
		return
	}
	prop, err := uc.propertyRepo.GetByID(ctx, *card.PropertyID())
	if err != nil || prop.SupervisorID() == nil {
		return
	}
	supervisor, err := uc.adminRepo.GetByID(ctx, *prop.SupervisorID())
	if err != nil || supervisor.Email() == "" {
		uc.logger.Debugw("no supervisor e-mail for sign off notice", "job_card_id", card.ID())
		return
	}

	notice := SignoffNotice{
		SupervisorName: supervisor.Name(),
		JobCardID:      card.ID(),
		Title:          card.Title(),
		PropertyName:   prop.Name(),
		Unit:           card.Unit(),
		SignerName:     s.SignerName(),
		SignerRole:     s.Role(),
		Notes:          s.Notes(),
		ActualCost:     card.ActualCost(),
		SignedAt:       s.CreatedAt(),
	}
	if card.TicketID() != nil {
		notice.TicketNumber = ticket.FormatNumber(*card.TicketID())
	}

	if err := uc.mailer.SendSignoffNotice(ctx, supervisor.Email(), notice); err != nil {
		uc.logger.Warnw("failed to send sign off notice",
			"job_card_id", card.ID(),
			"to", supervisor.Email(),
			"error", err)
	}
}

type ListSignoffsUseCase struct {
	signoffRepo jobcard.SignoffRepository
	logger      logger.Interface
}

func NewListSignoffsUseCase(signoffRepo jobcard.SignoffRepository, logger logger.Interface) *ListSignoffsUseCase {
	return &ListSignoffsUseCase{signoffRepo: signoffRepo, logger: logger}
}

func (uc *ListSignoffsUseCase) Execute(ctx context.Context, jobCardID uint) ([]dto.SignoffDTO, error) {
	if jobCardID == 0 {
		return nil, errors.NewValidationError("job card ID is required")
	}
	rows, err := uc.signoffRepo.ListByJobCard(ctx, jobCardID)
	if err != nil {
		return nil, passOrInternal(uc.logger, "failed to list signoffs", err, "job_card_id", jobCardID)
	}
	out := make([]dto.SignoffDTO, 0, len(rows))
	for _, s := range rows {
		out = append(out, dto.ToSignoffDTO(s))
	}
	return out, nil
}
