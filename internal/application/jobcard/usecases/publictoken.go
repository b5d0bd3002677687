package usecases

import (
	"context"

	"github.com/estatedesk/estatedesk/internal/domain/jobcard"
	"github.com/estatedesk/estatedesk/internal/shared/id"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

// EnsurePublicTokenUseCase issues the shared link token once. Concurrent
// callers converge on whichever token was stored first.
type EnsurePublicTokenUseCase struct {
	jobCardRepo jobcard.Repository
	generate    func() (string, error)
	logger      logger.Interface
}

func NewEnsurePublicTokenUseCase(jobCardRepo jobcard.Repository, logger logger.Interface) *EnsurePublicTokenUseCase {
	return &EnsurePublicTokenUseCase{
		jobCardRepo: jobCardRepo,
		generate:    id.NewPublicToken,
		logger:      logger,
	}
}

func (uc *EnsurePublicTokenUseCase) Execute(ctx context.Context, jobCardID uint) (string, error) {
	card, err := uc.jobCardRepo.GetByID(ctx, jobCardID)
	if err != nil {
		return "", passOrInternal(uc.logger, "failed to load job card", err, "job_card_id", jobCardID)
	}

	token, issued, err := card.EnsurePublicToken(uc.generate)
	if err != nil {
		return "", passOrInternal(uc.logger, "failed to issue public token", err, "job_card_id", jobCardID)
	}
	if !issued {
		return token, nil
	}

	stored, err := uc.jobCardRepo.SetPublicTokenIfEmpty(ctx, card)
	if err != nil {
		return "", passOrInternal(uc.logger, "failed to store public token", err, "job_card_id", jobCardID)
	}
	uc.logger.Infow("public token issued", "job_card_id", jobCardID, "won", stored == token)
	return stored, nil
}
