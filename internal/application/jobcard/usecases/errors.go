package usecases

import (
	stderrors "errors"

	"github.com/estatedesk/estatedesk/internal/domain/jobcard"
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

// passOrInternal returns AppErrors unchanged, maps a lock refused by storage
// to a conflict and hides anything else behind an internal error after logging it.
func passOrInternal(log logger.Interface, msg string, err error, kv ...any) error {
	if errors.IsAppError(err) {
		return err
	}
	if stderrors.Is(err, jobcard.ErrLocked) {
		return errors.NewConflictError(err.Error())
	}
	log.Errorw(msg, append(kv, "error", err)...)
	return errors.NewInternalError(msg)
}

// domainError maps job card rule violations to AppErrors.
func domainError(err error) error {
	switch {
	case stderrors.Is(err, jobcard.ErrLocked):
		return errors.NewConflictError(err.Error())
	default:
		return errors.NewValidationError(err.Error())
	}
}
