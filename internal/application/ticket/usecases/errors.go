package usecases

import (
	"github.com/estatedesk/estatedesk/internal/shared/errors"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

// passOrInternal returns AppErrors unchanged and hides anything else behind
// an internal error after logging it.
func passOrInternal(log logger.Interface, msg string, err error, kv ...any) error {
	if errors.IsAppError(err) {
		return err
	}
	log.Errorw(msg, append(kv, "error", err)...)
	return errors.NewInternalError(msg)
}
