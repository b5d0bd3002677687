// Package notification sends tenant and staff messages through the
// messaging gateway. Every send is best effort: failures are logged and
// returned wrapped in ErrDeliveryFailed, never allowed to undo data changes.
package notification

import (
	"context"
	"errors"
)

var (
	// ErrDeliveryFailed wraps any gateway error.
	ErrDeliveryFailed = errors.New("notification delivery failed")

	// ErrNoDestination is returned when the recipient has no contact handle.
	ErrNoDestination = errors.New("recipient has no contact handle")
)

// Gateway is the outbound messaging transport.
type Gateway interface {
	SendText(ctx context.Context, to, message string) error
	SendTemplate(ctx context.Context, to, templateName string, params []string) error
}
