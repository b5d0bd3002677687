package jobcard

import "errors"

var (
	// ErrLocked is returned for any edit to a signed off job card.
	ErrLocked = errors.New("job card is signed off and can no longer be edited")

	ErrDescriptionRequired = errors.New("description is required")
	ErrSignerRequired      = errors.New("signer name is required")
	ErrNegativeCost        = errors.New("costs cannot be negative")
	ErrUseSignOff          = errors.New("use sign off to set the Signed Off status")
	ErrTicketHasJobCard    = errors.New("ticket already has a job card")
)
