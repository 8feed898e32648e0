package contract

import (
	"errors"
	"fmt"

	"badge_gallery/sdk"
)

// Every failure is fatal to the triggering call: the export layer converts
// these into a host abort, so a caller either sees the full effect of an
// operation or none of it.

var (
	// Authorization
	ErrNotAuthority         = errors.New("authority only")
	ErrNotProposedAuthority = errors.New("proposed authority only")
	ErrNotAuthor            = errors.New("proposal can only be rescinded by its original author")

	// Payment
	ErrConfirmationRequired = errors.New("requires attached payment of exactly 1 unit")
	ErrDepositRequired      = errors.New("deposit required")

	// Lookup
	ErrProposalNotFound = errors.New("proposal does not exist")
	ErrBadgeNotFound    = errors.New("badge does not exist")
	ErrUnknownTag       = errors.New("tag does not exist")

	// State
	ErrAlreadyResolved = errors.New("proposal has already been resolved")
	ErrCannotRescind   = errors.New("proposal can no longer be rescinded")
	ErrExpired         = errors.New("proposal is expired")

	// Domain validation
	ErrDuplicateBadgeID       = errors.New("badge id already exists")
	ErrAlreadyEnded           = errors.New("requested active window has already ended")
	ErrDurationTooLong        = errors.New("exceeded maximum active duration")
	ErrCannotExtendIndefinite = errors.New("cannot extend a badge with no duration")
	ErrTagMismatch            = errors.New("payload does not match proposal tag")
	ErrMissingPayload         = errors.New("payload required for this tag")
	ErrDepositTooLow          = errors.New("deposit too low")

	// Configuration
	ErrNonPositiveValue   = errors.New("value must be greater than zero")
	ErrAlreadyInitialized = errors.New("contract already initialized")
	ErrNotInitialized     = errors.New("contract not initialized")
	ErrAmountOverflow     = errors.New("amount arithmetic overflow")
	ErrInvalidBadgeID     = errors.New("invalid badge id")
	ErrDescriptionTooLong = errors.New("description too long")
)

// InsufficientDepositError reports the storage-fee-inclusive shortfall on
// submission so callers can retry with the exact amount.
type InsufficientDepositError struct {
	Required sdk.Amount
	Received sdk.Amount
}

func (e *InsufficientDepositError) Error() string {
	return fmt.Sprintf("insufficient deposit: required %d, received %d", e.Required, e.Received)
}

// depositTooLow wraps ErrDepositTooLow with the amounts that tripped it.
func depositTooLow(required, offered sdk.Amount) error {
	return fmt.Errorf("%w: requires at least %d, offered %d", ErrDepositTooLow, required, offered)
}
