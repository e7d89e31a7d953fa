package loan

import "errors"

var (
	ErrNotFound = errors.New("loan not found")
	// ErrInvalidTransition guards the few transitions that do have
	// preconditions (contract signing, delivery receipt upload).
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrGuarantorNotFound = errors.New("guarantor not found")
	ErrStatusNotAllowed  = errors.New("status not in the override set")
)
