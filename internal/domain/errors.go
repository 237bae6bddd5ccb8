package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrPrecondition = errors.New("precondition failed")
	ErrConflict     = errors.New("conflict")
	ErrGateway      = errors.New("payment gateway error")
	ErrValidation   = errors.New("validation failed")

	// ErrForbidden is a precondition failure caused by the caller's role.
	ErrForbidden = fmt.Errorf("%w: caller is not permitted", ErrPrecondition)

	// ErrVersionConflict is returned by the record store when the stored version moved on.
	ErrVersionConflict = errors.New("version conflict")

	// ErrPartial marks outcomes where money moved but the bookkeeping did not complete.
	ErrPartial = errors.New("partially applied")

	// ErrPaymentPending marks an instant payout that was authorized but whose transfer did not complete.
	ErrPaymentPending = errors.New("payment authorized, transfer not completed")
)

func NotFound(entity, id string) error {
	return fmt.Errorf("%w: %s %s", ErrNotFound, entity, id)
}

func Precondition(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrPrecondition, fmt.Sprintf(format, args...))
}

func Conflict(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
