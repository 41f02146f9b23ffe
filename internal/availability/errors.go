package availability

import (
	"errors"
	"fmt"

	"meetbook/backend/internal/domain"
)

var (
	ErrOutOfWindow     = errors.New("outside booking window")
	ErrInvalidDuration = errors.New("invalid duration")
)

// OutOfWindowError rejects a slot that the business schedule does not offer.
type OutOfWindowError struct {
	Date   domain.Date
	Slot   domain.Slot
	Reason string
}

func (e *OutOfWindowError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Date, e.Slot, e.Reason)
}

func (e *OutOfWindowError) Is(target error) bool {
	return target == ErrOutOfWindow
}

// OutOfRangeError rejects a date outside the booking horizon.
type OutOfRangeError struct {
	Date   domain.Date
	Reason string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Date, e.Reason)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfWindow
}
