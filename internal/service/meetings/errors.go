package meetings

import (
	"fmt"

	"github.com/google/uuid"

	"meetbook/backend/internal/domain"
	"meetbook/backend/internal/store"
)

type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}

// ConflictError reports a taken slot with free alternatives on the same day.
type ConflictError struct {
	MeetingID uuid.UUID
	Suggested []domain.Slot
}

func (e *ConflictError) Error() string {
	if e.MeetingID == uuid.Nil {
		return "slot is already booked"
	}
	return fmt.Sprintf("slot is already booked by meeting %s", e.MeetingID)
}

func (e *ConflictError) Is(target error) bool {
	return target == store.ErrConflict
}

type AlreadyTerminalError struct {
	ID     uuid.UUID
	Status domain.MeetingStatus
}

func (e *AlreadyTerminalError) Error() string {
	return fmt.Sprintf("meeting %s is already %s", e.ID, e.Status)
}
