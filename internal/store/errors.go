package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrConflict            = errors.New("conflict")
	ErrNotFound            = errors.New("not found")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrIdempotencyConflict = errors.New("idempotency key conflict")
)

// ConflictError reports the occupied slot that rejected a write. MeetingID is
// uuid.Nil when the storage layer could not tell which row collided.
type ConflictError struct {
	MeetingID uuid.UUID
}

func (e *ConflictError) Error() string {
	if e.MeetingID == uuid.Nil {
		return ErrConflict.Error()
	}
	return fmt.Sprintf("conflict with meeting %s", e.MeetingID)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}
