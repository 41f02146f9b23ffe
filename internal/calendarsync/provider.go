package calendarsync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"meetbook/backend/internal/domain"
)

// ErrRejected marks a provider answer that retrying cannot change.
var ErrRejected = errors.New("calendar rejected request")

type Event struct {
	Title         string
	Description   string
	Start         time.Time
	End           time.Time
	TimeZone      string
	AttendeeEmail string
	AttendeeName  string
	// RequestID is stable across retries of the same create so a provider
	// can deduplicate it.
	RequestID string
}

// Provider is a remote calendar. DeleteEvent of an unknown or already
// deleted id returns nil.
type Provider interface {
	CreateEvent(ctx context.Context, ev Event) (string, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

type SyncError struct {
	Op       string
	Attempts int
	Err      error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("calendar %s failed after %d attempt(s): %v", e.Op, e.Attempts, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}

func EventFor(m domain.Meeting, loc *time.Location) Event {
	title := "Consultation with " + m.Name
	if m.Service != "" {
		title = m.Service + " with " + m.Name
	}

	desc := ""
	if m.Company != "" {
		desc += "Company: " + m.Company + "\n"
	}
	if m.Phone != "" {
		desc += "Phone: " + m.Phone + "\n"
	}
	if m.Message != "" {
		desc += "\n" + m.Message
	}

	start := m.Date.At(m.Time, loc)
	return Event{
		Title:         title,
		Description:   desc,
		Start:         start.UTC(),
		End:           start.Add(time.Duration(m.Duration) * time.Minute).UTC(),
		TimeZone:      loc.String(),
		AttendeeEmail: m.Email,
		AttendeeName:  m.Name,
		RequestID:     m.ID.String(),
	}
}
