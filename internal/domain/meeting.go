package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type MeetingStatus string

const (
	MeetingStatusPending   MeetingStatus = "PENDING"
	MeetingStatusConfirmed MeetingStatus = "CONFIRMED"
	MeetingStatusCompleted MeetingStatus = "COMPLETED"
	MeetingStatusCancelled MeetingStatus = "CANCELLED"
)

const DefaultMeetingDuration = 30

// meetingTransitions lists, for every status, the statuses it may move to.
var meetingTransitions = map[MeetingStatus][]MeetingStatus{
	MeetingStatusPending:   {MeetingStatusConfirmed, MeetingStatusCancelled},
	MeetingStatusConfirmed: {MeetingStatusCompleted, MeetingStatusCancelled},
	MeetingStatusCompleted: nil,
	MeetingStatusCancelled: nil,
}

func ParseMeetingStatus(s string) (MeetingStatus, error) {
	st := MeetingStatus(s)
	if _, ok := meetingTransitions[st]; !ok {
		return "", fmt.Errorf("invalid meeting status %q", s)
	}
	return st, nil
}

func (s MeetingStatus) Terminal() bool {
	return s == MeetingStatusCompleted || s == MeetingStatusCancelled
}

// Occupies reports whether a meeting in this status still holds its slot.
func (s MeetingStatus) Occupies() bool {
	return s != MeetingStatusCancelled
}

func (s MeetingStatus) CanTransitionTo(next MeetingStatus) bool {
	for _, allowed := range meetingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// MeetingPredecessors returns the statuses from which next is reachable.
func MeetingPredecessors(next MeetingStatus) []MeetingStatus {
	var out []MeetingStatus
	for _, from := range []MeetingStatus{MeetingStatusPending, MeetingStatusConfirmed, MeetingStatusCompleted, MeetingStatusCancelled} {
		if from.CanTransitionTo(next) {
			out = append(out, from)
		}
	}
	return out
}

type Meeting struct {
	bun.BaseModel `bun:"table:meetings"`

	ID            uuid.UUID     `bun:"id,pk,type:uuid"`
	Name          string        `bun:"name,notnull"`
	Email         string        `bun:"email,notnull"`
	Company       string        `bun:"company,notnull"`
	Phone         string        `bun:"phone,notnull"`
	Message       string        `bun:"message,notnull"`
	Service       string        `bun:"service,notnull"`
	Date          Date          `bun:"date,type:date,notnull"`
	Time          TimeOfDay     `bun:"time,type:text,notnull"`
	Duration      int           `bun:"duration,notnull"`
	Status        MeetingStatus `bun:"status,notnull"`
	GoogleEventID *string       `bun:"google_event_id"`
	StartsAt      time.Time     `bun:"starts_at,notnull"`
	EndsAt        time.Time     `bun:"ends_at,notnull"`
	SyncAttempts  int           `bun:"sync_attempts,notnull"`
	LastSyncError string        `bun:"last_sync_error,notnull"`
	CreatedAt     time.Time     `bun:"created_at,notnull"`
	UpdatedAt     time.Time     `bun:"updated_at,notnull"`
}

func (m *Meeting) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	now := time.Now().UTC()
	switch query.(type) {
	case *bun.InsertQuery:
		if m.ID == uuid.Nil {
			id, err := uuid.NewV7()
			if err != nil {
				return err
			}
			m.ID = id
		}
		if m.Status == "" {
			m.Status = MeetingStatusPending
		}
		if m.CreatedAt.IsZero() {
			m.CreatedAt = now
		}
		if m.UpdatedAt.IsZero() {
			m.UpdatedAt = now
		}
	case *bun.UpdateQuery:
		m.UpdatedAt = now
	}
	return nil
}

func (m Meeting) Slot() Slot {
	return NewSlot(m.Time, m.Duration)
}

// Schedule fills the derived UTC instants of the meeting from its date and
// time tokens interpreted in loc.
func (m *Meeting) Schedule(loc *time.Location) {
	m.StartsAt = m.Date.At(m.Time, loc).UTC()
	m.EndsAt = m.StartsAt.Add(time.Duration(m.Duration) * time.Minute)
}

func (m Meeting) EventID() string {
	if m.GoogleEventID == nil {
		return ""
	}
	return *m.GoogleEventID
}
