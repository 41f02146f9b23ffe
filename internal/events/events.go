package events

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"meetbook/backend/internal/domain"
)

type Kind string

const (
	KindBooked    Kind = "booked"
	KindConfirmed Kind = "confirmed"
	KindCancelled Kind = "cancelled"
	KindCompleted Kind = "completed"
	KindDeleted   Kind = "deleted"
)

func (k Kind) RoutingKey() string {
	return "meeting." + string(k)
}

type MeetingEvent struct {
	Kind          Kind                 `json:"kind"`
	MeetingID     uuid.UUID            `json:"meeting_id"`
	Status        domain.MeetingStatus `json:"status"`
	Date          domain.Date          `json:"date"`
	Time          domain.TimeOfDay     `json:"time"`
	Duration      int                  `json:"duration"`
	Email         string               `json:"email"`
	GoogleEventID string               `json:"google_event_id,omitempty"`
	OccurredAt    time.Time            `json:"occurred_at"`
}

func NewMeetingEvent(kind Kind, m domain.Meeting, at time.Time) MeetingEvent {
	return MeetingEvent{
		Kind:          kind,
		MeetingID:     m.ID,
		Status:        m.Status,
		Date:          m.Date,
		Time:          m.Time,
		Duration:      m.Duration,
		Email:         m.Email,
		GoogleEventID: m.EventID(),
		OccurredAt:    at.UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, ev MeetingEvent) error
}

type Nop struct{}

func (Nop) Publish(ctx context.Context, ev MeetingEvent) error { return nil }

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []MeetingEvent
}

func (r *Recorder) Publish(ctx context.Context, ev MeetingEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func (r *Recorder) Events() []MeetingEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]MeetingEvent, len(r.events))
	copy(out, r.events)
	return out
}

func (r *Recorder) Kinds() []Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Kind, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Kind)
	}
	return out
}
