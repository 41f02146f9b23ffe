package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"meetbook/backend/internal/domain"
)

type StatusUpdate struct {
	GoogleEventID *string
}

type MeetingFilter struct {
	From   *domain.Date
	To     *domain.Date
	Status domain.MeetingStatus
	Email  string
	Limit  int
}

// MeetingRepository is the booking store. InsertIfFree and UpdateStatus are
// atomic against concurrent writers; callers never check-then-write.
type MeetingRepository interface {
	InsertIfFree(ctx context.Context, m domain.Meeting) (domain.Meeting, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, next domain.MeetingStatus, extra StatusUpdate) (domain.Meeting, error)
	AttachEventID(ctx context.Context, id uuid.UUID, eventID string) (domain.Meeting, error)
	RecordSyncFailure(ctx context.Context, id uuid.UUID, reason string) error

	Get(ctx context.Context, id uuid.UUID) (domain.Meeting, error)
	ListActiveOnDate(ctx context.Context, date domain.Date) ([]domain.Meeting, error)
	List(ctx context.Context, filter MeetingFilter) ([]domain.Meeting, error)
	ListPendingSync(ctx context.Context, createdBefore time.Time, limit int) ([]domain.Meeting, error)
	ListElapsed(ctx context.Context, endedBefore time.Time, limit int) ([]domain.Meeting, error)

	Delete(ctx context.Context, id uuid.UUID) error
}

// DayTx is the view of a single day's bookings inside a write transaction.
type DayTx interface {
	ListActiveOnDate(ctx context.Context, date domain.Date) ([]domain.Meeting, error)
	InsertMeeting(ctx context.Context, m domain.Meeting) (domain.Meeting, error)
}

type LeadRepository interface {
	CreateLead(ctx context.Context, l domain.Lead) (domain.Lead, error)
	GetLead(ctx context.Context, id uuid.UUID) (domain.Lead, error)
	UpdateLeadStatus(ctx context.Context, id uuid.UUID, from, to domain.LeadStatus) (domain.Lead, error)
	ListLeads(ctx context.Context, limit int) ([]domain.Lead, error)

	CreateContact(ctx context.Context, c domain.Contact) (domain.Contact, error)
	GetContact(ctx context.Context, id uuid.UUID) (domain.Contact, error)
	UpdateContactStatus(ctx context.Context, id uuid.UUID, from, to domain.ContactStatus) (domain.Contact, error)
	ListContacts(ctx context.Context, limit int) ([]domain.Contact, error)
}

// FirstOverlap returns the first occupying meeting whose interval intersects
// slot, skipping the meeting with id skip.
func FirstOverlap(existing []domain.Meeting, slot domain.Slot, skip uuid.UUID) (domain.Meeting, bool) {
	for _, m := range existing {
		if m.ID == skip || !m.Status.Occupies() {
			continue
		}
		if m.Slot().Overlaps(slot) {
			return m, true
		}
	}
	return domain.Meeting{}, false
}
