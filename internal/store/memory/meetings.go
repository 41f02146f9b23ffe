package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"meetbook/backend/internal/domain"
	"meetbook/backend/internal/store"
)

// MeetingStore keeps meetings in process. A single mutex makes the overlap
// check and the insert one step, mirroring the exclusion constraint of the
// postgres store.
type MeetingStore struct {
	mu   sync.Mutex
	rows map[uuid.UUID]domain.Meeting
	now  func() time.Time
}

func NewMeetingStore() *MeetingStore {
	return &MeetingStore{
		rows: make(map[uuid.UUID]domain.Meeting),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

var _ store.MeetingRepository = (*MeetingStore)(nil)

func (s *MeetingStore) InsertIfFree(ctx context.Context, m domain.Meeting) (domain.Meeting, error) {
	if err := ctx.Err(); err != nil {
		return domain.Meeting{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if m.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return domain.Meeting{}, err
		}
		m.ID = id
	}
	if _, ok := s.rows[m.ID]; ok {
		return domain.Meeting{}, &store.ConflictError{MeetingID: m.ID}
	}
	if m.Status == "" {
		m.Status = domain.MeetingStatusPending
	}

	if m.Status.Occupies() {
		if hit, ok := store.FirstOverlap(s.onDate(m.Date), m.Slot(), uuid.Nil); ok {
			return domain.Meeting{}, &store.ConflictError{MeetingID: hit.ID}
		}
	}

	now := s.now()
	m.CreatedAt = now
	m.UpdatedAt = now
	s.rows[m.ID] = m
	return m, nil
}

func (s *MeetingStore) UpdateStatus(ctx context.Context, id uuid.UUID, next domain.MeetingStatus, extra store.StatusUpdate) (domain.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.rows[id]
	if !ok {
		return domain.Meeting{}, store.ErrNotFound
	}
	if !m.Status.CanTransitionTo(next) {
		return domain.Meeting{}, store.ErrInvalidTransition
	}
	m.Status = next
	if extra.GoogleEventID != nil {
		eventID := *extra.GoogleEventID
		m.GoogleEventID = &eventID
	}
	m.UpdatedAt = s.now()
	s.rows[id] = m
	return m, nil
}

// onDate must be called with s.mu held.
func (s *MeetingStore) onDate(date domain.Date) []domain.Meeting {
	var out []domain.Meeting
	for _, m := range s.rows {
		if m.Date == date {
			out = append(out, m)
		}
	}
	return out
}

func (s *MeetingStore) AttachEventID(ctx context.Context, id uuid.UUID, eventID string) (domain.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.rows[id]
	if !ok {
		return domain.Meeting{}, store.ErrNotFound
	}
	if m.GoogleEventID == nil && !m.Status.Terminal() {
		m.GoogleEventID = &eventID
		m.LastSyncError = ""
		m.UpdatedAt = s.now()
		s.rows[id] = m
	}
	return m, nil
}

func (s *MeetingStore) RecordSyncFailure(ctx context.Context, id uuid.UUID, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.rows[id]
	if !ok {
		return store.ErrNotFound
	}
	m.SyncAttempts++
	m.LastSyncError = reason
	m.UpdatedAt = s.now()
	s.rows[id] = m
	return nil
}

func (s *MeetingStore) Get(ctx context.Context, id uuid.UUID) (domain.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.rows[id]
	if !ok {
		return domain.Meeting{}, store.ErrNotFound
	}
	return m, nil
}

func (s *MeetingStore) ListActiveOnDate(ctx context.Context, date domain.Date) ([]domain.Meeting, error) {
	return s.collect(func(m domain.Meeting) bool {
		return m.Date == date && m.Status.Occupies()
	}, sortByStartAsc, 0), nil
}

func (s *MeetingStore) List(ctx context.Context, filter store.MeetingFilter) ([]domain.Meeting, error) {
	return s.collect(func(m domain.Meeting) bool {
		if filter.From != nil && m.Date.Before(*filter.From) {
			return false
		}
		if filter.To != nil && m.Date.After(*filter.To) {
			return false
		}
		if filter.Status != "" && m.Status != filter.Status {
			return false
		}
		if filter.Email != "" && m.Email != filter.Email {
			return false
		}
		return true
	}, sortByStartDesc, filter.Limit), nil
}

func (s *MeetingStore) ListPendingSync(ctx context.Context, createdBefore time.Time, limit int) ([]domain.Meeting, error) {
	return s.collect(func(m domain.Meeting) bool {
		return m.Status == domain.MeetingStatusPending && m.CreatedAt.Before(createdBefore)
	}, sortByStartAsc, limit), nil
}

func (s *MeetingStore) ListElapsed(ctx context.Context, endedBefore time.Time, limit int) ([]domain.Meeting, error) {
	return s.collect(func(m domain.Meeting) bool {
		return m.Status == domain.MeetingStatusConfirmed && !m.EndsAt.After(endedBefore)
	}, sortByStartAsc, limit), nil
}

func (s *MeetingStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

func sortByStartAsc(a, b domain.Meeting) bool  { return a.StartsAt.Before(b.StartsAt) }
func sortByStartDesc(a, b domain.Meeting) bool { return a.StartsAt.After(b.StartsAt) }

func (s *MeetingStore) collect(keep func(domain.Meeting) bool, less func(a, b domain.Meeting) bool, limit int) []domain.Meeting {
	s.mu.Lock()
	out := make([]domain.Meeting, 0, len(s.rows))
	for _, m := range s.rows {
		if keep(m) {
			out = append(out, m)
		}
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
