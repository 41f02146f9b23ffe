package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"meetbook/backend/internal/domain"
	"meetbook/backend/internal/store"
)

func meetingAt(date, at string, minutes int) domain.Meeting {
	m := domain.Meeting{
		Name:     "Ada",
		Email:    "ada@example.com",
		Date:     domain.MustParseDate(date),
		Time:     domain.MustParseTimeOfDay(at),
		Duration: minutes,
		Status:   domain.MeetingStatusPending,
	}
	m.Schedule(time.UTC)
	return m
}

func TestMeetingStore_InsertIfFreeRejectsOverlap(t *testing.T) {
	s := NewMeetingStore()
	ctx := context.Background()

	first, err := s.InsertIfFree(ctx, meetingAt("2024-06-01", "14:00", 30))
	if err != nil {
		t.Fatalf("InsertIfFree error: %v", err)
	}
	if first.ID == uuid.Nil {
		t.Fatalf("expected generated id")
	}

	_, err = s.InsertIfFree(ctx, meetingAt("2024-06-01", "14:15", 30))
	var cErr *store.ConflictError
	if !errors.As(err, &cErr) {
		t.Fatalf("err = %v, want *store.ConflictError", err)
	}
	if cErr.MeetingID != first.ID {
		t.Fatalf("conflicting id = %s, want %s", cErr.MeetingID, first.ID)
	}
	if !errors.Is(err, store.ErrConflict) {
		t.Fatalf("errors.Is(err, ErrConflict) = false")
	}

	if _, err := s.InsertIfFree(ctx, meetingAt("2024-06-01", "14:30", 30)); err != nil {
		t.Fatalf("adjacent slot rejected: %v", err)
	}
	if _, err := s.InsertIfFree(ctx, meetingAt("2024-06-02", "14:00", 30)); err != nil {
		t.Fatalf("other day rejected: %v", err)
	}
}

func TestMeetingStore_CancelledRowsReleaseTheSlot(t *testing.T) {
	s := NewMeetingStore()
	ctx := context.Background()

	m, err := s.InsertIfFree(ctx, meetingAt("2024-06-01", "14:00", 30))
	if err != nil {
		t.Fatalf("InsertIfFree error: %v", err)
	}
	if _, err := s.UpdateStatus(ctx, m.ID, domain.MeetingStatusCancelled, store.StatusUpdate{}); err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	if _, err := s.InsertIfFree(ctx, meetingAt("2024-06-01", "14:00", 30)); err != nil {
		t.Fatalf("slot not released after cancel: %v", err)
	}
}

func TestMeetingStore_UpdateStatusEnforcesTransitions(t *testing.T) {
	s := NewMeetingStore()
	ctx := context.Background()

	m, err := s.InsertIfFree(ctx, meetingAt("2024-06-01", "10:00", 30))
	if err != nil {
		t.Fatalf("InsertIfFree error: %v", err)
	}

	if _, err := s.UpdateStatus(ctx, m.ID, domain.MeetingStatusCompleted, store.StatusUpdate{}); !errors.Is(err, store.ErrInvalidTransition) {
		t.Fatalf("PENDING->COMPLETED err = %v, want %v", err, store.ErrInvalidTransition)
	}

	eventID := "evt-1"
	got, err := s.UpdateStatus(ctx, m.ID, domain.MeetingStatusConfirmed, store.StatusUpdate{GoogleEventID: &eventID})
	if err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	if got.Status != domain.MeetingStatusConfirmed || got.EventID() != "evt-1" {
		t.Fatalf("got status=%s event=%q", got.Status, got.EventID())
	}

	if _, err := s.UpdateStatus(ctx, uuid.New(), domain.MeetingStatusCancelled, store.StatusUpdate{}); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("unknown id err = %v, want %v", err, store.ErrNotFound)
	}
}

func TestMeetingStore_AttachEventIDKeepsFirstValue(t *testing.T) {
	s := NewMeetingStore()
	ctx := context.Background()

	m, err := s.InsertIfFree(ctx, meetingAt("2024-06-01", "10:00", 30))
	if err != nil {
		t.Fatalf("InsertIfFree error: %v", err)
	}
	if err := s.RecordSyncFailure(ctx, m.ID, "timeout"); err != nil {
		t.Fatalf("RecordSyncFailure error: %v", err)
	}
	if _, err := s.AttachEventID(ctx, m.ID, "first"); err != nil {
		t.Fatalf("AttachEventID error: %v", err)
	}
	got, err := s.AttachEventID(ctx, m.ID, "second")
	if err != nil {
		t.Fatalf("AttachEventID error: %v", err)
	}
	if got.EventID() != "first" {
		t.Fatalf("event id = %q, want %q", got.EventID(), "first")
	}
	if got.SyncAttempts != 1 || got.LastSyncError != "" {
		t.Fatalf("sync bookkeeping = %d/%q", got.SyncAttempts, got.LastSyncError)
	}
}

func TestMeetingStore_OverlapUsesWallClockSlots(t *testing.T) {
	s := NewMeetingStore()
	ctx := context.Background()

	first, err := s.InsertIfFree(ctx, meetingAt("2024-06-01", "14:00", 30))
	if err != nil {
		t.Fatalf("InsertIfFree error: %v", err)
	}

	// Same wall-clock slot with instants placed in another zone still collides.
	shifted := meetingAt("2024-06-01", "14:15", 30)
	shifted.Schedule(time.FixedZone("UTC+4", 4*60*60))
	_, err = s.InsertIfFree(ctx, shifted)
	var cErr *store.ConflictError
	if !errors.As(err, &cErr) || cErr.MeetingID != first.ID {
		t.Fatalf("err = %v, want conflict with %s", err, first.ID)
	}

	if _, err := s.InsertIfFree(ctx, meetingAt("2024-06-02", "14:00", 30)); err != nil {
		t.Fatalf("next day InsertIfFree error: %v", err)
	}
}

func TestMeetingStore_AttachEventIDSkipsCancelled(t *testing.T) {
	s := NewMeetingStore()
	ctx := context.Background()

	m, err := s.InsertIfFree(ctx, meetingAt("2024-06-01", "10:00", 30))
	if err != nil {
		t.Fatalf("InsertIfFree error: %v", err)
	}
	if _, err := s.UpdateStatus(ctx, m.ID, domain.MeetingStatusCancelled, store.StatusUpdate{}); err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	got, err := s.AttachEventID(ctx, m.ID, "late")
	if err != nil {
		t.Fatalf("AttachEventID error: %v", err)
	}
	if got.EventID() != "" || got.Status != domain.MeetingStatusCancelled {
		t.Fatalf("meeting = %q/%s, want no event id and CANCELLED", got.EventID(), got.Status)
	}
}

func TestMeetingStore_ConcurrentInsertSameSlotExactlyOneWins(t *testing.T) {
	s := NewMeetingStore()
	ctx := context.Background()

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.InsertIfFree(ctx, meetingAt("2024-06-01", "14:00", 30))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, conflicts int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, store.ErrConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 || conflicts != workers-1 {
		t.Fatalf("ok=%d conflicts=%d, want 1/%d", ok, conflicts, workers-1)
	}
}

func TestMeetingStore_ListQueries(t *testing.T) {
	s := NewMeetingStore()
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	a, _ := s.InsertIfFree(ctx, meetingAt("2024-06-01", "09:00", 30))
	b, _ := s.InsertIfFree(ctx, meetingAt("2024-06-01", "11:00", 30))
	c, _ := s.InsertIfFree(ctx, meetingAt("2024-06-03", "09:00", 30))
	if _, err := s.UpdateStatus(ctx, b.ID, domain.MeetingStatusConfirmed, store.StatusUpdate{}); err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	if _, err := s.UpdateStatus(ctx, c.ID, domain.MeetingStatusCancelled, store.StatusUpdate{}); err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}

	active, _ := s.ListActiveOnDate(ctx, domain.MustParseDate("2024-06-01"))
	if len(active) != 2 || active[0].ID != a.ID || active[1].ID != b.ID {
		t.Fatalf("active = %v, want [a b]", active)
	}

	pending, _ := s.ListPendingSync(ctx, base.Add(time.Minute), 10)
	if len(pending) != 1 || pending[0].ID != a.ID {
		t.Fatalf("pending = %v, want [a]", pending)
	}

	elapsed, _ := s.ListElapsed(ctx, time.Date(2024, 6, 1, 11, 30, 0, 0, time.UTC), 10)
	if len(elapsed) != 1 || elapsed[0].ID != b.ID {
		t.Fatalf("elapsed = %v, want [b]", elapsed)
	}

	all, _ := s.List(ctx, store.MeetingFilter{})
	if len(all) != 3 || all[0].ID != c.ID {
		t.Fatalf("list order = %v, want newest first", all)
	}
	from := domain.MustParseDate("2024-06-02")
	later, _ := s.List(ctx, store.MeetingFilter{From: &from})
	if len(later) != 1 || later[0].ID != c.ID {
		t.Fatalf("filtered list = %v, want [c]", later)
	}
}
