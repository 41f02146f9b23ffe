package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"meetbook/backend/internal/domain"
	"meetbook/backend/internal/store"
)

type fakeDayTx struct {
	listActiveOnDateFn func(ctx context.Context, date domain.Date) ([]domain.Meeting, error)
}

func (f *fakeDayTx) ListActiveOnDate(ctx context.Context, date domain.Date) ([]domain.Meeting, error) {
	if f.listActiveOnDateFn == nil {
		return nil, nil
	}
	return f.listActiveOnDateFn(ctx, date)
}

func (f *fakeDayTx) InsertMeeting(ctx context.Context, m domain.Meeting) (domain.Meeting, error) {
	panic("not used")
}

func meetingAt(id string, at string, minutes int, status domain.MeetingStatus) domain.Meeting {
	m := domain.Meeting{
		ID:       uuid.MustParse(id),
		Date:     domain.MustParseDate("2024-06-01"),
		Time:     domain.MustParseTimeOfDay(at),
		Duration: minutes,
		Status:   status,
	}
	m.Schedule(time.UTC)
	return m
}

func TestEnsureSlotFree_ReportsCollidingMeeting(t *testing.T) {
	existing := meetingAt("00000000-0000-0000-0000-000000000001", "14:00", 60, domain.MeetingStatusConfirmed)

	tx := &fakeDayTx{
		listActiveOnDateFn: func(ctx context.Context, date domain.Date) ([]domain.Meeting, error) {
			if date != existing.Date {
				t.Fatalf("date = %s, want %s", date, existing.Date)
			}
			return []domain.Meeting{existing}, nil
		},
	}

	err := ensureSlotFree(context.Background(), tx, meetingAt("00000000-0000-0000-0000-000000000002", "14:30", 30, domain.MeetingStatusPending))
	var cErr *store.ConflictError
	if !errors.As(err, &cErr) {
		t.Fatalf("err = %v, want *store.ConflictError", err)
	}
	if cErr.MeetingID != existing.ID {
		t.Fatalf("MeetingID = %s, want %s", cErr.MeetingID, existing.ID)
	}
}

func TestEnsureSlotFree_AllowsAdjacentAndCancelled(t *testing.T) {
	tx := &fakeDayTx{
		listActiveOnDateFn: func(ctx context.Context, date domain.Date) ([]domain.Meeting, error) {
			return []domain.Meeting{
				meetingAt("00000000-0000-0000-0000-000000000001", "13:30", 30, domain.MeetingStatusConfirmed),
				meetingAt("00000000-0000-0000-0000-000000000002", "14:00", 30, domain.MeetingStatusCancelled),
				meetingAt("00000000-0000-0000-0000-000000000003", "14:30", 30, domain.MeetingStatusPending),
			}, nil
		},
	}

	err := ensureSlotFree(context.Background(), tx, meetingAt("00000000-0000-0000-0000-000000000004", "14:00", 30, domain.MeetingStatusPending))
	if err != nil {
		t.Fatalf("ensureSlotFree error: %v", err)
	}
}

func TestEnsureSlotFree_PropagatesListError(t *testing.T) {
	boom := errors.New("boom")
	tx := &fakeDayTx{
		listActiveOnDateFn: func(ctx context.Context, date domain.Date) ([]domain.Meeting, error) {
			return nil, boom
		},
	}

	err := ensureSlotFree(context.Background(), tx, meetingAt("00000000-0000-0000-0000-000000000004", "14:00", 30, domain.MeetingStatusPending))
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}
