package availability

import (
	"context"
	"errors"
	"math"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"

	"meetbook/backend/internal/domain"
	"meetbook/backend/internal/store"
)

type fakeReader struct {
	listActiveOnDateFn func(ctx context.Context, date domain.Date) ([]domain.Meeting, error)
}

func (f *fakeReader) ListActiveOnDate(ctx context.Context, date domain.Date) ([]domain.Meeting, error) {
	if f.listActiveOnDateFn == nil {
		panic("ListActiveOnDate not configured")
	}
	return f.listActiveOnDateFn(ctx, date)
}

func dubai(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Dubai")
	if err != nil {
		t.Fatalf("LoadLocation error: %v", err)
	}
	return loc
}

// testHours opens Monday to Saturday 09:00-17:00 on a 30 minute grid.
func testHours(t *testing.T) domain.BusinessHours {
	t.Helper()
	hours, err := domain.NewBusinessHours(dubai(t), 30)
	if err != nil {
		t.Fatalf("NewBusinessHours error: %v", err)
	}
	err = hours.Open(domain.MustParseTimeOfDay("09:00"), domain.MustParseTimeOfDay("17:00"),
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	return hours
}

func booked(at string, minutes int, status domain.MeetingStatus) domain.Meeting {
	return domain.Meeting{
		ID:       uuid.New(),
		Date:     domain.MustParseDate("2024-06-01"),
		Time:     domain.MustParseTimeOfDay(at),
		Duration: minutes,
		Status:   status,
	}
}

func newTestCalendar(t *testing.T, meetings []domain.Meeting, opts ...Option) *Calendar {
	t.Helper()
	loc := dubai(t)
	reader := &fakeReader{
		listActiveOnDateFn: func(ctx context.Context, date domain.Date) ([]domain.Meeting, error) {
			var out []domain.Meeting
			for _, m := range meetings {
				if m.Date == date {
					out = append(out, m)
				}
			}
			return out, nil
		},
	}
	clock := WithClock(func() time.Time { return time.Date(2024, 5, 30, 8, 0, 0, 0, loc) })
	return NewCalendar(testHours(t), 60, reader, append([]Option{clock}, opts...)...)
}

func starts(seq func(func(domain.Slot) bool)) []string {
	var out []string
	for s := range seq {
		out = append(out, s.Start.String())
	}
	return out
}

func TestAvailableSlots_ExcludesOverlappingBookings(t *testing.T) {
	cal := newTestCalendar(t, []domain.Meeting{
		booked("14:00", 30, domain.MeetingStatusConfirmed),
		booked("10:00", 60, domain.MeetingStatusPending),
		booked("11:00", 30, domain.MeetingStatusCancelled),
	})

	seq, err := cal.AvailableSlots(context.Background(), domain.MustParseDate("2024-06-01"), 60)
	if err != nil {
		t.Fatalf("AvailableSlots error: %v", err)
	}

	got := starts(seq)
	want := []string{"09:00", "11:00", "11:30", "12:00", "12:30", "13:00", "14:30", "15:00", "15:30", "16:00"}
	if !slices.Equal(got, want) {
		t.Fatalf("slots = %v, want %v", got, want)
	}

	if again := starts(seq); !slices.Equal(again, want) {
		t.Fatalf("second pass = %v, want %v", again, want)
	}
}

func TestAvailableSlots_NeverOverlapsOccupiedIntervals(t *testing.T) {
	meetings := []domain.Meeting{
		booked("09:30", 90, domain.MeetingStatusConfirmed),
		booked("13:00", 30, domain.MeetingStatusPending),
		booked("16:30", 30, domain.MeetingStatusCompleted),
	}
	cal := newTestCalendar(t, meetings)

	for _, minutes := range []int{30, 60, 90, 120} {
		seq, err := cal.AvailableSlots(context.Background(), domain.MustParseDate("2024-06-01"), minutes)
		if err != nil {
			t.Fatalf("AvailableSlots(%d) error: %v", minutes, err)
		}
		for s := range seq {
			for _, m := range meetings {
				if s.Overlaps(m.Slot()) {
					t.Fatalf("duration %d: slot %s overlaps booking %s", minutes, s, m.Slot())
				}
			}
			if s.End > domain.MustParseTimeOfDay("17:00") {
				t.Fatalf("duration %d: slot %s ends after close", minutes, s)
			}
		}
	}
}

func TestAvailableSlots_StopsEarly(t *testing.T) {
	cal := newTestCalendar(t, nil)
	seq, err := cal.AvailableSlots(context.Background(), domain.MustParseDate("2024-06-01"), 30)
	if err != nil {
		t.Fatalf("AvailableSlots error: %v", err)
	}
	n := 0
	for range seq {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Fatalf("n = %d, want 3", n)
	}
}

func TestAvailableSlots_InputErrors(t *testing.T) {
	cal := newTestCalendar(t, nil)
	ctx := context.Background()

	tests := []struct {
		name    string
		date    string
		minutes int
		want    error
	}{
		{name: "past", date: "2024-05-29", minutes: 30, want: ErrOutOfWindow},
		{name: "beyond horizon", date: "2024-07-30", minutes: 30, want: ErrOutOfWindow},
		{name: "zero duration", date: "2024-06-01", minutes: 0, want: ErrInvalidDuration},
		{name: "off grid", date: "2024-06-01", minutes: 45, want: ErrInvalidDuration},
		{name: "longer than a day", date: "2024-06-01", minutes: 24*60 + 30, want: ErrInvalidDuration},
		{name: "huge", date: "2024-06-01", minutes: (math.MaxInt / 30) * 30, want: ErrInvalidDuration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cal.AvailableSlots(ctx, domain.MustParseDate(tt.date), tt.minutes)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}

	_, err := cal.AvailableSlots(ctx, domain.MustParseDate("2024-05-29"), 30)
	var rErr *OutOfRangeError
	if !errors.As(err, &rErr) {
		t.Fatalf("err type = %T, want *OutOfRangeError", err)
	}
}

func TestAvailableSlots_SkipsElapsedStartsToday(t *testing.T) {
	loc := dubai(t)
	reader := &fakeReader{
		listActiveOnDateFn: func(ctx context.Context, date domain.Date) ([]domain.Meeting, error) {
			return nil, nil
		},
	}
	cal := NewCalendar(testHours(t), 60, reader, WithClock(func() time.Time {
		return time.Date(2024, 6, 1, 15, 45, 0, 0, loc)
	}))

	seq, err := cal.AvailableSlots(context.Background(), domain.MustParseDate("2024-06-01"), 30)
	if err != nil {
		t.Fatalf("AvailableSlots error: %v", err)
	}
	got := starts(seq)
	want := []string{"16:00", "16:30"}
	if !slices.Equal(got, want) {
		t.Fatalf("slots = %v, want %v", got, want)
	}
}

func TestAvailableSlots_HonoursBlackouts(t *testing.T) {
	date := domain.MustParseDate("2024-06-01")
	cal := newTestCalendar(t, nil, WithBlackouts(StaticBlackouts{
		{Date: date, Slot: domain.Slot{Start: domain.MustParseTimeOfDay("12:00"), End: domain.MustParseTimeOfDay("16:00")}, Summary: "offsite"},
	}))

	seq, err := cal.AvailableSlots(context.Background(), date, 60)
	if err != nil {
		t.Fatalf("AvailableSlots error: %v", err)
	}
	got := starts(seq)
	want := []string{"09:00", "09:30", "10:00", "10:30", "11:00", "16:00"}
	if !slices.Equal(got, want) {
		t.Fatalf("slots = %v, want %v", got, want)
	}
}

func TestValidate(t *testing.T) {
	existing := booked("14:00", 30, domain.MeetingStatusConfirmed)
	cal := newTestCalendar(t, []domain.Meeting{existing})
	ctx := context.Background()
	date := domain.MustParseDate("2024-06-01")

	if err := cal.Validate(ctx, date, domain.MustParseTimeOfDay("14:30"), 30); err != nil {
		t.Fatalf("adjacent slot: %v", err)
	}

	err := cal.Validate(ctx, date, domain.MustParseTimeOfDay("14:15"), 30)
	var cErr *store.ConflictError
	if !errors.As(err, &cErr) {
		t.Fatalf("err = %v, want *store.ConflictError", err)
	}
	if cErr.MeetingID != existing.ID {
		t.Fatalf("MeetingID = %s, want %s", cErr.MeetingID, existing.ID)
	}

	err = cal.Validate(ctx, date, domain.MustParseTimeOfDay("16:45"), 30)
	var wErr *OutOfWindowError
	if !errors.As(err, &wErr) {
		t.Fatalf("err = %v, want *OutOfWindowError", err)
	}
	if wErr.Reason != "outside business hours" {
		t.Fatalf("reason = %q", wErr.Reason)
	}

	err = cal.Validate(ctx, domain.MustParseDate("2024-06-02"), domain.MustParseTimeOfDay("10:00"), 30)
	if !errors.As(err, &wErr) {
		t.Fatalf("sunday err = %v, want *OutOfWindowError", err)
	}
}

func TestValidate_HoursCheckedBeforeConflict(t *testing.T) {
	cal := newTestCalendar(t, []domain.Meeting{booked("16:30", 30, domain.MeetingStatusConfirmed)})

	err := cal.Validate(context.Background(), domain.MustParseDate("2024-06-01"), domain.MustParseTimeOfDay("16:30"), 60)
	if !errors.Is(err, ErrOutOfWindow) {
		t.Fatalf("err = %v, want ErrOutOfWindow", err)
	}
}

func TestValidate_RejectsDurationPastMidnight(t *testing.T) {
	cal := newTestCalendar(t, nil)
	ctx := context.Background()
	date := domain.MustParseDate("2024-06-01")

	for _, minutes := range []int{math.MaxInt - 500, 24*60 - 570, 24 * 60} {
		err := cal.Validate(ctx, date, domain.MustParseTimeOfDay("10:00"), minutes)
		if !errors.Is(err, ErrOutOfWindow) {
			t.Fatalf("minutes=%d: err = %v, want ErrOutOfWindow", minutes, err)
		}
	}
}

func TestDaySchedule_RejectsHugeDuration(t *testing.T) {
	cal := newTestCalendar(t, nil)

	_, err := cal.DaySchedule(context.Background(), domain.MustParseDate("2024-06-01"), (math.MaxInt/30)*30)
	if !errors.Is(err, ErrInvalidDuration) {
		t.Fatalf("err = %v, want ErrInvalidDuration", err)
	}
}

func TestSuggest(t *testing.T) {
	cal := newTestCalendar(t, []domain.Meeting{
		booked("14:00", 30, domain.MeetingStatusConfirmed),
		booked("15:00", 30, domain.MeetingStatusConfirmed),
		booked("16:00", 60, domain.MeetingStatusConfirmed),
	})

	got, err := cal.Suggest(context.Background(), domain.MustParseDate("2024-06-01"), domain.MustParseTimeOfDay("14:00"), 30, 3)
	if err != nil {
		t.Fatalf("Suggest error: %v", err)
	}
	var names []string
	for _, s := range got {
		names = append(names, s.Start.String())
	}
	want := []string{"14:30", "15:30", "13:30"}
	if !slices.Equal(names, want) {
		t.Fatalf("suggested = %v, want %v", names, want)
	}
}

func TestDaySchedule(t *testing.T) {
	cal := newTestCalendar(t, []domain.Meeting{booked("09:30", 30, domain.MeetingStatusPending)})
	ctx := context.Background()

	day, err := cal.DaySchedule(ctx, domain.MustParseDate("2024-06-01"), 30)
	if err != nil {
		t.Fatalf("DaySchedule error: %v", err)
	}
	if !day.Open {
		t.Fatalf("expected open day")
	}
	if len(day.Slots) != 16 {
		t.Fatalf("len(slots) = %d, want 16", len(day.Slots))
	}
	if day.Slots[0].Available != true || day.Slots[1].Available != false {
		t.Fatalf("slots[0:2] = %+v", day.Slots[:2])
	}

	closed, err := cal.DaySchedule(ctx, domain.MustParseDate("2024-06-02"), 30)
	if err != nil {
		t.Fatalf("DaySchedule sunday error: %v", err)
	}
	if closed.Open || len(closed.Slots) != 0 || closed.Message == "" {
		t.Fatalf("sunday = %+v, want closed with message", closed)
	}
}
