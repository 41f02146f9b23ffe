package meetings

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"meetbook/backend/internal/availability"
	"meetbook/backend/internal/calendarsync"
	"meetbook/backend/internal/domain"
	"meetbook/backend/internal/events"
	"meetbook/backend/internal/store"
	"meetbook/backend/internal/store/memory"
)

type harness struct {
	svc      *Service
	repo     *memory.MeetingStore
	provider *calendarsync.FakeProvider
	events   *events.Recorder
}

func newHarness(t *testing.T, opts ...Option) harness {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Dubai")
	if err != nil {
		t.Fatalf("LoadLocation error: %v", err)
	}
	hours, err := domain.NewBusinessHours(loc, 30)
	if err != nil {
		t.Fatalf("NewBusinessHours error: %v", err)
	}
	// 2024-06-01 is a Saturday.
	err = hours.Open(domain.MustParseTimeOfDay("09:00"), domain.MustParseTimeOfDay("17:00"),
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}

	repo := memory.NewMeetingStore()
	cal := availability.NewCalendar(hours, 60, repo, availability.WithClock(func() time.Time {
		return time.Date(2024, 5, 30, 8, 0, 0, 0, loc)
	}))
	provider := calendarsync.NewFakeProvider()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	syncer := calendarsync.NewSyncer(provider, calendarsync.RetryPolicy{
		Attempts:       3,
		AttemptTimeout: time.Second,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     2 * time.Millisecond,
	}, logger)
	rec := &events.Recorder{}

	base := []Option{WithSyncer(syncer), WithPublisher(rec), WithLogger(logger)}
	svc := NewService(repo, cal, append(base, opts...)...)
	return harness{svc: svc, repo: repo, provider: provider, events: rec}
}

func request(at string, minutes int) BookInput {
	return BookInput{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Company:  "Analytical Engines",
		Date:     "2024-06-01",
		Time:     at,
		Duration: minutes,
	}
}

func freeStarts(t *testing.T, svc *Service, minutes int) []string {
	t.Helper()
	seq, err := svc.AvailableSlots(context.Background(), domain.MustParseDate("2024-06-01"), minutes)
	if err != nil {
		t.Fatalf("AvailableSlots error: %v", err)
	}
	var out []string
	for s := range seq {
		out = append(out, s.Start.String())
	}
	return out
}

func TestBook_Scenarios(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	// A: a free slot is stored and confirmed with a remote event.
	a, err := h.svc.Book(ctx, request("14:00", 30))
	if err != nil {
		t.Fatalf("A: Book error: %v", err)
	}
	if a.Outcome != OutcomeConfirmed || a.Meeting.Status != domain.MeetingStatusConfirmed {
		t.Fatalf("A: result = %+v", a)
	}
	if a.Meeting.EventID() == "" {
		t.Fatalf("A: google event id not set")
	}
	if _, ok := h.provider.Event(a.Meeting.EventID()); !ok {
		t.Fatalf("A: remote event missing")
	}

	// B: the same slot by someone else.
	b := request("14:00", 30)
	b.Email = "grace@example.com"
	_, err = h.svc.Book(ctx, b)
	var cErr *ConflictError
	if !errors.As(err, &cErr) {
		t.Fatalf("B: err = %v, want *ConflictError", err)
	}
	if cErr.MeetingID != a.Meeting.ID {
		t.Fatalf("B: conflicting id = %s, want %s", cErr.MeetingID, a.Meeting.ID)
	}
	if len(cErr.Suggested) == 0 || cErr.Suggested[0].Start.String() != "14:30" {
		t.Fatalf("B: suggested = %v", cErr.Suggested)
	}
	if !errors.Is(err, store.ErrConflict) {
		t.Fatalf("B: errors.Is(err, ErrConflict) = false")
	}

	// C: an overlapping slot.
	c := request("14:15", 30)
	c.Email = "grace@example.com"
	if _, err := h.svc.Book(ctx, c); !errors.As(err, &cErr) {
		t.Fatalf("C: err = %v, want *ConflictError", err)
	}

	// D: the adjacent slot.
	d := request("14:30", 30)
	d.Email = "grace@example.com"
	res, err := h.svc.Book(ctx, d)
	if err != nil {
		t.Fatalf("D: Book error: %v", err)
	}
	if res.Outcome != OutcomeConfirmed {
		t.Fatalf("D: outcome = %q", res.Outcome)
	}

	if h.provider.Len() != 2 {
		t.Fatalf("remote events = %d, want 2", h.provider.Len())
	}
}

func TestBook_SyncFailureLeavesPendingAndOwnerRetryResumes(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.provider.FailNextCreates(3)
	first, err := h.svc.Book(ctx, request("10:00", 30))
	if err != nil {
		t.Fatalf("Book error: %v", err)
	}
	if first.Outcome != OutcomePending || first.Warning == "" {
		t.Fatalf("result = %+v, want pending with warning", first)
	}
	stored, err := h.repo.Get(ctx, first.Meeting.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if stored.Status != domain.MeetingStatusPending || stored.EventID() != "" {
		t.Fatalf("stored = %+v, want PENDING without event id", stored)
	}
	if stored.SyncAttempts != 1 {
		t.Fatalf("sync attempts = %d, want 1", stored.SyncAttempts)
	}
	if h.provider.CreateCalls() != 3 {
		t.Fatalf("create calls = %d, want 3", h.provider.CreateCalls())
	}

	again, err := h.svc.Book(ctx, request("10:00", 30))
	if err != nil {
		t.Fatalf("retry Book error: %v", err)
	}
	if !again.Resumed || again.Meeting.ID != first.Meeting.ID {
		t.Fatalf("retry = %+v, want resumed %s", again, first.Meeting.ID)
	}
	if again.Outcome != OutcomeConfirmed || again.Meeting.EventID() == "" {
		t.Fatalf("retry = %+v, want confirmed with event id", again)
	}
	if h.provider.Len() != 1 {
		t.Fatalf("remote events = %d, want 1", h.provider.Len())
	}

	other := request("10:00", 30)
	other.Email = "grace@example.com"
	if _, err := h.svc.Book(ctx, other); !errors.Is(err, store.ErrConflict) {
		t.Fatalf("other owner err = %v, want conflict", err)
	}
}

func TestBook_IdempotencyKey(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	in := request("11:00", 60)
	in.IdempotencyKey = "form-42"

	first, err := h.svc.Book(ctx, in)
	if err != nil {
		t.Fatalf("Book error: %v", err)
	}
	second, err := h.svc.Book(ctx, in)
	if err != nil {
		t.Fatalf("second Book error: %v", err)
	}
	if first.Meeting.ID != second.Meeting.ID || !second.Resumed {
		t.Fatalf("ids = %s, %s resumed=%v", first.Meeting.ID, second.Meeting.ID, second.Resumed)
	}
	if h.provider.CreateCalls() != 1 {
		t.Fatalf("create calls = %d, want 1", h.provider.CreateCalls())
	}

	in.Time = "15:00"
	if _, err := h.svc.Book(ctx, in); !errors.Is(err, store.ErrIdempotencyConflict) {
		t.Fatalf("reused key err = %v, want ErrIdempotencyConflict", err)
	}
}

func TestBook_ValidationErrors(t *testing.T) {
	h := newHarness(t)

	tests := []struct {
		name string
		in   BookInput
		want string
	}{
		{name: "missing name", in: BookInput{Email: "a@b.co", Date: "2024-06-01", Time: "10:00"}, want: "name is required"},
		{name: "missing email", in: BookInput{Name: "A", Date: "2024-06-01", Time: "10:00"}, want: "email is required"},
		{name: "bad email", in: BookInput{Name: "A", Email: "not-an-email", Date: "2024-06-01", Time: "10:00"}, want: "email is invalid"},
		{name: "missing date", in: BookInput{Name: "A", Email: "a@b.co", Time: "10:00"}, want: "date is required"},
		{name: "bad date", in: BookInput{Name: "A", Email: "a@b.co", Date: "01/06/2024", Time: "10:00"}, want: "date must be YYYY-MM-DD"},
		{name: "bad time", in: BookInput{Name: "A", Email: "a@b.co", Date: "2024-06-01", Time: "2pm"}, want: "time must be HH:mm"},
		{name: "negative duration", in: BookInput{Name: "A", Email: "a@b.co", Date: "2024-06-01", Time: "10:00", Duration: -30}, want: "duration must be positive"},
		{name: "past midnight", in: BookInput{Name: "A", Email: "a@b.co", Date: "2024-06-01", Time: "23:30", Duration: 60}, want: "meeting must end on the same day"},
		{name: "huge duration", in: BookInput{Name: "A", Email: "a@b.co", Date: "2024-06-01", Time: "10:00", Duration: math.MaxInt - 500}, want: "meeting must end on the same day"},
		{name: "longer than a day", in: BookInput{Name: "A", Email: "a@b.co", Date: "2024-06-01", Time: "00:00", Duration: 24*60 + 30}, want: "meeting must end on the same day"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.svc.Book(context.Background(), tt.in)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("err = %v, want *ValidationError", err)
			}
			if vErr.Error() != tt.want {
				t.Fatalf("error = %q, want %q", vErr.Error(), tt.want)
			}
		})
	}
}

func TestBook_OutOfWindow(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	tests := []BookInput{
		request("08:30", 30),
		request("16:45", 30),
		{Name: "A", Email: "a@b.co", Date: "2024-06-02", Time: "10:00"},
		{Name: "A", Email: "a@b.co", Date: "2024-05-01", Time: "10:00"},
		{Name: "A", Email: "a@b.co", Date: "2024-12-01", Time: "10:00"},
	}
	for _, in := range tests {
		_, err := h.svc.Book(ctx, in)
		if !errors.Is(err, availability.ErrOutOfWindow) {
			t.Fatalf("%s %s: err = %v, want ErrOutOfWindow", in.Date, in.Time, err)
		}
	}
	if all, _ := h.repo.List(ctx, store.MeetingFilter{}); len(all) != 0 {
		t.Fatalf("stored %d meetings, want 0", len(all))
	}
}

func TestBook_NoSyncConfirmsImmediately(t *testing.T) {
	h := newHarness(t, WithSyncer(nil))

	res, err := h.svc.Book(context.Background(), request("09:00", 30))
	if err != nil {
		t.Fatalf("Book error: %v", err)
	}
	if res.Outcome != OutcomeConfirmed || res.Meeting.EventID() != "" {
		t.Fatalf("result = %+v", res)
	}
	if h.provider.CreateCalls() != 0 {
		t.Fatalf("create calls = %d, want 0", h.provider.CreateCalls())
	}
}

func TestBook_ConcurrentSameSlotHasOneWinner(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	const workers = 16
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := request("13:00", 30)
			in.Email = fmt.Sprintf("user%d@example.com", i)
			_, errs[i] = h.svc.Book(ctx, in)
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, store.ErrConflict):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Fatalf("wins = %d, want 1", wins)
	}
	active, _ := h.repo.ListActiveOnDate(ctx, domain.MustParseDate("2024-06-01"))
	if len(active) != 1 {
		t.Fatalf("active = %d, want 1", len(active))
	}
}

func TestBook_OccupiesExactlyItsInterval(t *testing.T) {
	for _, minutes := range []int{30, 60, 90} {
		t.Run(fmt.Sprint(minutes), func(t *testing.T) {
			h := newHarness(t)
			res, err := h.svc.Book(context.Background(), request("12:00", minutes))
			if err != nil {
				t.Fatalf("Book error: %v", err)
			}
			held := res.Meeting.Slot()

			free := freeStarts(t, h.svc, 30)
			for _, start := range free {
				s := domain.NewSlot(domain.MustParseTimeOfDay(start), 30)
				if s.Overlaps(held) {
					t.Fatalf("slot %s reported free inside %s", s, held)
				}
			}
			if want := 16 - minutes/30; len(free) != want {
				t.Fatalf("free = %d, want %d", len(free), want)
			}
		})
	}
}

func TestCancel_ReleasesSlotAndIsTerminal(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	res, err := h.svc.Book(ctx, request("14:00", 30))
	if err != nil {
		t.Fatalf("Book error: %v", err)
	}
	if slices.Contains(freeStarts(t, h.svc, 30), "14:00") {
		t.Fatalf("14:00 available while booked")
	}

	cancelled, err := h.svc.Cancel(ctx, res.Meeting.ID)
	if err != nil {
		t.Fatalf("Cancel error: %v", err)
	}
	if cancelled.Status != domain.MeetingStatusCancelled {
		t.Fatalf("status = %s, want CANCELLED", cancelled.Status)
	}
	if h.provider.Len() != 0 || h.provider.DeleteCalls() != 1 {
		t.Fatalf("remote events = %d, delete calls = %d", h.provider.Len(), h.provider.DeleteCalls())
	}
	if !slices.Contains(freeStarts(t, h.svc, 30), "14:00") {
		t.Fatalf("14:00 not available after cancel")
	}

	_, err = h.svc.Cancel(ctx, res.Meeting.ID)
	var tErr *AlreadyTerminalError
	if !errors.As(err, &tErr) {
		t.Fatalf("second Cancel err = %v, want *AlreadyTerminalError", err)
	}
	if h.provider.DeleteCalls() != 1 {
		t.Fatalf("delete calls = %d, want 1", h.provider.DeleteCalls())
	}

	if _, err := h.svc.Cancel(ctx, uuid.New()); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("unknown Cancel err = %v, want ErrNotFound", err)
	}
}

func TestCancel_RemoteFailureDoesNotBlock(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	res, err := h.svc.Book(ctx, request("15:00", 30))
	if err != nil {
		t.Fatalf("Book error: %v", err)
	}
	h.provider.FailNextDeletes(3)

	cancelled, err := h.svc.Cancel(ctx, res.Meeting.ID)
	if err != nil {
		t.Fatalf("Cancel error: %v", err)
	}
	if cancelled.Status != domain.MeetingStatusCancelled {
		t.Fatalf("status = %s", cancelled.Status)
	}
}

func TestRetrySync_ReusesRecordedEventID(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.provider.FailNextCreates(3)
	res, err := h.svc.Book(ctx, request("16:00", 30))
	if err != nil {
		t.Fatalf("Book error: %v", err)
	}
	if _, err := h.repo.AttachEventID(ctx, res.Meeting.ID, "evt-recorded"); err != nil {
		t.Fatalf("AttachEventID error: %v", err)
	}
	calls := h.provider.CreateCalls()

	retried, err := h.svc.RetrySync(ctx, res.Meeting.ID)
	if err != nil {
		t.Fatalf("RetrySync error: %v", err)
	}
	if retried.Outcome != OutcomeConfirmed || retried.Meeting.EventID() != "evt-recorded" {
		t.Fatalf("retried = %+v", retried)
	}
	if h.provider.CreateCalls() != calls {
		t.Fatalf("create calls = %d, want %d", h.provider.CreateCalls(), calls)
	}
}

func TestSweepersAndLifecycleEvents(t *testing.T) {
	h := newHarness(t, WithClock(func() time.Time { return time.Now().Add(time.Hour) }))
	ctx := context.Background()

	h.provider.FailNextCreates(3)
	pending, err := h.svc.Book(ctx, request("09:00", 30))
	if err != nil {
		t.Fatalf("Book error: %v", err)
	}

	n, err := h.svc.SweepPending(ctx, time.Minute, 10)
	if err != nil {
		t.Fatalf("SweepPending error: %v", err)
	}
	if n != 1 {
		t.Fatalf("confirmed = %d, want 1", n)
	}

	n, err = h.svc.CompleteElapsed(ctx, 10)
	if err != nil {
		t.Fatalf("CompleteElapsed error: %v", err)
	}
	if n != 1 {
		t.Fatalf("completed = %d, want 1", n)
	}
	got, err := h.svc.Get(ctx, pending.Meeting.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Status != domain.MeetingStatusCompleted {
		t.Fatalf("status = %s, want COMPLETED", got.Status)
	}

	if _, err := h.svc.Cancel(ctx, got.ID); err == nil {
		t.Fatalf("cancel of completed meeting succeeded")
	}

	want := []events.Kind{events.KindBooked, events.KindConfirmed, events.KindCompleted}
	if kinds := h.events.Kinds(); !slices.Equal(kinds, want) {
		t.Fatalf("events = %v, want %v", kinds, want)
	}
}

func TestCompleteRequiresConfirmed(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.provider.FailNextCreates(3)
	res, err := h.svc.Book(ctx, request("09:30", 30))
	if err != nil {
		t.Fatalf("Book error: %v", err)
	}
	if _, err := h.svc.Complete(ctx, res.Meeting.ID); !errors.Is(err, store.ErrInvalidTransition) {
		t.Fatalf("Complete pending err = %v, want ErrInvalidTransition", err)
	}
}

func TestDeleteRemovesMeetingAndRemoteEvent(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	res, err := h.svc.Book(ctx, request("10:30", 30))
	if err != nil {
		t.Fatalf("Book error: %v", err)
	}
	if err := h.svc.Delete(ctx, res.Meeting.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if h.provider.Len() != 0 {
		t.Fatalf("remote events = %d, want 0", h.provider.Len())
	}
	if _, err := h.svc.Get(ctx, res.Meeting.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Get after delete err = %v, want ErrNotFound", err)
	}
}

func TestList(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	for _, at := range []string{"09:00", "12:00", "15:00"} {
		if _, err := h.svc.Book(ctx, request(at, 30)); err != nil {
			t.Fatalf("Book %s error: %v", at, err)
		}
	}

	rows, err := h.svc.List(ctx, ListInput{From: "2024-06-01", To: "2024-06-01", Status: "confirmed"})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	var got []string
	for _, m := range rows {
		got = append(got, m.Time.String())
	}
	if want := []string{"15:00", "12:00", "09:00"}; !slices.Equal(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}

	_, err = h.svc.List(ctx, ListInput{From: "2024-06-02", To: "2024-06-01"})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
}

// cancellingProvider cancels the meeting from inside CreateEvent, the way a
// user's cancel can land while the remote call is in flight.
type cancellingProvider struct {
	*calendarsync.FakeProvider
	svc *Service
	id  uuid.UUID
}

func (p *cancellingProvider) CreateEvent(ctx context.Context, ev calendarsync.Event) (string, error) {
	if _, err := p.svc.Cancel(ctx, p.id); err != nil {
		return "", err
	}
	return p.FakeProvider.CreateEvent(ctx, ev)
}

func TestBook_CancelDuringEventCreateDiscardsEvent(t *testing.T) {
	h := newHarness(t)
	provider := &cancellingProvider{FakeProvider: calendarsync.NewFakeProvider()}
	syncer := calendarsync.NewSyncer(provider, calendarsync.RetryPolicy{
		Attempts:       1,
		AttemptTimeout: time.Second,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     time.Millisecond,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	svc := NewService(h.repo, h.svc.calendar, WithSyncer(syncer), WithPublisher(h.events), WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	provider.svc = svc

	in := request("11:00", 30)
	in.IdempotencyKey = "cancel-race"
	planned, err := svc.meetingFromInput(in)
	if err != nil {
		t.Fatalf("meetingFromInput error: %v", err)
	}
	provider.id = planned.ID

	_, err = svc.Book(context.Background(), in)
	var tErr *AlreadyTerminalError
	if !errors.As(err, &tErr) || tErr.Status != domain.MeetingStatusCancelled {
		t.Fatalf("err = %v, want *AlreadyTerminalError for CANCELLED", err)
	}
	if n := provider.Len(); n != 0 {
		t.Fatalf("remote events left = %d, want 0", n)
	}
	stored, err := h.repo.Get(context.Background(), planned.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if stored.Status != domain.MeetingStatusCancelled || stored.EventID() != "" {
		t.Fatalf("stored = %s/%q, want CANCELLED without event id", stored.Status, stored.EventID())
	}
}
