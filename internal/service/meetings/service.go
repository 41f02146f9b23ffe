package meetings

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"meetbook/backend/internal/availability"
	"meetbook/backend/internal/calendarsync"
	"meetbook/backend/internal/domain"
	"meetbook/backend/internal/events"
	"meetbook/backend/internal/store"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const suggestionCount = 3

type Outcome string

const (
	OutcomeConfirmed Outcome = "booked and confirmed"
	OutcomePending   Outcome = "booked, confirmation pending"
)

type Service struct {
	repo            store.MeetingRepository
	calendar        *availability.Calendar
	syncer          *calendarsync.Syncer
	publisher       events.Publisher
	logger          *slog.Logger
	now             func() time.Time
	defaultDuration int
}

type Option func(*Service)

// WithSyncer enables the external calendar. Without one, bookings are
// confirmed as soon as they are stored.
func WithSyncer(s *calendarsync.Syncer) Option {
	return func(svc *Service) { svc.syncer = s }
}

func WithPublisher(p events.Publisher) Option {
	return func(svc *Service) { svc.publisher = p }
}

func WithLogger(l *slog.Logger) Option {
	return func(svc *Service) { svc.logger = l }
}

func WithClock(now func() time.Time) Option {
	return func(svc *Service) { svc.now = now }
}

func WithDefaultDuration(minutes int) Option {
	return func(svc *Service) { svc.defaultDuration = minutes }
}

func NewService(repo store.MeetingRepository, calendar *availability.Calendar, opts ...Option) *Service {
	svc := &Service{
		repo:            repo,
		calendar:        calendar,
		publisher:       events.Nop{},
		logger:          slog.Default(),
		now:             time.Now,
		defaultDuration: domain.DefaultMeetingDuration,
	}
	for _, opt := range opts {
		opt(svc)
	}
	svc.logger = svc.logger.With(slog.String("component", "meetings"))
	return svc
}

type BookInput struct {
	Name           string
	Email          string
	Company        string
	Phone          string
	Message        string
	Service        string
	Date           string
	Time           string
	Duration       int
	IdempotencyKey string
}

type BookResult struct {
	Meeting domain.Meeting
	Outcome Outcome
	// Warning is set when the booking is stored but the calendar invite
	// could not be created yet.
	Warning string
	// Resumed is true when the request matched a booking the same owner
	// already holds for this slot.
	Resumed bool
}

func (s *Service) Book(ctx context.Context, in BookInput) (BookResult, error) {
	m, err := s.meetingFromInput(in)
	if err != nil {
		return BookResult{}, err
	}

	if m.ID != uuid.Nil {
		existing, err := s.repo.Get(ctx, m.ID)
		switch {
		case err == nil:
			if !sameRequest(existing, m) {
				return BookResult{}, store.ErrIdempotencyConflict
			}
			return s.resume(ctx, existing)
		case !errors.Is(err, store.ErrNotFound):
			return BookResult{}, err
		}
	}

	if err := s.calendar.Validate(ctx, m.Date, m.Time, m.Duration); err != nil {
		var cErr *store.ConflictError
		if errors.As(err, &cErr) {
			return s.onConflict(ctx, m, cErr.MeetingID)
		}
		return BookResult{}, err
	}

	m.Schedule(s.calendar.Location())
	created, err := s.repo.InsertIfFree(ctx, m)
	if err != nil {
		var cErr *store.ConflictError
		if errors.As(err, &cErr) {
			return s.onConflict(ctx, m, cErr.MeetingID)
		}
		return BookResult{}, fmt.Errorf("store meeting: %w", err)
	}

	s.logger.Info("meeting booked",
		slog.String("meeting_id", created.ID.String()),
		slog.String("date", created.Date.String()),
		slog.String("time", created.Time.String()),
		slog.Int("duration", created.Duration),
	)
	s.publish(ctx, events.KindBooked, created)
	return s.confirm(ctx, created)
}

func (s *Service) meetingFromInput(in BookInput) (domain.Meeting, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Meeting{}, validationError("name is required")
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		return domain.Meeting{}, validationError("email is required")
	}
	if !emailPattern.MatchString(email) {
		return domain.Meeting{}, validationError("email is invalid")
	}
	if strings.TrimSpace(in.Date) == "" {
		return domain.Meeting{}, validationError("date is required")
	}
	date, err := domain.ParseDate(strings.TrimSpace(in.Date))
	if err != nil {
		return domain.Meeting{}, validationError("date must be YYYY-MM-DD")
	}
	if strings.TrimSpace(in.Time) == "" {
		return domain.Meeting{}, validationError("time is required")
	}
	at, err := domain.ParseTimeOfDay(strings.TrimSpace(in.Time))
	if err != nil {
		return domain.Meeting{}, validationError("time must be HH:mm")
	}

	duration := in.Duration
	if duration == 0 {
		duration = s.defaultDuration
	}
	if duration < 0 {
		return domain.Meeting{}, validationError("duration must be positive")
	}
	if duration > int(domain.EndOfDay-at) {
		return domain.Meeting{}, validationError("meeting must end on the same day")
	}

	m := domain.Meeting{
		Name:     name,
		Email:    email,
		Company:  strings.TrimSpace(in.Company),
		Phone:    strings.TrimSpace(in.Phone),
		Message:  strings.TrimSpace(in.Message),
		Service:  strings.TrimSpace(in.Service),
		Date:     date,
		Time:     at,
		Duration: duration,
		Status:   domain.MeetingStatusPending,
	}

	key := strings.TrimSpace(in.IdempotencyKey)
	if key != "" {
		if len(key) > 256 {
			return domain.Meeting{}, validationError("idempotency_key too long")
		}
		m.ID = uuid.NewSHA1(uuid.NameSpaceOID, []byte("meetbook:book_meeting:"+email+":"+key))
	}
	return m, nil
}

// sameRequest reports whether b asks for exactly the booking a holds.
func sameRequest(a, b domain.Meeting) bool {
	return strings.EqualFold(a.Email, b.Email) &&
		a.Date == b.Date &&
		a.Time == b.Time &&
		a.Duration == b.Duration
}

func (s *Service) onConflict(ctx context.Context, m domain.Meeting, holder uuid.UUID) (BookResult, error) {
	if holder != uuid.Nil {
		existing, err := s.repo.Get(ctx, holder)
		if err == nil && sameRequest(existing, m) && !existing.Status.Terminal() {
			return s.resume(ctx, existing)
		}
	}

	suggested, err := s.calendar.Suggest(ctx, m.Date, m.Time, m.Duration, suggestionCount)
	if err != nil {
		s.logger.Warn("suggest alternatives failed", slog.Any("err", err))
	}
	s.logger.Info("meeting conflict",
		slog.String("date", m.Date.String()),
		slog.String("time", m.Time.String()),
		slog.String("holder", holder.String()),
	)
	return BookResult{}, &ConflictError{MeetingID: holder, Suggested: suggested}
}

// resume returns the owner's existing booking, finishing its calendar sync
// if it is still pending.
func (s *Service) resume(ctx context.Context, m domain.Meeting) (BookResult, error) {
	var res BookResult
	var err error
	switch m.Status {
	case domain.MeetingStatusPending:
		res, err = s.confirm(ctx, m)
	case domain.MeetingStatusConfirmed:
		res = BookResult{Meeting: m, Outcome: OutcomeConfirmed}
	default:
		return BookResult{}, &AlreadyTerminalError{ID: m.ID, Status: m.Status}
	}
	if err != nil {
		return BookResult{}, err
	}
	res.Resumed = true
	return res, nil
}

// confirm creates the remote event for a PENDING meeting unless one is
// already recorded, then moves it to CONFIRMED. A sync failure leaves the
// meeting PENDING and is returned as a warning.
func (s *Service) confirm(ctx context.Context, m domain.Meeting) (BookResult, error) {
	var created string
	if s.syncer != nil && m.EventID() == "" {
		eventID, err := s.syncer.CreateEvent(ctx, calendarsync.EventFor(m, s.calendar.Location()))
		if err != nil {
			s.logger.Warn("calendar sync failed, meeting left pending",
				slog.String("meeting_id", m.ID.String()),
				slog.Any("err", err),
			)
			if recErr := s.repo.RecordSyncFailure(ctx, m.ID, err.Error()); recErr != nil {
				s.logger.Error("record sync failure", slog.String("meeting_id", m.ID.String()), slog.Any("err", recErr))
			}
			m.SyncAttempts++
			m.LastSyncError = err.Error()
			return BookResult{Meeting: m, Outcome: OutcomePending, Warning: "calendar invite pending: " + err.Error()}, nil
		}

		attached, err := s.repo.AttachEventID(ctx, m.ID, eventID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				s.discardEvent(ctx, m.ID, eventID)
			}
			return BookResult{}, fmt.Errorf("attach event id: %w", err)
		}
		if attached.Status.Terminal() {
			// Cancelled while the event was being created; Cancel saw no
			// event id to delete.
			s.discardEvent(ctx, m.ID, eventID)
			return BookResult{}, &AlreadyTerminalError{ID: attached.ID, Status: attached.Status}
		}
		created = eventID
		if attached.EventID() != eventID {
			created = ""
			s.logger.Warn("meeting already had an event id",
				slog.String("meeting_id", m.ID.String()),
				slog.String("kept", attached.EventID()),
				slog.String("dropped", eventID),
			)
		}
		m = attached
	}

	confirmed, err := s.repo.UpdateStatus(ctx, m.ID, domain.MeetingStatusConfirmed, store.StatusUpdate{})
	if err != nil {
		if !errors.Is(err, store.ErrInvalidTransition) {
			return BookResult{}, fmt.Errorf("confirm meeting: %w", err)
		}
		current, getErr := s.repo.Get(ctx, m.ID)
		if getErr != nil {
			return BookResult{}, getErr
		}
		if current.Status == domain.MeetingStatusConfirmed {
			return BookResult{Meeting: current, Outcome: OutcomeConfirmed}, nil
		}
		if current.Status == domain.MeetingStatusCancelled && created != "" && current.EventID() == created {
			s.deleteRemote(ctx, current)
		}
		return BookResult{}, &AlreadyTerminalError{ID: current.ID, Status: current.Status}
	}

	s.logger.Info("meeting confirmed",
		slog.String("meeting_id", confirmed.ID.String()),
		slog.String("google_event_id", confirmed.EventID()),
	)
	s.publish(ctx, events.KindConfirmed, confirmed)
	return BookResult{Meeting: confirmed, Outcome: OutcomeConfirmed}, nil
}

func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (domain.Meeting, error) {
	if id == uuid.Nil {
		return domain.Meeting{}, validationError("meeting_id is required")
	}
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Meeting{}, err
	}
	if m.Status.Terminal() {
		return domain.Meeting{}, &AlreadyTerminalError{ID: m.ID, Status: m.Status}
	}

	cancelled, err := s.repo.UpdateStatus(ctx, id, domain.MeetingStatusCancelled, store.StatusUpdate{})
	if err != nil {
		if errors.Is(err, store.ErrInvalidTransition) {
			current, getErr := s.repo.Get(ctx, id)
			if getErr != nil {
				return domain.Meeting{}, getErr
			}
			return domain.Meeting{}, &AlreadyTerminalError{ID: id, Status: current.Status}
		}
		return domain.Meeting{}, err
	}

	s.deleteRemote(ctx, cancelled)
	s.logger.Info("meeting cancelled", slog.String("meeting_id", id.String()))
	s.publish(ctx, events.KindCancelled, cancelled)
	return cancelled, nil
}

// discardEvent deletes a remote event that could not be attached to its
// meeting.
func (s *Service) discardEvent(ctx context.Context, id uuid.UUID, eventID string) {
	s.logger.Warn("discarding calendar event of a closed meeting",
		slog.String("meeting_id", id.String()),
		slog.String("google_event_id", eventID),
	)
	if err := s.syncer.DeleteEvent(ctx, eventID); err != nil {
		s.logger.Warn("calendar event delete failed",
			slog.String("meeting_id", id.String()),
			slog.String("google_event_id", eventID),
			slog.Any("err", err),
		)
	}
}

func (s *Service) deleteRemote(ctx context.Context, m domain.Meeting) {
	if s.syncer == nil || m.EventID() == "" {
		return
	}
	if err := s.syncer.DeleteEvent(ctx, m.EventID()); err != nil {
		s.logger.Warn("calendar event delete failed",
			slog.String("meeting_id", m.ID.String()),
			slog.String("google_event_id", m.EventID()),
			slog.Any("err", err),
		)
	}
}

// Complete marks a CONFIRMED meeting as held.
func (s *Service) Complete(ctx context.Context, id uuid.UUID) (domain.Meeting, error) {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Meeting{}, err
	}
	if m.Status.Terminal() {
		return domain.Meeting{}, &AlreadyTerminalError{ID: m.ID, Status: m.Status}
	}
	done, err := s.repo.UpdateStatus(ctx, id, domain.MeetingStatusCompleted, store.StatusUpdate{})
	if err != nil {
		return domain.Meeting{}, fmt.Errorf("complete meeting %s from %s: %w", id, m.Status, err)
	}
	s.publish(ctx, events.KindCompleted, done)
	return done, nil
}

// Delete destroys a meeting. Any remote event of a still active meeting is
// removed first on a best effort basis.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if !m.Status.Terminal() {
		s.deleteRemote(ctx, m)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("meeting deleted", slog.String("meeting_id", id.String()))
	s.publish(ctx, events.KindDeleted, m)
	return nil
}

// RetrySync retries the calendar create of a PENDING meeting.
func (s *Service) RetrySync(ctx context.Context, id uuid.UUID) (BookResult, error) {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return BookResult{}, err
	}
	switch m.Status {
	case domain.MeetingStatusPending:
		return s.confirm(ctx, m)
	case domain.MeetingStatusConfirmed:
		return BookResult{Meeting: m, Outcome: OutcomeConfirmed}, nil
	default:
		return BookResult{}, &AlreadyTerminalError{ID: m.ID, Status: m.Status}
	}
}

// SweepPending retries every PENDING meeting older than grace and returns how
// many were confirmed.
func (s *Service) SweepPending(ctx context.Context, grace time.Duration, limit int) (int, error) {
	rows, err := s.repo.ListPendingSync(ctx, s.now().Add(-grace), limit)
	if err != nil {
		return 0, err
	}
	confirmed := 0
	for _, m := range rows {
		if err := ctx.Err(); err != nil {
			return confirmed, err
		}
		res, err := s.confirm(ctx, m)
		if err != nil {
			s.logger.Warn("pending sweep failed", slog.String("meeting_id", m.ID.String()), slog.Any("err", err))
			continue
		}
		if res.Outcome == OutcomeConfirmed {
			confirmed++
		}
	}
	return confirmed, nil
}

// CompleteElapsed moves CONFIRMED meetings whose end has passed to COMPLETED.
func (s *Service) CompleteElapsed(ctx context.Context, limit int) (int, error) {
	rows, err := s.repo.ListElapsed(ctx, s.now(), limit)
	if err != nil {
		return 0, err
	}
	completed := 0
	for _, m := range rows {
		done, err := s.repo.UpdateStatus(ctx, m.ID, domain.MeetingStatusCompleted, store.StatusUpdate{})
		if err != nil {
			if !errors.Is(err, store.ErrInvalidTransition) {
				s.logger.Warn("complete meeting failed", slog.String("meeting_id", m.ID.String()), slog.Any("err", err))
			}
			continue
		}
		completed++
		s.publish(ctx, events.KindCompleted, done)
	}
	return completed, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Meeting, error) {
	if id == uuid.Nil {
		return domain.Meeting{}, validationError("meeting_id is required")
	}
	return s.repo.Get(ctx, id)
}

type ListInput struct {
	From   string
	To     string
	Status string
	Email  string
	Limit  int
}

func (s *Service) List(ctx context.Context, in ListInput) ([]domain.Meeting, error) {
	var filter store.MeetingFilter
	if in.From != "" {
		d, err := domain.ParseDate(in.From)
		if err != nil {
			return nil, validationError("from must be YYYY-MM-DD")
		}
		filter.From = &d
	}
	if in.To != "" {
		d, err := domain.ParseDate(in.To)
		if err != nil {
			return nil, validationError("to must be YYYY-MM-DD")
		}
		filter.To = &d
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, validationError("to must not be before from")
	}
	if in.Status != "" {
		st, err := domain.ParseMeetingStatus(strings.ToUpper(in.Status))
		if err != nil {
			return nil, validationError("invalid status")
		}
		filter.Status = st
	}
	filter.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Limit < 0 || in.Limit > 500 {
		return nil, validationError("limit must be between 0 and 500")
	}
	filter.Limit = in.Limit
	return s.repo.List(ctx, filter)
}

func (s *Service) duration(minutes int) int {
	if minutes == 0 {
		return s.defaultDuration
	}
	return minutes
}

func (s *Service) AvailableSlots(ctx context.Context, date domain.Date, minutes int) (iter.Seq[domain.Slot], error) {
	return s.calendar.AvailableSlots(ctx, date, s.duration(minutes))
}

func (s *Service) DaySchedule(ctx context.Context, date domain.Date, minutes int) (availability.Day, error) {
	return s.calendar.DaySchedule(ctx, date, s.duration(minutes))
}

// Location is the business zone meeting tokens are read in.
func (s *Service) Location() *time.Location {
	return s.calendar.Location()
}

func (s *Service) publish(ctx context.Context, kind events.Kind, m domain.Meeting) {
	if err := s.publisher.Publish(ctx, events.NewMeetingEvent(kind, m, s.now())); err != nil {
		s.logger.Warn("publish meeting event failed",
			slog.String("kind", string(kind)),
			slog.String("meeting_id", m.ID.String()),
			slog.Any("err", err),
		)
	}
}
