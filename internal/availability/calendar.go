package availability

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"

	"meetbook/backend/internal/domain"
	"meetbook/backend/internal/store"
)

type MeetingReader interface {
	ListActiveOnDate(ctx context.Context, date domain.Date) ([]domain.Meeting, error)
}

type BlackoutSource interface {
	Blackouts(ctx context.Context, date domain.Date) ([]domain.Blackout, error)
}

// StaticBlackouts is a fixed list of closures.
type StaticBlackouts []domain.Blackout

func (s StaticBlackouts) Blackouts(ctx context.Context, date domain.Date) ([]domain.Blackout, error) {
	var out []domain.Blackout
	for _, b := range s {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

// Calendar computes availability on demand from the current bookings. It
// holds no booking state of its own.
type Calendar struct {
	hours       domain.BusinessHours
	horizonDays int
	meetings    MeetingReader
	blackouts   BlackoutSource
	now         func() time.Time
}

type Option func(*Calendar)

func WithBlackouts(src BlackoutSource) Option {
	return func(c *Calendar) { c.blackouts = src }
}

func WithClock(now func() time.Time) Option {
	return func(c *Calendar) { c.now = now }
}

// NewCalendar builds a calendar. horizonDays <= 0 disables the upper bound of
// the booking horizon.
func NewCalendar(hours domain.BusinessHours, horizonDays int, meetings MeetingReader, opts ...Option) *Calendar {
	c := &Calendar{
		hours:       hours,
		horizonDays: horizonDays,
		meetings:    meetings,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Calendar) Hours() domain.BusinessHours {
	return c.hours
}

func (c *Calendar) Location() *time.Location {
	return c.hours.Location
}

func (c *Calendar) Today() domain.Date {
	return c.hours.Today(c.now())
}

// CheckHorizon fails with *OutOfRangeError for past dates and dates beyond
// the configured horizon.
func (c *Calendar) CheckHorizon(date domain.Date) error {
	today := c.Today()
	if date.Before(today) {
		return &OutOfRangeError{Date: date, Reason: "date is in the past"}
	}
	if c.horizonDays > 0 && date.After(today.AddDays(c.horizonDays)) {
		return &OutOfRangeError{Date: date, Reason: fmt.Sprintf("date is more than %d days ahead", c.horizonDays)}
	}
	return nil
}

func (c *Calendar) checkDuration(minutes int) error {
	if minutes <= 0 || minutes%c.hours.Granularity != 0 {
		return fmt.Errorf("%w: %d minutes is not a positive multiple of %d", ErrInvalidDuration, minutes, c.hours.Granularity)
	}
	if minutes > int(domain.EndOfDay) {
		return fmt.Errorf("%w: %d minutes is longer than a day", ErrInvalidDuration, minutes)
	}
	return nil
}

// day is a snapshot of everything that decides availability on one date.
type day struct {
	date      domain.Date
	meetings  []domain.Meeting
	blackouts []domain.Blackout
	cutoff    domain.TimeOfDay
}

func (c *Calendar) load(ctx context.Context, date domain.Date) (day, error) {
	meetings, err := c.meetings.ListActiveOnDate(ctx, date)
	if err != nil {
		return day{}, fmt.Errorf("list meetings: %w", err)
	}
	var blackouts []domain.Blackout
	if c.blackouts != nil {
		blackouts, err = c.blackouts.Blackouts(ctx, date)
		if err != nil {
			return day{}, fmt.Errorf("load blackouts: %w", err)
		}
	}

	d := day{date: date, meetings: meetings, blackouts: blackouts}
	now := c.now().In(c.hours.Location)
	if domain.DateOf(now) == date {
		// Starts at or before the current minute are gone.
		d.cutoff = domain.TimeOfDay(now.Hour()*60 + now.Minute() + 1)
	}
	return d, nil
}

func (d day) closedBy(s domain.Slot) (domain.Blackout, bool) {
	for _, b := range d.blackouts {
		if b.Slot.Overlaps(s) {
			return b, true
		}
	}
	return domain.Blackout{}, false
}

func (d day) free(s domain.Slot) bool {
	if s.Start < d.cutoff {
		return false
	}
	if _, closed := d.closedBy(s); closed {
		return false
	}
	_, taken := store.FirstOverlap(d.meetings, s, uuid.Nil)
	return !taken
}

func (c *Calendar) grid(date domain.Date, minutes int) iter.Seq[domain.Slot] {
	wd := date.Weekday()
	step := c.hours.Granularity
	return func(yield func(domain.Slot) bool) {
		for _, r := range c.hours.Ranges(wd) {
			for start := r.Start; start.Add(minutes) <= r.End; start = start.Add(step) {
				if !yield(domain.NewSlot(start, minutes)) {
					return
				}
			}
		}
	}
}

// AvailableSlots returns the free starts on date in ascending order. The
// bookings are read once; ranging over the result again replays the same
// snapshot.
func (c *Calendar) AvailableSlots(ctx context.Context, date domain.Date, minutes int) (iter.Seq[domain.Slot], error) {
	if err := c.CheckHorizon(date); err != nil {
		return nil, err
	}
	if err := c.checkDuration(minutes); err != nil {
		return nil, err
	}
	d, err := c.load(ctx, date)
	if err != nil {
		return nil, err
	}

	grid := c.grid(date, minutes)
	return func(yield func(domain.Slot) bool) {
		for s := range grid {
			if !d.free(s) {
				continue
			}
			if !yield(s) {
				return
			}
		}
	}, nil
}

// Validate checks a requested slot against business hours, blackouts and the
// current bookings. A nil error means the slot was free when read; the store
// still has the final word at insert time.
func (c *Calendar) Validate(ctx context.Context, date domain.Date, start domain.TimeOfDay, minutes int) error {
	if err := c.CheckHorizon(date); err != nil {
		return err
	}
	if minutes <= 0 || minutes > int(domain.EndOfDay-start) {
		return &OutOfWindowError{Date: date, Slot: domain.Slot{Start: start, End: domain.EndOfDay}, Reason: "outside business hours"}
	}
	slot := domain.NewSlot(start, minutes)
	if err := c.checkHours(date, slot); err != nil {
		return err
	}
	d, err := c.load(ctx, date)
	if err != nil {
		return err
	}
	return d.check(slot)
}

func (c *Calendar) checkHours(date domain.Date, slot domain.Slot) error {
	wd := date.Weekday()
	if !c.hours.OpenOn(wd) {
		return &OutOfWindowError{Date: date, Slot: slot, Reason: fmt.Sprintf("closed on %s", wd)}
	}
	if slot.End > domain.EndOfDay || !c.hours.Covers(wd, slot) {
		return &OutOfWindowError{Date: date, Slot: slot, Reason: "outside business hours"}
	}
	return nil
}

func (d day) check(slot domain.Slot) error {
	if slot.Start < d.cutoff {
		return &OutOfWindowError{Date: d.date, Slot: slot, Reason: "start time has passed"}
	}
	if b, closed := d.closedBy(slot); closed {
		reason := "closed"
		if b.Summary != "" {
			reason = "closed: " + b.Summary
		}
		return &OutOfWindowError{Date: d.date, Slot: slot, Reason: reason}
	}
	if hit, taken := store.FirstOverlap(d.meetings, slot, uuid.Nil); taken {
		return &store.ConflictError{MeetingID: hit.ID}
	}
	return nil
}

// Suggest returns up to n free slots of the same length on date, nearest
// after start first, then the earlier ones.
func (c *Calendar) Suggest(ctx context.Context, date domain.Date, start domain.TimeOfDay, minutes, n int) ([]domain.Slot, error) {
	if n <= 0 || minutes <= 0 || minutes > int(domain.EndOfDay) {
		return nil, nil
	}
	if err := c.CheckHorizon(date); err != nil {
		return nil, err
	}
	d, err := c.load(ctx, date)
	if err != nil {
		return nil, err
	}

	var after, before []domain.Slot
	for s := range c.grid(date, minutes) {
		if !d.free(s) {
			continue
		}
		if s.Start >= start {
			after = append(after, s)
			if len(after) == n {
				break
			}
		} else {
			before = append(before, s)
		}
	}
	out := after
	for i := len(before) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, before[i])
	}
	return out, nil
}

type SlotState struct {
	Slot      domain.Slot
	Available bool
}

type Day struct {
	Date    domain.Date
	Open    bool
	Message string
	Slots   []SlotState
}

// DaySchedule lists every slot of the grid with its availability. Closed days
// are reported with Open=false rather than an error.
func (c *Calendar) DaySchedule(ctx context.Context, date domain.Date, minutes int) (Day, error) {
	if err := c.CheckHorizon(date); err != nil {
		return Day{}, err
	}
	if err := c.checkDuration(minutes); err != nil {
		return Day{}, err
	}

	out := Day{Date: date}
	wd := date.Weekday()
	if !c.hours.OpenOn(wd) {
		out.Message = fmt.Sprintf("No availability on %s", wd)
		return out, nil
	}

	d, err := c.load(ctx, date)
	if err != nil {
		return Day{}, err
	}
	for _, b := range d.blackouts {
		if b.AllDay() {
			out.Message = "Closed"
			if b.Summary != "" {
				out.Message = "Closed: " + b.Summary
			}
			return out, nil
		}
	}

	out.Open = true
	for s := range c.grid(date, minutes) {
		out.Slots = append(out.Slots, SlotState{Slot: s, Available: d.free(s)})
	}
	return out, nil
}
