package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// BusinessHours is the weekly opening schedule in a single time zone.
type BusinessHours struct {
	Location    *time.Location
	Granularity int
	ranges      [7][]Slot
}

func NewBusinessHours(loc *time.Location, granularityMinutes int) (BusinessHours, error) {
	if loc == nil {
		return BusinessHours{}, errors.New("business hours: location is required")
	}
	if granularityMinutes <= 0 || int(EndOfDay)%granularityMinutes != 0 {
		return BusinessHours{}, fmt.Errorf("business hours: granularity %d must divide a day", granularityMinutes)
	}
	return BusinessHours{Location: loc, Granularity: granularityMinutes}, nil
}

// Open adds an opening range for the given weekdays. Ranges on the same day
// are kept sorted and must not overlap.
func (b *BusinessHours) Open(open, close TimeOfDay, days ...time.Weekday) error {
	if close <= open || close > EndOfDay {
		return fmt.Errorf("business hours: invalid range %s-%s", open, close)
	}
	r := Slot{Start: open, End: close}
	for _, wd := range days {
		for _, existing := range b.ranges[wd] {
			if existing.Overlaps(r) {
				return fmt.Errorf("business hours: range %s overlaps %s on %s", r, existing, wd)
			}
		}
		b.ranges[wd] = append(b.ranges[wd], r)
		sort.Slice(b.ranges[wd], func(i, j int) bool { return b.ranges[wd][i].Start < b.ranges[wd][j].Start })
	}
	return nil
}

func (b BusinessHours) Ranges(wd time.Weekday) []Slot {
	return b.ranges[wd]
}

func (b BusinessHours) OpenOn(wd time.Weekday) bool {
	return len(b.ranges[wd]) > 0
}

// Covers reports whether the slot lies entirely inside one opening range.
func (b BusinessHours) Covers(wd time.Weekday, s Slot) bool {
	for _, r := range b.ranges[wd] {
		if r.Contains(s) {
			return true
		}
	}
	return false
}

// Today returns the current calendar day in the business zone.
func (b BusinessHours) Today(now time.Time) Date {
	return DateOf(now.In(b.Location))
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

func ParseWeekdays(names []string) ([]time.Weekday, error) {
	seen := make(map[time.Weekday]struct{}, len(names))
	out := make([]time.Weekday, 0, len(names))
	for _, n := range names {
		key := strings.ToLower(strings.TrimSpace(n))
		if key == "" {
			continue
		}
		wd, ok := weekdayNames[key]
		if !ok {
			return nil, fmt.Errorf("invalid weekday %q", n)
		}
		if _, dup := seen[wd]; dup {
			continue
		}
		seen[wd] = struct{}{}
		out = append(out, wd)
	}
	if len(out) == 0 {
		return nil, errors.New("at least one weekday is required")
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// Blackout closes part or all of a day.
type Blackout struct {
	Date    Date
	Slot    Slot
	Summary string
}

func AllDayBlackout(d Date, summary string) Blackout {
	return Blackout{Date: d, Slot: Slot{Start: 0, End: EndOfDay}, Summary: summary}
}

func (b Blackout) AllDay() bool {
	return b.Slot.Start == 0 && b.Slot.End == EndOfDay
}
