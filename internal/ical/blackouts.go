package ical

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	goical "github.com/emersion/go-ical"

	"meetbook/backend/internal/domain"
)

// ParseBlackouts turns the VEVENTs of an iCalendar stream into closures in
// loc. All-day events close whole days; timed events close the minutes they
// cover on each day they touch. Cancelled and transparent events are ignored.
func ParseBlackouts(r io.Reader, loc *time.Location) ([]domain.Blackout, error) {
	dec := goical.NewDecoder(r)
	var out []domain.Blackout
	for {
		cal, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode calendar: %w", err)
		}
		for _, comp := range cal.Children {
			if comp.Name != goical.CompEvent {
				continue
			}
			bs, err := eventBlackouts(comp, loc)
			if err != nil {
				return nil, err
			}
			out = append(out, bs...)
		}
	}
	return out, nil
}

func eventBlackouts(comp *goical.Component, loc *time.Location) ([]domain.Blackout, error) {
	if p := comp.Props.Get(goical.PropStatus); p != nil && strings.EqualFold(p.Value, "CANCELLED") {
		return nil, nil
	}
	if p := comp.Props.Get(goical.PropTransparency); p != nil && strings.EqualFold(p.Value, "TRANSPARENT") {
		return nil, nil
	}

	startProp := comp.Props.Get(goical.PropDateTimeStart)
	if startProp == nil {
		return nil, nil
	}
	summary := ""
	if p := comp.Props.Get(goical.PropSummary); p != nil {
		summary = p.Value
	}

	start, err := startProp.DateTime(loc)
	if err != nil {
		return nil, fmt.Errorf("event %q: DTSTART: %w", summary, err)
	}

	var end time.Time
	if endProp := comp.Props.Get(goical.PropDateTimeEnd); endProp != nil {
		end, err = endProp.DateTime(loc)
		if err != nil {
			return nil, fmt.Errorf("event %q: DTEND: %w", summary, err)
		}
	}

	if startProp.ValueType() == goical.ValueDate {
		first := domain.DateOf(start)
		days := 1
		if !end.IsZero() {
			last := domain.DateOf(end)
			for d := first.AddDays(1); d.Before(last); d = d.AddDays(1) {
				days++
			}
		}
		out := make([]domain.Blackout, 0, days)
		for i := 0; i < days; i++ {
			out = append(out, domain.AllDayBlackout(first.AddDays(i), summary))
		}
		return out, nil
	}

	if !end.After(start) {
		return nil, nil
	}
	return splitByDay(start.In(loc), end.In(loc), summary), nil
}

func splitByDay(start, end time.Time, summary string) []domain.Blackout {
	var out []domain.Blackout
	for cur := start; cur.Before(end); {
		date := domain.DateOf(cur)
		from := domain.TimeOfDay(cur.Hour()*60 + cur.Minute())
		nextDay := time.Date(cur.Year(), cur.Month(), cur.Day()+1, 0, 0, 0, 0, cur.Location())
		to := domain.EndOfDay
		if end.Before(nextDay) {
			to = domain.TimeOfDay(end.Hour()*60 + end.Minute())
			if end.Second() > 0 {
				to++
			}
		}
		if to > from {
			out = append(out, domain.Blackout{Date: date, Slot: domain.Slot{Start: from, End: to}, Summary: summary})
		}
		cur = nextDay
	}
	return out
}

// Feed serves blackouts from a remote ICS URL, refetching after ttl. A failed
// refresh keeps the last good copy; with no copy at all the feed reports no
// closures.
type Feed struct {
	url    string
	client *http.Client
	loc    *time.Location
	ttl    time.Duration
	logger *slog.Logger
	now    func() time.Time

	mu      sync.Mutex
	fetched time.Time
	byDate  map[domain.Date][]domain.Blackout
}

func NewFeed(url string, loc *time.Location, ttl time.Duration, client *http.Client, logger *slog.Logger) *Feed {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Feed{
		url:    url,
		client: client,
		loc:    loc,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "blackout_feed")),
		now:    time.Now,
	}
}

func (f *Feed) Blackouts(ctx context.Context, date domain.Date) ([]domain.Blackout, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.byDate == nil || f.now().Sub(f.fetched) >= f.ttl {
		if err := f.refresh(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil, err
			}
			f.logger.Warn("blackout feed refresh failed", slog.String("url", f.url), slog.Any("err", err))
		}
	}
	return f.byDate[date], nil
}

func (f *Feed) refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: %s", f.url, resp.Status)
	}

	list, err := ParseBlackouts(resp.Body, f.loc)
	if err != nil {
		return err
	}
	byDate := make(map[domain.Date][]domain.Blackout)
	for _, b := range list {
		byDate[b.Date] = append(byDate[b.Date], b)
	}
	f.byDate = byDate
	f.fetched = f.now()
	f.logger.Info("blackout feed refreshed", slog.Int("closures", len(list)))
	return nil
}
