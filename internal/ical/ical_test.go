package ical

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"meetbook/backend/internal/domain"
)

const holidayFeed = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//test//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:eid@test\r\n" +
	"DTSTAMP:20240101T000000Z\r\n" +
	"DTSTART;VALUE=DATE:20240616\r\n" +
	"DTEND;VALUE=DATE:20240618\r\n" +
	"SUMMARY:Eid al-Adha\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:offsite@test\r\n" +
	"DTSTAMP:20240101T000000Z\r\n" +
	"DTSTART:20240603T080000Z\r\n" +
	"DTEND:20240603T100000Z\r\n" +
	"SUMMARY:Offsite\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:cancelled@test\r\n" +
	"DTSTAMP:20240101T000000Z\r\n" +
	"DTSTART;VALUE=DATE:20240604\r\n" +
	"STATUS:CANCELLED\r\n" +
	"SUMMARY:Dropped\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func dubai(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Dubai")
	if err != nil {
		t.Fatalf("LoadLocation error: %v", err)
	}
	return loc
}

func TestParseBlackouts(t *testing.T) {
	got, err := ParseBlackouts(strings.NewReader(holidayFeed), dubai(t))
	if err != nil {
		t.Fatalf("ParseBlackouts error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3: %+v", len(got), got)
	}

	for i, want := range []string{"2024-06-16", "2024-06-17"} {
		if got[i].Date.String() != want || !got[i].AllDay() || got[i].Summary != "Eid al-Adha" {
			t.Fatalf("blackout[%d] = %+v, want all day %s", i, got[i], want)
		}
	}

	offsite := got[2]
	if offsite.Date.String() != "2024-06-03" {
		t.Fatalf("offsite date = %s", offsite.Date)
	}
	if offsite.Slot.String() != "12:00-14:00" {
		t.Fatalf("offsite slot = %s, want 12:00-14:00", offsite.Slot)
	}
}

func TestSplitByDay(t *testing.T) {
	loc := dubai(t)
	start := time.Date(2024, 6, 3, 22, 0, 0, 0, loc)
	end := time.Date(2024, 6, 4, 9, 30, 0, 0, loc)

	got := splitByDay(start, end, "maintenance")
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Slot.String() != "22:00-24:00" || got[1].Slot.String() != "00:00-09:30" {
		t.Fatalf("slots = %s, %s", got[0].Slot, got[1].Slot)
	}
}

func TestFeed_CachesUntilTTL(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "text/calendar")
		_, _ = io.WriteString(w, holidayFeed)
	}))
	defer srv.Close()

	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	feed := NewFeed(srv.URL, dubai(t), time.Hour, srv.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	feed.now = func() time.Time { return now }
	ctx := context.Background()

	got, err := feed.Blackouts(ctx, domain.MustParseDate("2024-06-16"))
	if err != nil {
		t.Fatalf("Blackouts error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if _, err := feed.Blackouts(ctx, domain.MustParseDate("2024-06-01")); err != nil {
		t.Fatalf("Blackouts error: %v", err)
	}
	if hits.Load() != 1 {
		t.Fatalf("hits = %d, want 1", hits.Load())
	}

	now = now.Add(2 * time.Hour)
	if _, err := feed.Blackouts(ctx, domain.MustParseDate("2024-06-01")); err != nil {
		t.Fatalf("Blackouts error: %v", err)
	}
	if hits.Load() != 2 {
		t.Fatalf("hits = %d, want 2", hits.Load())
	}
}

func TestFeed_FailsOpenWithoutCopy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	feed := NewFeed(srv.URL, dubai(t), time.Hour, srv.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	got, err := feed.Blackouts(context.Background(), domain.MustParseDate("2024-06-16"))
	if err != nil {
		t.Fatalf("Blackouts error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestEncode(t *testing.T) {
	m := domain.Meeting{
		ID:       uuid.MustParse("00000000-0000-0000-0000-000000000001"),
		Name:     "Ada",
		Email:    "ada@example.com",
		Date:     domain.MustParseDate("2024-06-01"),
		Time:     domain.MustParseTimeOfDay("14:00"),
		Duration: 30,
		Status:   domain.MeetingStatusConfirmed,
	}

	var buf bytes.Buffer
	if err := Encode(&buf, m, dubai(t), time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"BEGIN:VEVENT",
		"UID:00000000-0000-0000-0000-000000000001@meetbook",
		"DTSTART:20240601T100000Z",
		"DTEND:20240601T103000Z",
		"STATUS:CONFIRMED",
		"mailto:ada@example.com",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}

	back, err := ParseBlackouts(strings.NewReader(out), dubai(t))
	if err != nil {
		t.Fatalf("ParseBlackouts of encoded output: %v", err)
	}
	if len(back) != 1 || back[0].Slot.String() != "14:00-14:30" {
		t.Fatalf("parsed back = %+v", back)
	}
}
