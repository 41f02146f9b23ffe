package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:30", want: 570},
		{in: "14:15", want: 855},
		{in: "23:59", want: 1439},
		{in: "24:00", wantErr: true},
		{in: "9:30", wantErr: true},
		{in: "14:60", wantErr: true},
		{in: "", wantErr: true},
		{in: "14:30:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTime) {
					t.Fatalf("err = %v, want %v", err, ErrInvalidTime)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTimeOfDay error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ParseTimeOfDay(%q) = %d, want %d", tt.in, got, tt.want)
			}
			if got.String() != tt.in {
				t.Fatalf("String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
}

func TestSlotOverlapsIsHalfOpen(t *testing.T) {
	a := NewSlot(MustParseTimeOfDay("14:00"), 30)

	tests := []struct {
		name string
		b    Slot
		want bool
	}{
		{name: "same slot", b: NewSlot(MustParseTimeOfDay("14:00"), 30), want: true},
		{name: "partial overlap", b: NewSlot(MustParseTimeOfDay("14:15"), 30), want: true},
		{name: "contained", b: NewSlot(MustParseTimeOfDay("14:10"), 5), want: true},
		{name: "adjacent after", b: NewSlot(MustParseTimeOfDay("14:30"), 30), want: false},
		{name: "adjacent before", b: NewSlot(MustParseTimeOfDay("13:30"), 30), want: false},
		{name: "disjoint", b: NewSlot(MustParseTimeOfDay("16:00"), 60), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Fatalf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(a); got != tt.want {
				t.Fatalf("Overlaps (reversed) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDateAtUsesBusinessZone(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Dubai")
	if err != nil {
		t.Fatalf("LoadLocation error: %v", err)
	}

	d := MustParseDate("2024-06-01")
	got := d.At(MustParseTimeOfDay("14:00"), loc).UTC()
	want := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("At = %v, want %v", got, want)
	}
	if d.Weekday() != time.Saturday {
		t.Fatalf("Weekday = %v, want Saturday", d.Weekday())
	}
	if next := d.AddDays(30); next.String() != "2024-07-01" {
		t.Fatalf("AddDays = %s, want 2024-07-01", next)
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Scan(time) error: %v", err)
	}
	if d.String() != "2024-06-01" {
		t.Fatalf("date = %s, want 2024-06-01", d)
	}
	if err := d.Scan("2024-07-15T00:00:00Z"); err != nil {
		t.Fatalf("Scan(string) error: %v", err)
	}
	if d.String() != "2024-07-15" {
		t.Fatalf("date = %s, want 2024-07-15", d)
	}
	if err := d.Scan(42); err == nil {
		t.Fatalf("expected error scanning int")
	}
}
