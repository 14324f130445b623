package selection

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	tests := []struct {
		name string
		r    Range
		want int
	}{
		{"two nights", NewRange(day(2025, 7, 13), day(2025, 7, 15)), 2},
		{"same day is zero", NewRange(day(2025, 7, 13), day(2025, 7, 13)), 0},
		{"normalizes time of day", NewRange(
			time.Date(2025, 7, 13, 23, 59, 0, 0, time.UTC),
			time.Date(2025, 7, 15, 0, 1, 0, 0, time.UTC)), 2},
		{"incomplete range", Range{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Nights(); got != tt.want {
				t.Fatalf("Nights() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNightsPartialRange(t *testing.T) {
	from := day(2025, 7, 13)
	r := Range{From: &from}
	if got := r.Nights(); got != 0 {
		t.Fatalf("Nights() with only From = %d, want 0", got)
	}
}

func TestOverlapsAny(t *testing.T) {
	booked := []time.Time{day(2025, 7, 10)}
	tests := []struct {
		name string
		r    Range
		want bool
	}{
		{"booked day inside", NewRange(day(2025, 7, 9), day(2025, 7, 12)), true},
		{"booked day at start", NewRange(day(2025, 7, 10), day(2025, 7, 12)), true},
		{"booked day at end", NewRange(day(2025, 7, 8), day(2025, 7, 10)), true},
		{"clear of booked day", NewRange(day(2025, 7, 13), day(2025, 7, 15)), false},
		{"before booked day", NewRange(day(2025, 7, 7), day(2025, 7, 9)), false},
		{"incomplete never overlaps", Range{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.OverlapsAny(booked); got != tt.want {
				t.Fatalf("OverlapsAny() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTotalPrice(t *testing.T) {
	tests := []struct {
		name                       string
		nights                     int
		regular, discount, want int64
	}{
		{"with discount", 2, 200, 20, 360},
		{"no discount", 3, 150, 0, 450},
		{"zero nights", 0, 200, 20, 0},
		{"discount exceeds price clamps to zero", 4, 100, 150, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalPrice(tt.nights, tt.regular, tt.discount); got != tt.want {
				t.Fatalf("TotalPrice(%d, %d, %d) = %d, want %d",
					tt.nights, tt.regular, tt.discount, got, tt.want)
			}
		})
	}
}

func TestDisplayForcesResetOnOverlap(t *testing.T) {
	booked := []time.Time{day(2025, 7, 10)}

	sel := New()
	sel.Set(NewRange(day(2025, 7, 9), day(2025, 7, 12)))

	r, forced := sel.Display(booked)
	if !forced {
		t.Fatal("expected forced reset for a range covering a booked day")
	}
	if !r.Empty() {
		t.Fatalf("displayed range not empty: %+v", r)
	}
}

func TestDisplayKeepsCleanRange(t *testing.T) {
	booked := []time.Time{day(2025, 7, 10)}

	sel := New()
	sel.Set(NewRange(day(2025, 7, 13), day(2025, 7, 15)))

	r, forced := sel.Display(booked)
	if forced {
		t.Fatal("unexpected forced reset for a clean range")
	}
	if got := r.Nights(); got != 2 {
		t.Fatalf("Nights() = %d, want 2", got)
	}
	if got := TotalPrice(r.Nights(), 200, 20); got != 360 {
		t.Fatalf("total = %d, want 360", got)
	}
}

func TestCalendarBounds(t *testing.T) {
	now := time.Date(2025, 7, 1, 14, 30, 0, 0, time.UTC)
	b := CalendarBounds(7, 23, now)

	if b.MinSpan != 4 {
		t.Fatalf("MinSpan = %d, want 4", b.MinSpan)
	}
	if b.MaxSpan != 23 {
		t.Fatalf("MaxSpan = %d, want 23", b.MaxSpan)
	}
	if !b.Start.Equal(day(2025, 7, 1)) {
		t.Fatalf("Start = %v, want 2025-07-01", b.Start)
	}
	if !b.End.Equal(day(2025, 12, 31)) {
		t.Fatalf("End = %v, want 2025-12-31", b.End)
	}
}

func TestCalendarBoundsClampsMinSpan(t *testing.T) {
	b := CalendarBounds(2, 10, day(2025, 7, 1))
	if b.MinSpan != 0 {
		t.Fatalf("MinSpan = %d, want 0", b.MinSpan)
	}
}

func TestDisabledDay(t *testing.T) {
	now := day(2025, 7, 5)
	booked := []time.Time{day(2025, 7, 10)}

	tests := []struct {
		name string
		d    time.Time
		want bool
	}{
		{"past day", day(2025, 7, 4), true},
		{"today", day(2025, 7, 5), false},
		{"booked day", day(2025, 7, 10), true},
		{"free future day", day(2025, 7, 11), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisabledDay(tt.d, booked, now); got != tt.want {
				t.Fatalf("DisabledDay(%v) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}
