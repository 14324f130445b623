package repository

import (
	"testing"
	"time"
)

func TestMidnightUTC(t *testing.T) {
	in := time.Date(2025, 7, 13, 22, 45, 9, 123, time.FixedZone("CEST", 2*3600))
	got := midnightUTC(in)
	want := time.Date(2025, 7, 13, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("midnightUTC(%v) = %v, want %v", in, got, want)
	}
}

func TestDaysOfInterval(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 7, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name       string
		start, end time.Time
		want       []time.Time
	}{
		{"multi-day", day(10), day(12), []time.Time{day(10), day(11), day(12)}},
		{"single day", day(10), day(10), []time.Time{day(10)}},
		{"inverted yields nothing", day(12), day(10), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := daysOfInterval(tt.start, tt.end)
			if len(got) != len(tt.want) {
				t.Fatalf("daysOfInterval() returned %d days, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if !got[i].Equal(tt.want[i]) {
					t.Fatalf("daysOfInterval()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDaysOfIntervalNormalizesTimestamps(t *testing.T) {
	start := time.Date(2025, 7, 10, 18, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 11, 6, 0, 0, 0, time.UTC)
	got := daysOfInterval(start, end)
	if len(got) != 2 {
		t.Fatalf("got %d days, want 2", len(got))
	}
	for _, d := range got {
		if !d.Equal(midnightUTC(d)) {
			t.Fatalf("day %v not normalized to midnight", d)
		}
	}
}
