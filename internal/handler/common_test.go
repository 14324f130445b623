package handler

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{"bare day", "2025-07-13", time.Date(2025, 7, 13, 0, 0, 0, 0, time.UTC), false},
		{"rfc3339", "2025-07-13T10:30:00Z", time.Date(2025, 7, 13, 10, 30, 0, 0, time.UTC), false},
		{"padded", "  2025-07-13 ", time.Date(2025, 7, 13, 0, 0, 0, 0, time.UTC), false},
		{"garbage", "13/07/2025", time.Time{}, true},
		{"empty", "", time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDate(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseDate(%q) expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDate(%q) error: %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("parseDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncateWords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short text untouched", "cozy cabin in the woods", 10, "cozy cabin in the woods"},
		{"exactly n words untouched", "one two three", 3, "one two three"},
		{"cut with ellipsis", "one two three four", 3, "one two three..."},
		{"empty", "", 5, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateWords(tt.in, tt.n); got != tt.want {
				t.Fatalf("truncateWords(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
		})
	}
}
