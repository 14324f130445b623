// Package selection implements the date-range selection rules for a
// single cabin page visit: night and price derivation, the
// already-booked exclusion policy and the calendar bounds offered to
// the date picker. Everything operates on UTC days; callers normalize
// incoming timestamps once and the package keeps them normalized.
package selection

import "time"

// Range is the ephemeral start/end pair a visitor is currently
// choosing. Either endpoint may be unset while the visitor is mid-pick.
// Invariant: when both are set, From is never after To.
type Range struct {
	From *time.Time `json:"from"`
	To   *time.Time `json:"to"`
}

// NewRange builds a complete range from two timestamps, normalized to
// UTC midnight.
func NewRange(from, to time.Time) Range {
	f, t := Day(from), Day(to)
	return Range{From: &f, To: &t}
}

// Complete reports whether both endpoints are set.
func (r Range) Complete() bool { return r.From != nil && r.To != nil }

// Empty reports whether neither endpoint is set.
func (r Range) Empty() bool { return r.From == nil && r.To == nil }

// Nights returns the whole-day difference between the endpoints, or 0
// when either endpoint is missing. A same-day range therefore counts as
// zero nights.
func (r Range) Nights() int {
	if !r.Complete() {
		return 0
	}
	return int(Day(*r.To).Sub(Day(*r.From)).Hours() / 24)
}

// OverlapsAny reports whether any of the given booked days falls inside
// the inclusive interval [From, To]. Incomplete ranges overlap nothing.
func (r Range) OverlapsAny(booked []time.Time) bool {
	if !r.Complete() {
		return false
	}
	from, to := Day(*r.From), Day(*r.To)
	for _, d := range booked {
		d = Day(d)
		if !d.Before(from) && !d.After(to) {
			return true
		}
	}
	return false
}

// TotalPrice returns nights × (regular − discount), never negative.
func TotalPrice(nights int, regular, discount int64) int64 {
	perNight := regular - discount
	if perNight < 0 {
		perNight = 0
	}
	if nights < 0 {
		return 0
	}
	return int64(nights) * perNight
}

// Day truncates a timestamp to the start of its UTC day.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two timestamps fall on the same UTC day.
func SameDay(a, b time.Time) bool { return Day(a).Equal(Day(b)) }
