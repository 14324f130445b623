package selection

import "time"

// Bounds describes what the date picker may offer: the allowed span of
// a stay in nights and the calendar window that is navigable at all.
type Bounds struct {
	MinSpan int       `json:"min_span"` // shortest selectable stay in nights
	MaxSpan int       `json:"max_span"` // longest selectable stay in nights
	Start   time.Time `json:"start"`    // first selectable day (today)
	End     time.Time `json:"end"`      // last selectable day (Dec 31 of the current year)
}

// CalendarBounds derives picker bounds from the booking-length settings.
// The minimum span is minBookingLength − 3 and the window runs from
// today through the end of the current calendar year. Both are UI
// constraints carried over from the booking page, not rules the
// storage layer enforces.
func CalendarBounds(minBookingLength, maxBookingLength int, now time.Time) Bounds {
	today := Day(now)
	minSpan := minBookingLength - 3
	if minSpan < 0 {
		minSpan = 0
	}
	return Bounds{
		MinSpan: minSpan,
		MaxSpan: maxBookingLength,
		Start:   today,
		End:     time.Date(today.Year(), time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

// DisabledDay reports whether a single calendar day must be greyed out:
// days strictly in the past and days that match a booked day exactly.
func DisabledDay(day time.Time, booked []time.Time, now time.Time) bool {
	d := Day(day)
	if d.Before(Day(now)) {
		return true
	}
	for _, b := range booked {
		if SameDay(b, d) {
			return true
		}
	}
	return false
}
