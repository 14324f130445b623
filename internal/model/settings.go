package model

// Settings is the singleton configuration row read by the booking flows.
// It is read-only from the client's perspective.
//
// Fields:
//  MinBookingLength    – shortest allowed stay in nights.
//  MaxBookingLength    – longest allowed stay in nights.
//  MaxGuestsPerBooking – upper bound on party size across all cabins.
//  BreakfastPrice      – per-guest breakfast price in whole currency units.
type Settings struct {
	MinBookingLength    int   `json:"min_booking_length"`     // settings.min_booking_length
	MaxBookingLength    int   `json:"max_booking_length"`     // settings.max_booking_length
	MaxGuestsPerBooking int   `json:"max_guests_per_booking"` // settings.max_guests_per_booking
	BreakfastPrice      int64 `json:"breakfast_price"`        // settings.breakfast_price
}
