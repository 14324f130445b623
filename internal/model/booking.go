package model

import "time"

// Booking statuses as stored in bookings.status.
const (
	BookingUnconfirmed = "unconfirmed"
	BookingCheckedIn   = "checked-in"
	BookingCheckedOut  = "checked-out"
)

// Booking records a guest's reserved date range for a single cabin.
// The price is fixed at submission time and never recomputed, so the
// record also carries a denormalized snapshot of the cabin for display
// (name, image and the prices that were in effect).
//
// Fields:
//  ID           – primary key identifier.
//  CreatedAt    – creation timestamp.
//  StartDate    – first night of the stay (UTC midnight).
//  EndDate      – day of departure (UTC midnight); always after StartDate.
//  NumNights    – whole-day difference between EndDate and StartDate.
//  NumGuests    – party size fixed at submission time.
//  TotalPrice   – NumNights × (RegularPrice − Discount) at booking time.
//  GuestID      – guest who owns the booking.
//  CabinID      – cabin being reserved.
//  Observations – free-text notes from the guest.
//  Status       – unconfirmed, checked-in or checked-out.
//  Cabin        – denormalized cabin snapshot joined in list/detail reads.
type Booking struct {
	ID           uint64        `json:"id"`           // bookings.id
	CreatedAt    time.Time     `json:"created_at"`   // bookings.created_at
	StartDate    time.Time     `json:"start_date"`   // bookings.start_date
	EndDate      time.Time     `json:"end_date"`     // bookings.end_date
	NumNights    int           `json:"num_nights"`   // bookings.num_nights
	NumGuests    int           `json:"num_guests"`   // bookings.num_guests
	TotalPrice   int64         `json:"total_price"`  // bookings.total_price
	GuestID      uint64        `json:"guest_id"`     // bookings.guest_id
	CabinID      uint64        `json:"cabin_id"`     // bookings.cabin_id
	Observations string        `json:"observations"` // bookings.observations
	Status       string        `json:"status"`       // bookings.status
	Cabin        CabinSnapshot `json:"cabin"`        // joined from cabins
}

// CabinSnapshot is the subset of cabin columns denormalized onto booking
// reads so reservation cards render without a second lookup.
type CabinSnapshot struct {
	Name         string `json:"name"`
	Image        string `json:"image"`
	RegularPrice int64  `json:"regular_price"`
	Discount     int64  `json:"discount"`
}
