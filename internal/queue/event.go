// Package queue defines message payloads exchanged over the message broker.
package queue

// Event types published to the booking.events queue.
const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
)

// BookingEvent is published after a booking mutation commits. It
// carries enough information for downstream consumers to log or notify
// without querying the primary database.
type BookingEvent struct {
	EventID    string `json:"event_id"` // unique per publish, for consumer de-duplication
	Type       string `json:"type"`
	BookingID  uint64 `json:"booking_id"`
	GuestID    uint64 `json:"guest_id"`
	CabinID    uint64 `json:"cabin_id"`
	CabinName  string `json:"cabin_name"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	NumNights  int    `json:"num_nights"`
	NumGuests  int    `json:"num_guests"`
	TotalPrice int64  `json:"total_price"`
	OccurredAt string `json:"occurred_at"`
}
