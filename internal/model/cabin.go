package model

// Cabin represents a bookable unit as stored in the `cabins` table.
// Cabins are immutable from the guest's point of view; pricing and
// capacity are managed out of band.  The json tags match the public
// API responses returned by the browse endpoints.
//
// Fields:
//  ID           – primary key identifier of the cabin.
//  Name         – short display name (e.g. "001").
//  MaxCapacity  – maximum number of guests allowed per booking.
//  RegularPrice – nightly price before discount, in whole currency units.
//  Discount     – discount applied per night; zero when no offer runs.
//  Image        – reference to the cabin photo.
//  Description  – optional free-text description shown on the detail page.
type Cabin struct {
	ID           uint64 `json:"id"`            // cabins.id
	Name         string `json:"name"`          // cabins.name
	MaxCapacity  uint8  `json:"max_capacity"`  // cabins.max_capacity
	RegularPrice int64  `json:"regular_price"` // cabins.regular_price
	Discount     int64  `json:"discount"`      // cabins.discount
	Image        string `json:"image"`         // cabins.image
	Description  string `json:"description"`   // cabins.description (may be empty)
}

// CabinPrice carries only the pricing columns of a cabin.  It is used by
// the quote and submission flows, which never need the full record.
type CabinPrice struct {
	RegularPrice int64 `json:"regular_price"`
	Discount     int64 `json:"discount"`
}
