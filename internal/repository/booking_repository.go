package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/cabin-reservation/internal/model"
)

// BookingRepo provides access to the 'bookings' table. List and detail
// reads join the cabin snapshot columns so reservation cards render
// without a second lookup.
type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

const bookingColumns = `b.id, b.created_at, b.start_date, b.end_date, b.num_nights,
	b.num_guests, b.total_price, b.guest_id, b.cabin_id, b.observations, b.status,
	c.name, c.image, c.regular_price, c.discount`

func scanBooking(row interface{ Scan(...any) error }) (model.Booking, error) {
	var b model.Booking
	var obs sql.NullString
	err := row.Scan(&b.ID, &b.CreatedAt, &b.StartDate, &b.EndDate, &b.NumNights,
		&b.NumGuests, &b.TotalPrice, &b.GuestID, &b.CabinID, &obs, &b.Status,
		&b.Cabin.Name, &b.Cabin.Image, &b.Cabin.RegularPrice, &b.Cabin.Discount)
	b.Observations = obs.String
	return b, err
}

// GetByID fetches a single booking with its cabin snapshot. Returns
// ErrBookingNotFound when the id matches no row.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (model.Booking, error) {
	b, err := scanBooking(r.DB.QueryRowContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings b JOIN cabins c ON c.id=b.cabin_id WHERE b.id=? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, ErrBookingNotFound
	}
	return b, err
}

// GetByIDForGuest fetches a booking and enforces ownership. A row owned
// by a different guest yields ErrForbidden rather than not-found so the
// handler can answer 403.
func (r *BookingRepo) GetByIDForGuest(ctx context.Context, id, guestID uint64) (model.Booking, error) {
	b, err := r.GetByID(ctx, id)
	if err != nil {
		return model.Booking{}, err
	}
	if b.GuestID != guestID {
		return model.Booking{}, ErrForbidden
	}
	return b, nil
}

// ListByGuest returns all bookings of a guest ordered by start date.
func (r *BookingRepo) ListByGuest(ctx context.Context, guestID uint64) ([]model.Booking, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings b JOIN cabins c ON c.id=b.cabin_id WHERE b.guest_id=? ORDER BY b.start_date", guestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// BookedDatesByCabin returns every individual day that is unavailable for
// the cabin: days covered by bookings that either start today or later,
// or are currently checked in. Each booking interval is expanded to its
// inclusive day set, matching how the date picker greys out days.
func (r *BookingRepo) BookedDatesByCabin(ctx context.Context, cabinID uint64, now time.Time) ([]time.Time, error) {
	today := midnightUTC(now)
	rows, err := r.DB.QueryContext(ctx,
		"SELECT start_date, end_date FROM bookings WHERE cabin_id=? AND (start_date >= ? OR status=?)",
		cabinID, today, model.BookingCheckedIn)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]time.Time, 0)
	for rows.Next() {
		var start, end time.Time
		if err := rows.Scan(&start, &end); err != nil {
			return nil, err
		}
		out = append(out, daysOfInterval(start, end)...)
	}
	return out, rows.Err()
}

// Create inserts a booking and returns the persisted record including
// the generated id, timestamp and cabin snapshot.
func (r *BookingRepo) Create(ctx context.Context, b model.Booking) (model.Booking, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO bookings (start_date, end_date, num_nights, num_guests, total_price,
			guest_id, cabin_id, observations, status) VALUES (?,?,?,?,?,?,?,?,?)`,
		b.StartDate, b.EndDate, b.NumNights, b.NumGuests, b.TotalPrice,
		b.GuestID, b.CabinID, b.Observations, b.Status)
	if err != nil {
		return model.Booking{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Booking{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

// UpdateForGuest writes the guest-editable fields of a booking after an
// ownership check and returns the updated record.
func (r *BookingRepo) UpdateForGuest(ctx context.Context, id, guestID uint64, numGuests int, observations string) (model.Booking, error) {
	if _, err := r.GetByIDForGuest(ctx, id, guestID); err != nil {
		return model.Booking{}, err
	}
	_, err := r.DB.ExecContext(ctx,
		"UPDATE bookings SET num_guests=?, observations=? WHERE id=? AND guest_id=?",
		numGuests, observations, id, guestID)
	if err != nil {
		return model.Booking{}, err
	}
	return r.GetByID(ctx, id)
}

// DeleteForGuest removes a booking after an ownership check.
func (r *BookingRepo) DeleteForGuest(ctx context.Context, id, guestID uint64) error {
	if _, err := r.GetByIDForGuest(ctx, id, guestID); err != nil {
		return err
	}
	_, err := r.DB.ExecContext(ctx, "DELETE FROM bookings WHERE id=? AND guest_id=?", id, guestID)
	return err
}

// midnightUTC truncates a timestamp to the start of its UTC day.
func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysOfInterval expands [start, end] into the inclusive list of UTC
// days it covers. An inverted interval yields nothing.
func daysOfInterval(start, end time.Time) []time.Time {
	start, end = midnightUTC(start), midnightUTC(end)
	if end.Before(start) {
		return nil
	}
	days := make([]time.Time, 0, int(end.Sub(start).Hours()/24)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
