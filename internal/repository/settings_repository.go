package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/cabin-reservation/internal/model"
)

// SettingsRepo reads the singleton 'settings' row.
type SettingsRepo struct{ DB *sql.DB }

func NewSettingsRepo(db *sql.DB) *SettingsRepo { return &SettingsRepo{DB: db} }

// Get loads the settings row. The table always holds exactly one row,
// seeded with the migrations; a missing row is a deployment error and is
// surfaced as-is.
func (r *SettingsRepo) Get(ctx context.Context) (model.Settings, error) {
	var s model.Settings
	err := r.DB.QueryRowContext(ctx,
		"SELECT min_booking_length,max_booking_length,max_guests_per_booking,breakfast_price FROM settings LIMIT 1").
		Scan(&s.MinBookingLength, &s.MaxBookingLength, &s.MaxGuestsPerBooking, &s.BreakfastPrice)
	return s, err
}
