package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/cabin-reservation/internal/model"
)

// GuestRepo provides access to the 'guests' table. Email is the natural
// key: the sign-in flow looks guests up by email and creates them on
// first contact, so GetByEmail and Create together must stay idempotent.
type GuestRepo struct{ DB *sql.DB }

func NewGuestRepo(db *sql.DB) *GuestRepo { return &GuestRepo{DB: db} }

var ErrGuestEmailExists = errors.New("guest email already exists")

// GetByEmail fetches a guest by normalized email. Returns
// ErrGuestNotFound when no guest has signed in with that address yet.
func (r *GuestRepo) GetByEmail(ctx context.Context, email string) (model.Guest, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var g model.Guest
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,full_name,nationality,national_id,country_flag FROM guests WHERE email=? LIMIT 1",
		email).Scan(&g.ID, &g.Email, &g.FullName, &g.Nationality, &g.NationalID, &g.CountryFlag)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Guest{}, ErrGuestNotFound
	}
	return g, err
}

// GetByID fetches a guest by id.
func (r *GuestRepo) GetByID(ctx context.Context, id uint64) (model.Guest, error) {
	var g model.Guest
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,full_name,nationality,national_id,country_flag FROM guests WHERE id=? LIMIT 1",
		id).Scan(&g.ID, &g.Email, &g.FullName, &g.Nationality, &g.NationalID, &g.CountryFlag)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Guest{}, ErrGuestNotFound
	}
	return g, err
}

// Create inserts a guest and returns its ID. The unique index on email
// guards against two concurrent first sign-ins creating duplicates; the
// loser of that race gets ErrGuestEmailExists and should re-read.
func (r *GuestRepo) Create(ctx context.Context, g model.Guest) (uint64, error) {
	email := strings.ToLower(strings.TrimSpace(g.Email))
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO guests (email, full_name, nationality, national_id, country_flag) VALUES (?,?,?,?,?)",
		email, g.FullName, g.Nationality, g.NationalID, g.CountryFlag)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrGuestEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Update writes the mutable profile fields of a guest.
func (r *GuestRepo) Update(ctx context.Context, id uint64, fullName, nationality, nationalID, countryFlag string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE guests SET full_name=?, nationality=?, national_id=?, country_flag=? WHERE id=?",
		fullName, nationality, nationalID, countryFlag, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// Zero rows can also mean a no-op update; verify existence so the
		// caller gets a real 404 instead of a silent success.
		var exists uint64
		if err := r.DB.QueryRowContext(ctx, "SELECT id FROM guests WHERE id=? LIMIT 1", id).Scan(&exists); errors.Is(err, sql.ErrNoRows) {
			return ErrGuestNotFound
		}
	}
	return nil
}
