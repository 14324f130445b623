package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/cabin-reservation/internal/model"
)

// CabinRepo provides read access to the 'cabins' table. Cabins are
// never mutated through the public API.
type CabinRepo struct{ DB *sql.DB }

func NewCabinRepo(db *sql.DB) *CabinRepo { return &CabinRepo{DB: db} }

// GetByID fetches a single cabin. Returns ErrCabinNotFound when the id
// matches no row.
func (r *CabinRepo) GetByID(ctx context.Context, id uint64) (model.Cabin, error) {
	var c model.Cabin
	var desc sql.NullString
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,max_capacity,regular_price,discount,image,description FROM cabins WHERE id=? LIMIT 1",
		id).Scan(&c.ID, &c.Name, &c.MaxCapacity, &c.RegularPrice, &c.Discount, &c.Image, &desc)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Cabin{}, ErrCabinNotFound
	}
	if err != nil {
		return model.Cabin{}, err
	}
	c.Description = desc.String
	return c, nil
}

// GetPrice fetches only the pricing columns of a cabin.
func (r *CabinRepo) GetPrice(ctx context.Context, id uint64) (model.CabinPrice, error) {
	var p model.CabinPrice
	err := r.DB.QueryRowContext(ctx,
		"SELECT regular_price,discount FROM cabins WHERE id=? LIMIT 1",
		id).Scan(&p.RegularPrice, &p.Discount)
	if errors.Is(err, sql.ErrNoRows) {
		return model.CabinPrice{}, ErrCabinNotFound
	}
	return p, err
}

// List returns all cabins ordered by name. Capacity filtering happens in
// the handler, mirroring how the listing page narrows an already-loaded
// collection.
func (r *CabinRepo) List(ctx context.Context) ([]model.Cabin, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,name,max_capacity,regular_price,discount,image FROM cabins ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Cabin, 0)
	for rows.Next() {
		var c model.Cabin
		if err := rows.Scan(&c.ID, &c.Name, &c.MaxCapacity, &c.RegularPrice, &c.Discount, &c.Image); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
