package auth

import (
	"context"
	"errors"

	"github.com/iliyamo/cabin-reservation/internal/model"
	"github.com/iliyamo/cabin-reservation/internal/repository"
)

// GuestStore is the slice of the guest repository the sign-in flow
// needs: lookup by email and lazy creation.
type GuestStore interface {
	GetByEmail(ctx context.Context, email string) (model.Guest, error)
	Create(ctx context.Context, g model.Guest) (uint64, error)
}

// EnsureGuest resolves the guest record for a signed-in profile,
// creating one with empty nationality/national-ID/flag fields on first
// contact. The operation is idempotent: a second sign-in with the same
// email finds the existing record, and losing a concurrent-creation
// race falls back to re-reading the winner's row.
func EnsureGuest(ctx context.Context, store GuestStore, p Profile) (model.Guest, error) {
	g, err := store.GetByEmail(ctx, p.Email)
	if err == nil {
		return g, nil
	}
	if !errors.Is(err, repository.ErrGuestNotFound) {
		return model.Guest{}, err
	}
	fresh := model.Guest{Email: p.Email, FullName: p.Name}
	id, err := store.Create(ctx, fresh)
	if err != nil {
		if errors.Is(err, repository.ErrGuestEmailExists) {
			return store.GetByEmail(ctx, p.Email)
		}
		return model.Guest{}, err
	}
	fresh.ID = id
	return fresh, nil
}
