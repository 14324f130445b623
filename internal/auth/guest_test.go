package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/iliyamo/cabin-reservation/internal/model"
	"github.com/iliyamo/cabin-reservation/internal/repository"
)

// fakeGuestStore backs EnsureGuest tests with an in-memory guest table.
type fakeGuestStore struct {
	guests    map[string]model.Guest
	nextID    uint64
	createErr error
	creates   int
}

func newFakeGuestStore() *fakeGuestStore {
	return &fakeGuestStore{guests: make(map[string]model.Guest), nextID: 1}
}

func (s *fakeGuestStore) GetByEmail(_ context.Context, email string) (model.Guest, error) {
	g, ok := s.guests[email]
	if !ok {
		return model.Guest{}, repository.ErrGuestNotFound
	}
	return g, nil
}

func (s *fakeGuestStore) Create(_ context.Context, g model.Guest) (uint64, error) {
	s.creates++
	if s.createErr != nil {
		return 0, s.createErr
	}
	if _, exists := s.guests[g.Email]; exists {
		return 0, repository.ErrGuestEmailExists
	}
	g.ID = s.nextID
	s.nextID++
	s.guests[g.Email] = g
	return g.ID, nil
}

func TestEnsureGuestCreatesOnFirstSignIn(t *testing.T) {
	store := newFakeGuestStore()
	p := Profile{Email: "jo@example.com", Name: "Jo Smith"}

	g, err := EnsureGuest(context.Background(), store, p)
	if err != nil {
		t.Fatalf("EnsureGuest: %v", err)
	}
	if g.ID == 0 {
		t.Fatal("created guest has no id")
	}
	if g.Email != p.Email || g.FullName != p.Name {
		t.Fatalf("guest = %+v, want email %q and name %q", g, p.Email, p.Name)
	}
	if g.Nationality != "" || g.NationalID != "" || g.CountryFlag != "" {
		t.Fatalf("fresh guest has non-empty profile fields: %+v", g)
	}
}

func TestEnsureGuestIsIdempotent(t *testing.T) {
	store := newFakeGuestStore()
	p := Profile{Email: "jo@example.com", Name: "Jo Smith"}

	first, err := EnsureGuest(context.Background(), store, p)
	if err != nil {
		t.Fatalf("first EnsureGuest: %v", err)
	}
	second, err := EnsureGuest(context.Background(), store, p)
	if err != nil {
		t.Fatalf("second EnsureGuest: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("second sign-in id = %d, want %d", second.ID, first.ID)
	}
	if store.creates != 1 {
		t.Fatalf("creates = %d, want 1", store.creates)
	}
}

func TestEnsureGuestLosingCreateRaceReReads(t *testing.T) {
	store := newFakeGuestStore()
	winner := model.Guest{ID: 7, Email: "jo@example.com", FullName: "Jo Smith"}

	// First lookup misses, then the concurrent winner's row appears.
	store.createErr = repository.ErrGuestEmailExists
	raceStore := &raceGuestStore{inner: store, winner: winner}

	g, err := EnsureGuest(context.Background(), raceStore, Profile{Email: winner.Email, Name: winner.FullName})
	if err != nil {
		t.Fatalf("EnsureGuest: %v", err)
	}
	if g.ID != winner.ID {
		t.Fatalf("guest id = %d, want the winner's %d", g.ID, winner.ID)
	}
}

// raceGuestStore misses the first lookup and serves the winner's row on
// the re-read after Create loses the race.
type raceGuestStore struct {
	inner   *fakeGuestStore
	winner  model.Guest
	lookups int
}

func (s *raceGuestStore) GetByEmail(ctx context.Context, email string) (model.Guest, error) {
	s.lookups++
	if s.lookups == 1 {
		return model.Guest{}, repository.ErrGuestNotFound
	}
	return s.winner, nil
}

func (s *raceGuestStore) Create(ctx context.Context, g model.Guest) (uint64, error) {
	return s.inner.Create(ctx, g)
}

func TestEnsureGuestPropagatesCreateFailure(t *testing.T) {
	store := newFakeGuestStore()
	store.createErr = errors.New("connection lost")

	_, err := EnsureGuest(context.Background(), store, Profile{Email: "jo@example.com"})
	if err == nil {
		t.Fatal("expected error from failing create")
	}
}
