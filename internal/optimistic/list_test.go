package optimistic

import (
	"testing"

	"github.com/iliyamo/cabin-reservation/internal/model"
)

func bookings(ids ...uint64) []model.Booking {
	out := make([]model.Booking, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.Booking{ID: id})
	}
	return out
}

func ids(bs []model.Booking) []uint64 {
	out := make([]uint64, 0, len(bs))
	for _, b := range bs {
		out = append(out, b.ID)
	}
	return out
}

func assertIDs(t *testing.T, got []model.Booking, want ...uint64) {
	t.Helper()
	g := ids(got)
	if len(g) != len(want) {
		t.Fatalf("got %v, want %v", g, want)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("got %v, want %v", g, want)
		}
	}
}

func TestRemoveHidesEntryKeepingOrder(t *testing.T) {
	l := NewList(bookings(41, 42, 43))

	if !l.Remove(42) {
		t.Fatal("Remove(42) = false, want true")
	}
	assertIDs(t, l.Items(), 41, 43)
}

func TestRemoveUnknownID(t *testing.T) {
	l := NewList(bookings(41, 42, 43))

	if l.Remove(99) {
		t.Fatal("Remove(99) = true, want false")
	}
	assertIDs(t, l.Items(), 41, 42, 43)
}

func TestRemoveTwice(t *testing.T) {
	l := NewList(bookings(41, 42, 43))

	l.Remove(42)
	if l.Remove(42) {
		t.Fatal("second Remove(42) = true, want false")
	}
}

func TestRollbackRestoresOriginalPosition(t *testing.T) {
	l := NewList(bookings(41, 42, 43))
	l.Remove(42)

	b, ok := l.Rollback(42)
	if !ok {
		t.Fatal("Rollback(42) = false, want true")
	}
	if b.ID != 42 {
		t.Fatalf("restored booking id = %d, want 42", b.ID)
	}
	assertIDs(t, l.Items(), 41, 42, 43)
}

func TestRollbackWithoutPendingRemoval(t *testing.T) {
	l := NewList(bookings(41, 42, 43))

	if _, ok := l.Rollback(42); ok {
		t.Fatal("Rollback without pending removal = true, want false")
	}
}

func TestConfirmMakesRemovalPermanent(t *testing.T) {
	l := NewList(bookings(41, 42, 43))
	l.Remove(42)
	l.Confirm(42)

	assertIDs(t, l.Items(), 41, 43)
	if _, ok := l.Rollback(42); ok {
		t.Fatal("Rollback after Confirm = true, want false")
	}
}

func TestNewListCopiesInput(t *testing.T) {
	src := bookings(41, 42)
	l := NewList(src)
	src[0].ID = 99

	assertIDs(t, l.Items(), 41, 42)
}

func TestRefreshConvergesToAuthoritative(t *testing.T) {
	l := NewList(bookings(41, 42, 43))
	l.Remove(42)
	l.Remove(43)

	// Server view: 42 really deleted, 43 still there, 44 is new.
	l.Refresh(bookings(41, 43, 44))

	assertIDs(t, l.Items(), 41, 44)

	// 43's removal is still pending and can be rolled back.
	if _, ok := l.Rollback(43); !ok {
		t.Fatal("Rollback(43) after refresh = false, want true")
	}
	assertIDs(t, l.Items(), 41, 43, 44)

	// 42 is gone from the snapshot, so its removal was dropped.
	if _, ok := l.Rollback(42); ok {
		t.Fatal("Rollback(42) after refresh = true, want false")
	}
}
