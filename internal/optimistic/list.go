// Package optimistic provides the locally-derived view a reservation
// list renders while authoritative deletes are still in flight. The
// view is always a pure filter of the last-known authoritative snapshot
// plus the set of pending removals: it never fabricates or reorders
// entries, and a failed delete can be rolled back so the entry
// reappears in its original position.
package optimistic

import "github.com/iliyamo/cabin-reservation/internal/model"

// List projects (authoritative snapshot, pending removals) into the
// booking list shown to the guest. It is owned by a single page
// controller and is not safe for concurrent use.
type List struct {
	snapshot []model.Booking
	removed  map[uint64]struct{}
}

// NewList builds a view over an authoritative booking list. The slice
// is copied so later refreshes cannot alias caller state.
func NewList(bookings []model.Booking) *List {
	snap := make([]model.Booking, len(bookings))
	copy(snap, bookings)
	return &List{snapshot: snap, removed: make(map[uint64]struct{})}
}

// Items returns the visible bookings: the snapshot minus pending
// removals, in snapshot order.
func (l *List) Items() []model.Booking {
	out := make([]model.Booking, 0, len(l.snapshot))
	for _, b := range l.snapshot {
		if _, gone := l.removed[b.ID]; !gone {
			out = append(out, b)
		}
	}
	return out
}

// Remove hides the booking with the given id immediately, before the
// authoritative delete resolves. It reports whether the id was visible.
func (l *List) Remove(id uint64) bool {
	for _, b := range l.snapshot {
		if b.ID == id {
			if _, gone := l.removed[id]; gone {
				return false
			}
			l.removed[id] = struct{}{}
			return true
		}
	}
	return false
}

// Confirm makes a pending removal permanent once the authoritative
// delete succeeded.
func (l *List) Confirm(id uint64) {
	if _, gone := l.removed[id]; !gone {
		return
	}
	delete(l.removed, id)
	kept := l.snapshot[:0]
	for _, b := range l.snapshot {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	l.snapshot = kept
}

// Rollback cancels a pending removal after a failed delete. The entry
// reappears at its original position because the snapshot was never
// touched. It returns the restored booking so the caller can surface an
// error next to it, and false when no removal was pending.
func (l *List) Rollback(id uint64) (model.Booking, bool) {
	if _, gone := l.removed[id]; !gone {
		return model.Booking{}, false
	}
	delete(l.removed, id)
	for _, b := range l.snapshot {
		if b.ID == id {
			return b, true
		}
	}
	return model.Booking{}, false
}

// Refresh replaces the snapshot with a fresh authoritative list.
// Pending removals are kept only while they still reference a row in
// the new snapshot, so the view converges to authoritative state.
func (l *List) Refresh(bookings []model.Booking) {
	snap := make([]model.Booking, len(bookings))
	copy(snap, bookings)
	l.snapshot = snap
	present := make(map[uint64]struct{}, len(snap))
	for _, b := range snap {
		present[b.ID] = struct{}{}
	}
	for id := range l.removed {
		if _, ok := present[id]; !ok {
			delete(l.removed, id)
		}
	}
}
