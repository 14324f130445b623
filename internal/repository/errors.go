// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrForbidden indicates that the current guest is trying to
// touch a booking owned by someone else, while the not-found values
// signal that a point lookup matched no row.
package repository

import "errors"

// ErrCabinNotFound is returned when a cabin lookup matches no row.
// Handlers translate this into an HTTP 404 response.
var ErrCabinNotFound = errors.New("cabin not found")

// ErrBookingNotFound is returned when a booking lookup matches no row.
// Handlers translate this into an HTTP 404 response.
var ErrBookingNotFound = errors.New("booking not found")

// ErrGuestNotFound is returned when a guest lookup by email or id
// matches no row. The sign-in flow treats this as "create the guest";
// everywhere else it becomes an HTTP 404.
var ErrGuestNotFound = errors.New("guest not found")

// ErrForbidden is returned when the caller attempts an operation on a
// booking they do not own. Handlers should translate this into an
// HTTP 403 response.
var ErrForbidden = errors.New("forbidden")
