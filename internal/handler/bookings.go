package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cabin-reservation/internal/model"
	"github.com/iliyamo/cabin-reservation/internal/queue"
	"github.com/iliyamo/cabin-reservation/internal/repository"
	"github.com/iliyamo/cabin-reservation/internal/selection"
	queue_publisher "github.com/iliyamo/cabin-reservation/internal/service"
)

// BookingHandler serves the authenticated reservation endpoints. All
// methods assume JWT middleware ran first; the guest identity always
// comes from the session claims, never from the request body.
type BookingHandler struct {
	Bookings *repository.BookingRepo
	Cabins   *repository.CabinRepo
	Settings *repository.SettingsRepo
}

// NewBookingHandler constructs a BookingHandler. All dependencies must
// be non-nil.
func NewBookingHandler(bookings *repository.BookingRepo, cabins *repository.CabinRepo, settings *repository.SettingsRepo) *BookingHandler {
	if bookings == nil || cabins == nil || settings == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: bookings, Cabins: cabins, Settings: settings}
}

// List handles GET /v1/account/bookings. It returns the guest's
// bookings ordered by start date; an empty list is a valid response.
func (h *BookingHandler) List(c echo.Context) error {
	guestID, err := getGuestID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items, err := h.Bookings.ListByGuest(c.Request().Context(), guestID)
	if err != nil {
		log.Printf("bookings: list for guest %d failed: %v", guestID, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "bookings could not be loaded"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Get handles GET /v1/account/bookings/:id, the read half of the edit
// flow. A booking owned by another guest yields 403.
func (h *BookingHandler) Get(c echo.Context) error {
	guestID, err := getGuestID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	b, err := h.Bookings.GetByIDForGuest(c.Request().Context(), id, guestID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrBookingNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}
		log.Printf("bookings: get %d failed: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking could not be loaded"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": b})
}

type createBookingReq struct {
	CabinID      uint64 `json:"cabin_id"`
	StartDate    string `json:"start_date"` // RFC3339 or YYYY-MM-DD
	EndDate      string `json:"end_date"`
	NumGuests    int    `json:"num_guests"`
	Observations string `json:"observations"`
}

// Create handles POST /v1/account/bookings. The server recomputes the
// night count and total price from the cabin's current prices; the
// price is fixed here and never recomputed for the life of the booking.
// Unset or malformed dates are rejected outright rather than persisted
// as empty strings.
func (h *BookingHandler) Create(c echo.Context) error {
	guestID, err := getGuestID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.CabinID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cabin_id is required"})
	}
	if req.StartDate == "" || req.EndDate == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start and end dates are required"})
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid start date"})
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid end date"})
	}
	r := selection.NewRange(start, end)
	nights := r.Nights()
	if nights <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "end date must be after start date"})
	}

	ctx := c.Request().Context()
	cab, err := h.Cabins.GetByID(ctx, req.CabinID)
	if err != nil {
		if errors.Is(err, repository.ErrCabinNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "cabin not found"})
		}
		log.Printf("cabins: get %d failed: %v", req.CabinID, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cabin could not be loaded"})
	}
	settings, err := h.Settings.Get(ctx)
	if err != nil {
		log.Printf("settings: load failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "settings could not be loaded"})
	}

	maxGuests := int(cab.MaxCapacity)
	if settings.MaxGuestsPerBooking < maxGuests {
		maxGuests = settings.MaxGuestsPerBooking
	}
	if req.NumGuests < 1 || req.NumGuests > maxGuests {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid number of guests"})
	}
	minNights := settings.MinBookingLength - 3
	if minNights < 1 {
		minNights = 1
	}
	if nights < minNights || nights > settings.MaxBookingLength {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "stay length out of bounds"})
	}

	// Last selection-time staleness check. A concurrent booking can still
	// slip in between this read and the insert; the unique constraints on
	// the backend remain the final arbiter.
	booked, err := h.Bookings.BookedDatesByCabin(ctx, req.CabinID, time.Now())
	if err != nil {
		log.Printf("bookings: booked dates for cabin %d failed: %v", req.CabinID, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "bookings could not be loaded"})
	}
	if r.OverlapsAny(booked) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "selected dates are no longer available"})
	}

	b := model.Booking{
		StartDate:    *r.From,
		EndDate:      *r.To,
		NumNights:    nights,
		NumGuests:    req.NumGuests,
		TotalPrice:   selection.TotalPrice(nights, cab.RegularPrice, cab.Discount),
		GuestID:      guestID,
		CabinID:      cab.ID,
		Observations: req.Observations,
		Status:       model.BookingUnconfirmed,
	}
	created, err := h.Bookings.Create(ctx, b)
	if err != nil {
		log.Printf("bookings: create failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking could not be created"})
	}

	_ = queue_publisher.PublishBookingEvent(ctx, bookingEvent(queue.EventBookingCreated, created))

	return c.JSON(http.StatusCreated, echo.Map{"item": created})
}

type updateBookingReq struct {
	NumGuests    int    `json:"num_guests"`
	Observations string `json:"observations"`
}

// Update handles PATCH /v1/account/bookings/:id. Only the party size
// and observations are guest-editable; dates and pricing are fixed at
// submission time.
func (h *BookingHandler) Update(c echo.Context) error {
	guestID, err := getGuestID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	var req updateBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx := c.Request().Context()
	existing, err := h.Bookings.GetByIDForGuest(ctx, id, guestID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrBookingNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}
		log.Printf("bookings: get %d failed: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking could not be loaded"})
	}

	cab, err := h.Cabins.GetByID(ctx, existing.CabinID)
	if err != nil {
		log.Printf("cabins: get %d failed: %v", existing.CabinID, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cabin could not be loaded"})
	}
	if req.NumGuests < 1 || req.NumGuests > int(cab.MaxCapacity) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid number of guests"})
	}

	updated, err := h.Bookings.UpdateForGuest(ctx, id, guestID, req.NumGuests, req.Observations)
	if err != nil {
		log.Printf("bookings: update %d failed: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking could not be updated"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": updated})
}

// Delete handles DELETE /v1/account/bookings/:id, the authoritative
// half of the optimistic cancellation flow. The client hides the row
// first; a non-2xx answer here tells it to roll the removal back.
func (h *BookingHandler) Delete(c echo.Context) error {
	guestID, err := getGuestID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	ctx := c.Request().Context()
	existing, err := h.Bookings.GetByIDForGuest(ctx, id, guestID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrBookingNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}
		log.Printf("bookings: get %d failed: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking could not be loaded"})
	}
	if err := h.Bookings.DeleteForGuest(ctx, id, guestID); err != nil {
		log.Printf("bookings: delete %d failed: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking could not be deleted"})
	}

	_ = queue_publisher.PublishBookingEvent(ctx, bookingEvent(queue.EventBookingCancelled, existing))

	return c.NoContent(http.StatusNoContent)
}

func bookingEvent(typ string, b model.Booking) queue.BookingEvent {
	return queue.BookingEvent{
		Type:       typ,
		BookingID:  b.ID,
		GuestID:    b.GuestID,
		CabinID:    b.CabinID,
		CabinName:  b.Cabin.Name,
		StartDate:  b.StartDate.Format("2006-01-02"),
		EndDate:    b.EndDate.Format("2006-01-02"),
		NumNights:  b.NumNights,
		NumGuests:  b.NumGuests,
		TotalPrice: b.TotalPrice,
	}
}
