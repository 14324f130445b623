package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cabin-reservation/internal/countries"
	"github.com/iliyamo/cabin-reservation/internal/model"
	"github.com/iliyamo/cabin-reservation/internal/repository"
	"github.com/iliyamo/cabin-reservation/internal/selection"
)

// Number of description words shown on cabin cards before truncation.
const cardDescriptionWords = 40

// PublicHandler serves the unauthenticated browse surface: cabin lists
// and details, booked dates, settings, the country lookup and the
// selection quote used by the booking page.
type PublicHandler struct {
	Cabins    *repository.CabinRepo
	Bookings  *repository.BookingRepo
	Settings  *repository.SettingsRepo
	Countries *countries.Client
}

// NewPublicHandler constructs a PublicHandler. All dependencies must be
// non-nil.
func NewPublicHandler(cabins *repository.CabinRepo, bookings *repository.BookingRepo, settings *repository.SettingsRepo, ctry *countries.Client) *PublicHandler {
	if cabins == nil || bookings == nil || settings == nil || ctry == nil {
		panic("nil dependency passed to NewPublicHandler")
	}
	return &PublicHandler{Cabins: cabins, Bookings: bookings, Settings: settings, Countries: ctry}
}

// filterCabins narrows an already-loaded cabin list by the capacity
// bands offered on the listing page.
func filterCabins(cabins []model.Cabin, filter string) ([]model.Cabin, error) {
	switch filter {
	case "", "all":
		return cabins, nil
	case "small": // 1–3 guests
		return keepCabins(cabins, func(c model.Cabin) bool { return c.MaxCapacity <= 3 }), nil
	case "medium": // 4–7 guests
		return keepCabins(cabins, func(c model.Cabin) bool { return c.MaxCapacity >= 4 && c.MaxCapacity <= 7 }), nil
	case "large": // 8–12 guests
		return keepCabins(cabins, func(c model.Cabin) bool { return c.MaxCapacity >= 8 && c.MaxCapacity <= 12 }), nil
	}
	return nil, errors.New("unknown capacity filter")
}

func keepCabins(cabins []model.Cabin, keep func(model.Cabin) bool) []model.Cabin {
	out := make([]model.Cabin, 0, len(cabins))
	for _, c := range cabins {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// ListCabins handles GET /v1/cabins?capacity=all|small|medium|large.
// An empty collection is a valid response; the client renders its own
// empty-state message.
func (h *PublicHandler) ListCabins(c echo.Context) error {
	all, err := h.Cabins.List(c.Request().Context())
	if err != nil {
		log.Printf("cabins: list failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cabins could not be loaded"})
	}
	filtered, err := filterCabins(all, c.QueryParam("capacity"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid capacity filter"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": filtered})
}

// GetCabin handles GET /v1/cabins/:id. The response carries the full
// description plus a card-sized excerpt.
func (h *PublicHandler) GetCabin(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid cabin id"})
	}
	cab, err := h.Cabins.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrCabinNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "cabin not found"})
		}
		log.Printf("cabins: get %d failed: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cabin could not be loaded"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"item":    cab,
		"excerpt": truncateWords(cab.Description, cardDescriptionWords),
	})
}

// BookedDates handles GET /v1/cabins/:id/booked-dates. It returns every
// unavailable day for the cabin so the date picker can grey them out.
func (h *PublicHandler) BookedDates(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid cabin id"})
	}
	ctx := c.Request().Context()
	if _, err := h.Cabins.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCabinNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "cabin not found"})
		}
		log.Printf("cabins: get %d failed: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cabin could not be loaded"})
	}
	dates, err := h.Bookings.BookedDatesByCabin(ctx, id, time.Now())
	if err != nil {
		log.Printf("bookings: booked dates for cabin %d failed: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "bookings could not be loaded"})
	}
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format("2006-01-02"))
	}
	return c.JSON(http.StatusOK, echo.Map{"dates": out})
}

// GetSettings handles GET /v1/settings.
func (h *PublicHandler) GetSettings(c echo.Context) error {
	s, err := h.Settings.Get(c.Request().Context())
	if err != nil {
		log.Printf("settings: load failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "settings could not be loaded"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": s})
}

// GetCountries handles GET /v1/countries, proxying the public lookup so
// the nationality selector has one origin to talk to.
func (h *PublicHandler) GetCountries(c echo.Context) error {
	list, err := h.Countries.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not fetch countries"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": list})
}

type quoteReq struct {
	From string `json:"from"` // RFC3339 or YYYY-MM-DD; empty = unset
	To   string `json:"to"`
}

// Quote handles POST /v1/cabins/:id/quote. It is the page controller
// for one selection round trip: the submitted range replaces the
// selection wholesale, the already-booked exclusion is applied, and the
// derived night count and total price come back together with the
// calendar bounds. When the range collides with a booked day both the
// displayed and the stored range are cleared, so the response is the
// single source of truth.
func (h *PublicHandler) Quote(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid cabin id"})
	}
	var req quoteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	var r selection.Range
	if req.From != "" {
		t, err := parseDate(req.From)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid from date"})
		}
		d := selection.Day(t)
		r.From = &d
	}
	if req.To != "" {
		t, err := parseDate(req.To)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid to date"})
		}
		d := selection.Day(t)
		r.To = &d
	}
	if r.Complete() && r.From.After(*r.To) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "range start after end"})
	}

	ctx := c.Request().Context()
	price, err := h.Cabins.GetPrice(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCabinNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "cabin not found"})
		}
		log.Printf("cabins: price for %d failed: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cabin could not be loaded"})
	}
	booked, err := h.Bookings.BookedDatesByCabin(ctx, id, time.Now())
	if err != nil {
		log.Printf("bookings: booked dates for cabin %d failed: %v", id, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "bookings could not be loaded"})
	}
	settings, err := h.Settings.Get(ctx)
	if err != nil {
		log.Printf("settings: load failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "settings could not be loaded"})
	}

	sel := selection.New()
	sel.Set(r)
	display, forced := sel.Display(booked)
	if forced {
		sel.Reset() // stored and displayed range must agree
	}
	nights := display.Nights()

	return c.JSON(http.StatusOK, echo.Map{
		"range":             display,
		"forced_reset":      forced,
		"nights":            nights,
		"price_per_night":   price.RegularPrice - price.Discount,
		"total_price":       selection.TotalPrice(nights, price.RegularPrice, price.Discount),
		"reserve_available": nights > 0,
		"bounds":            selection.CalendarBounds(settings.MinBookingLength, settings.MaxBookingLength, time.Now()),
	})
}
