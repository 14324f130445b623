package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cabin-reservation/internal/countries"
	"github.com/iliyamo/cabin-reservation/internal/repository"
)

// ProfileHandler serves the guest profile endpoints under the account
// area.
type ProfileHandler struct {
	Guests    *repository.GuestRepo
	Countries *countries.Client
}

func NewProfileHandler(guests *repository.GuestRepo, ctry *countries.Client) *ProfileHandler {
	if guests == nil || ctry == nil {
		panic("nil dependency passed to NewProfileHandler")
	}
	return &ProfileHandler{Guests: guests, Countries: ctry}
}

// Get handles GET /v1/account/profile.
func (h *ProfileHandler) Get(c echo.Context) error {
	guestID, err := getGuestID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	g, err := h.Guests.GetByID(c.Request().Context(), guestID)
	if err != nil {
		if errors.Is(err, repository.ErrGuestNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "guest not found"})
		}
		log.Printf("guests: get %d failed: %v", guestID, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "guest could not be loaded"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": g})
}

type updateProfileReq struct {
	FullName    string `json:"full_name"`
	Nationality string `json:"nationality"`
	NationalID  string `json:"national_id"`
}

// Update handles PATCH /v1/account/profile. When a nationality is
// submitted the country flag is resolved through the country lookup;
// a name the lookup does not know is rejected.
func (h *ProfileHandler) Update(c echo.Context) error {
	guestID, err := getGuestID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req updateProfileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx := c.Request().Context()
	g, err := h.Guests.GetByID(ctx, guestID)
	if err != nil {
		if errors.Is(err, repository.ErrGuestNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "guest not found"})
		}
		log.Printf("guests: get %d failed: %v", guestID, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "guest could not be loaded"})
	}

	if name := strings.TrimSpace(req.FullName); name != "" {
		g.FullName = name
	}
	g.NationalID = strings.TrimSpace(req.NationalID)
	if nat := strings.TrimSpace(req.Nationality); nat != "" && nat != g.Nationality {
		flag, err := h.Countries.FlagFor(ctx, nat)
		if err != nil {
			if errors.Is(err, countries.ErrUnavailable) {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not fetch countries"})
			}
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown nationality"})
		}
		g.Nationality = nat
		g.CountryFlag = flag
	}

	if err := h.Guests.Update(ctx, guestID, g.FullName, g.Nationality, g.NationalID, g.CountryFlag); err != nil {
		log.Printf("guests: update %d failed: %v", guestID, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "guest could not be updated"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": g})
}
