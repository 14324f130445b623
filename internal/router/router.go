package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cabin-reservation/internal/handler"
	"github.com/iliyamo/cabin-reservation/internal/middleware"
)

// RegisterRoutes registers routes that carry no dependencies at all.
// Currently that is only the health check used by load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the OAuth sign-in flow and session endpoints.
// None of these require an existing session: login starts the redirect
// round trip, callback completes it, and refresh/logout authenticate
// through the refresh token in the body.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
	g := e.Group("/v1/auth")
	// Redirect to the identity provider.
	g.GET("/login", a.Login)
	// Provider redirects back here; completes sign-in and issues tokens.
	g.GET("/callback", a.Callback)
	// Rotate a refresh token for a fresh access/refresh pair.
	g.POST("/refresh", a.Refresh)
	// Revoke a single session by its refresh token.
	g.POST("/logout", a.Logout)
}

// RegisterPublic registers the unauthenticated browse surface. The
// cacheable reads are wrapped with the Redis response cache; the quote
// endpoint is per-visitor state and is never cached.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, cache echo.MiddlewareFunc) {
	// Cabin list with optional ?capacity=all|small|medium|large filter.
	e.GET("/v1/cabins", p.ListCabins, cache)
	// Cabin detail including full description and a card-sized excerpt.
	e.GET("/v1/cabins/:id", p.GetCabin, cache)
	// Every unavailable day for the cabin, for the date picker.
	e.GET("/v1/cabins/:id/booked-dates", p.BookedDates, cache)
	// The singleton booking settings.
	e.GET("/v1/settings", p.GetSettings, cache)
	// Country name/flag pairs proxied from the public lookup.
	e.GET("/v1/countries", p.GetCountries, cache)
	// Selection quote: range in, displayed range + nights + total out.
	e.POST("/v1/cabins/:id/quote", p.Quote)
}

// RegisterAccount registers everything under /v1/account. The whole
// group requires a valid access token; all other routes stay public.
func RegisterAccount(e *echo.Echo, a *handler.AuthHandler, b *handler.BookingHandler, pr *handler.ProfileHandler, jwtSecret string) {
	acc := e.Group("/v1/account")
	acc.Use(middleware.JWTAuth(jwtSecret))

	// Session echo for the "logged in as" header.
	acc.GET("/me", a.Me)

	// Guest profile read/update.
	acc.GET("/profile", pr.Get)
	acc.PATCH("/profile", pr.Update)

	// The guest's reservations.
	acc.GET("/bookings", b.List)
	acc.POST("/bookings", b.Create)
	acc.GET("/bookings/:id", b.Get)
	acc.PATCH("/bookings/:id", b.Update)
	acc.DELETE("/bookings/:id", b.Delete)
}
