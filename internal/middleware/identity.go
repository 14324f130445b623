package middleware

// identity.go holds helpers shared across middleware files. The rate
// limiter keys buckets by guest where a session is present and falls
// back to "guest" (the anonymous visitor) otherwise.

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// currentGuestID returns the guest identifier attached by JWTAuth, or
// "anon" when the request carries no session.
func currentGuestID(c echo.Context) string {
	v := c.Get("guest_id")
	if v == nil {
		return "anon"
	}
	switch t := v.(type) {
	case string:
		if t != "" {
			return t
		}
	case float64:
		return fmt.Sprintf("%.0f", t)
	case uint64:
		return fmt.Sprintf("%d", t)
	}
	return "anon"
}
