package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cabin-reservation/internal/auth"
	"github.com/iliyamo/cabin-reservation/internal/config"
	"github.com/iliyamo/cabin-reservation/internal/countries"
	"github.com/iliyamo/cabin-reservation/internal/database"
	"github.com/iliyamo/cabin-reservation/internal/handler"
	"github.com/iliyamo/cabin-reservation/internal/middleware"
	"github.com/iliyamo/cabin-reservation/internal/queue"
	"github.com/iliyamo/cabin-reservation/internal/repository"
	"github.com/iliyamo/cabin-reservation/internal/router"
)

func main() {
	// Load .env when present; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	// Repositories over the relational boundary.
	cabins := repository.NewCabinRepo(db)
	bookings := repository.NewBookingRepo(db)
	guests := repository.NewGuestRepo(db)
	settings := repository.NewSettingsRepo(db)
	sessions := repository.NewSessionRepo(db)

	// External boundaries: identity provider and country lookup.
	provider := auth.NewGoogleProvider(cfg.GoogleClientID, cfg.GoogleSecret, cfg.OAuthRedirect)
	ctry := countries.NewClient(cfg.CountriesURL)

	// Redis is optional; with no client both cache and limiter are no-ops.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; response cache and rate limiting disabled")
	}

	authH := handler.NewAuthHandler(cfg, provider, guests, sessions)
	publicH := handler.NewPublicHandler(cabins, bookings, settings, ctry)
	bookingH := handler.NewBookingHandler(bookings, cabins, settings)
	profileH := handler.NewProfileHandler(guests, ctry)

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH)
	router.RegisterPublic(e, publicH, cache)
	router.RegisterAccount(e, authH, bookingH, profileH, cfg.JWTSecret)

	// Background consumer writing booking events to logs/booking.log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
