package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"    // loads .env files in development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/Prabheesh178/woxsen-league/internal/config"
	"github.com/Prabheesh178/woxsen-league/internal/database"
	"github.com/Prabheesh178/woxsen-league/internal/handler"
	"github.com/Prabheesh178/woxsen-league/internal/live"
	"github.com/Prabheesh178/woxsen-league/internal/middleware"
	"github.com/Prabheesh178/woxsen-league/internal/queue"
	"github.com/Prabheesh178/woxsen-league/internal/repository"
	"github.com/Prabheesh178/woxsen-league/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis backs the live fan-out and the rate limiter. A nil client
	// degrades both gracefully rather than blocking startup.
	rdb := config.NewRedisClient()

	hub := live.NewHub(rdb)
	go hub.Run(context.Background())

	bookings := repository.NewBookingRepo(db)
	settingsRepo := repository.NewSettingsRepo(db)
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)

	settingsCache := live.NewSettingsCache(settingsRepo, hub)

	events := queue.NewPublisher(queue.BrokerURL())
	defer events.Close()

	// The consumer tails the events queue into logs/booking.log and
	// reconnects on its own; it never takes the API down with it.
	go func() {
		if err := queue.StartEventConsumer(); err != nil {
			log.Printf("event consumer stopped: %v", err)
		}
	}()

	limiter := middleware.NewRateLimiter(config.LoadRateLimitConfig(), rdb)

	e := echo.New()
	router.RegisterRoutes(e, router.Deps{
		JWTSecret: cfg.JWTSecret,
		RateLimit: limiter,
		Auth:      handler.NewAuthHandler(cfg, users, tokens),
		Facility:  handler.NewFacilityHandler(bookings, settingsCache),
		Booking:   handler.NewBookingHandler(bookings, settingsCache, hub, events),
		Warden:    handler.NewWardenHandler(cfg, bookings, settingsRepo, settingsCache, hub, events),
	})

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
