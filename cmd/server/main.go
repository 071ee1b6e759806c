package main // Entry point package

import (
	"context"
	"time"

	"github.com/joho/godotenv"     // loads .env files in development
	"github.com/labstack/echo/v4"  // Echo web framework
	"github.com/sirupsen/logrus"   // structured logging

	"github.com/ggwellplayed/booking-service/internal/config"
	"github.com/ggwellplayed/booking-service/internal/database"
	"github.com/ggwellplayed/booking-service/internal/engine"
	"github.com/ggwellplayed/booking-service/internal/handler"
	"github.com/ggwellplayed/booking-service/internal/middleware"
	"github.com/ggwellplayed/booking-service/internal/queue"
	"github.com/ggwellplayed/booking-service/internal/repository"
	"github.com/ggwellplayed/booking-service/internal/router"
	queuepublisher "github.com/ggwellplayed/booking-service/internal/service"
	"github.com/ggwellplayed/booking-service/internal/store"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment directly

	cfg := config.Load() // Load environment config

	// Redis backs the booking store, the attempt ledger, the HTTP rate
	// limiter and the catalog cache.  A nil client degrades everything to
	// in-memory, keeping the booking flow available.
	rdb := config.NewRedisClient()
	var kv store.Store
	if rdb != nil {
		kv = store.NewRedis(rdb)
	} else {
		logrus.Warn("redis unavailable, falling back to in-memory store; bookings will not survive a restart")
		kv = store.NewMemory()
	}

	bookings := repository.NewBookingRepo(kv, cfg.StorePrefix)
	defer bookings.Close()
	ledger := repository.NewRateLimitRepo(kv, cfg.StorePrefix, cfg.Booking)

	// Optional MySQL archive: the booking.created consumer mirrors records
	// into it when the database is configured.
	var archive *repository.ArchiveRepo
	if db, err := database.OpenFromEnv(); err != nil {
		logrus.WithError(err).Warn("archive database unavailable, continuing without it")
	} else if db != nil {
		archive = repository.NewArchiveRepo(db)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := archive.EnsureSchema(ctx); err != nil {
			logrus.WithError(err).Warn("archive schema setup failed, continuing without archive")
			archive = nil
		}
		cancel()
	}

	bus := queue.NewBus()
	eng := engine.New(cfg, bookings, ledger, bus, engine.LogOpener{}, queuepublisher.PublishBookingCreated)
	defer eng.Close()

	go func() {
		if err := queue.StartBookingConsumer(archive); err != nil {
			logrus.WithError(err).Error("booking consumer stopped")
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterCatalog(e, middleware.NewCatalogCache(config.LoadCacheConfig(), rdb))
	router.RegisterBooking(e, handler.NewBookingHandler(eng, bus), middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	router.RegisterAdmin(e, handler.NewAdminHandler(bookings))

	addr := ":" + cfg.Port                                       // Address string with port
	logrus.Infof("listening on %s (env=%s)", addr, cfg.Env)      // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		logrus.Fatal(err) // Log and exit if server fails
	}
}
