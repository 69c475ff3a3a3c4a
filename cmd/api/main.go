package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/celosalong/salon-booking-api/internal/config"
	dbpkg "github.com/celosalong/salon-booking-api/internal/db"
	"github.com/celosalong/salon-booking-api/internal/email"
	"github.com/celosalong/salon-booking-api/internal/middleware"
	"github.com/celosalong/salon-booking-api/internal/notify"
	"github.com/celosalong/salon-booking-api/internal/routes"
	"github.com/celosalong/salon-booking-api/internal/session"
	"github.com/celosalong/salon-booking-api/internal/store"
	"github.com/celosalong/salon-booking-api/internal/store/gormstore"
	"github.com/celosalong/salon-booking-api/internal/store/memory"
)

func main() {

	_ = godotenv.Load()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()

	// Bookings live in memory (with an optional JSON mirror) unless a
	// Postgres URL is configured.
	var bookings store.BookingRepository
	var reviews store.ReviewRepository
	if cfg.DatabaseURL != "" {
		db := dbpkg.NewDB(cfg.DatabaseURL)
		bookings = gormstore.NewBookingStore(db)
		reviews = gormstore.NewReviewStore(db)
		logrus.Info("using postgres store")
	} else {
		bookings = memory.NewStore(cfg.BookingsFile)
		reviews = memory.NewReviewStore()
		logrus.Info("using in-memory store")
	}

	var tokens session.TokenStore
	if cfg.RedisAddr != "" {
		tokens = session.NewRedisTokenStore(cfg.RedisAddr, cfg.RedisPassword)
		logrus.Info("using redis session store")
	} else {
		tokens = session.NewMemoryTokenStore()
	}
	guard := session.NewGuard(cfg.AdminUsername, cfg.AdminPasswordHash, tokens)

	var mailer email.Mailer
	if cfg.ResendAPIKey != "" {
		mailer = email.NewResend(cfg.ResendAPIKey, cfg.ResendDomain, cfg.AdminEmail)
	} else {
		mailer = email.NewNoop()
	}
	dispatcher := notify.NewDispatcher(mailer)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.Metrics())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, cfg, bookings, reviews, guard, dispatcher)

	logrus.Infof("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		logrus.Fatalf("failed to start server: %v", err)
	}
}
