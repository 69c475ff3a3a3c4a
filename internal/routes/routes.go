package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/celosalong/salon-booking-api/internal/config"
	"github.com/celosalong/salon-booking-api/internal/handlers"
	"github.com/celosalong/salon-booking-api/internal/middleware"
	"github.com/celosalong/salon-booking-api/internal/notify"
	"github.com/celosalong/salon-booking-api/internal/session"
	"github.com/celosalong/salon-booking-api/internal/store"
	ucBooking "github.com/celosalong/salon-booking-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	bookings store.BookingRepository,
	reviews store.ReviewRepository,
	guard *session.Guard,
	dispatcher *notify.Dispatcher,
) {

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookings, dispatcher)
	cancelBookingUC := ucBooking.NewCancelBooking(bookings)
	updateStatusUC := ucBooking.NewUpdateStatus(bookings)
	availabilityUC := ucBooking.NewGetAvailability(bookings)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(
		cfg,
		reviews,
		createBookingUC,
		cancelBookingUC,
		availabilityUC,
	)

	authHandler := handlers.NewAuthHandler(guard)

	adminHandler := handlers.NewAdminHandler(
		cfg,
		bookings,
		reviews,
		createBookingUC,
		updateStatusUC,
	)

	// ======================================================
	// METRICS
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/salon", publicHandler.Salon)
		api.GET("/services", publicHandler.ListServices)
		api.GET("/reviews", publicHandler.ListReviews)
		api.GET("/availability", publicHandler.Availability)
		api.POST("/bookings", publicHandler.CreateBooking)
		api.POST("/bookings/cancel", publicHandler.CancelBooking)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)

		// ------------------------------
		// ADMIN (SESSION COOKIE)
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuth(guard))
		{
			admin.GET("/bookings", adminHandler.ListBookings)
			admin.POST("/bookings", adminHandler.CreateBooking)
			admin.PATCH("/bookings", adminHandler.UpdateBookingStatus)
			admin.DELETE("/bookings/:id", adminHandler.DeleteBooking)
			admin.GET("/bookings/export", adminHandler.ExportBookings)

			admin.GET("/stats", adminHandler.Stats)

			admin.GET("/reviews", adminHandler.ListReviews)
			admin.PATCH("/reviews", adminHandler.UpdateReview)
		}
	}
}
