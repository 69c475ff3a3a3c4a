package handlers

import (
	"encoding/csv"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/celosalong/salon-booking-api/internal/catalog"
	"github.com/celosalong/salon-booking-api/internal/config"
	"github.com/celosalong/salon-booking-api/internal/httperr"
	"github.com/celosalong/salon-booking-api/internal/middleware"
	"github.com/celosalong/salon-booking-api/internal/models"
	"github.com/celosalong/salon-booking-api/internal/stats"
	"github.com/celosalong/salon-booking-api/internal/store"
	"github.com/celosalong/salon-booking-api/internal/timezone"
	ucBooking "github.com/celosalong/salon-booking-api/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type AdminHandler struct {
	cfg      *config.Config
	bookings store.BookingRepository
	reviews  store.ReviewRepository

	createUC *ucBooking.CreateBooking
	statusUC *ucBooking.UpdateStatus
}

func NewAdminHandler(
	cfg *config.Config,
	bookings store.BookingRepository,
	reviews store.ReviewRepository,
	createUC *ucBooking.CreateBooking,
	statusUC *ucBooking.UpdateStatus,
) *AdminHandler {
	return &AdminHandler{
		cfg:      cfg,
		bookings: bookings,
		reviews:  reviews,
		createUC: createUC,
		statusUC: statusUC,
	}
}

func (h *AdminHandler) now() time.Time {
	return timezone.NowIn(h.cfg.SalonTimezone)
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type UpdateBookingStatusRequest struct {
	ID     string `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type UpdateReviewRequest struct {
	ID        string `json:"id" binding:"required"`
	IsVisible *bool  `json:"is_visible" binding:"required"`
}

// EnrichedBooking carries the static service fields the dashboard table
// shows next to each record.
type EnrichedBooking struct {
	models.Booking
	ServiceName     string  `json:"service_name"`
	ServicePrice    float64 `json:"service_price"`
	ServiceDuration int     `json:"service_duration"`
}

func enrich(b models.Booking) EnrichedBooking {
	e := EnrichedBooking{Booking: b, ServiceName: b.ServiceID}
	if svc, ok := catalog.ServiceByID(b.ServiceID); ok {
		e.ServiceName = svc.Name
		e.ServicePrice = svc.Price
		e.ServiceDuration = svc.DurationMin
	}
	return e
}

////////////////////////////////////////////////////////
// BOOKINGS
////////////////////////////////////////////////////////

func (h *AdminHandler) ListBookings(c *gin.Context) {
	all, err := h.bookings.GetAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Kunde inte hämta bokningar.")
		return
	}

	status := c.Query("status")
	date := c.Query("date")

	out := make([]EnrichedBooking, 0, len(all))
	for _, b := range all {
		if status != "" && status != "all" && b.Status != status {
			continue
		}
		if date != "" && b.Date != date {
			continue
		}
		out = append(out, enrich(b))
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings": out,
		"total":    len(out),
	})
}

func (h *AdminHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_required_fields", "Alla obligatoriska fält måste fyllas i.")
		return
	}

	b, _, err := h.createUC.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			CustomerName: req.CustomerName,
			Email:        req.Email,
			Phone:        req.Phone,
			ServiceID:    req.ServiceID,
			Date:         req.Date,
			Time:         req.Time,
			Notes:        req.Notes,
		},
	)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	middleware.BookingsCreated.Inc()

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"booking": b,
	})
}

func (h *AdminHandler) UpdateBookingStatus(c *gin.Context) {
	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "ID och status krävs.")
		return
	}

	b, err := h.statusUC.Execute(c.Request.Context(), req.ID, req.Status)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"booking": b,
	})
}

func (h *AdminHandler) DeleteBooking(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.bookings.Delete(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_delete_booking", "Kunde inte ta bort bokningen.")
		return
	}
	if !deleted {
		httperr.NotFound(c, "booking_not_found", "Bokning hittades inte.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

////////////////////////////////////////////////////////
// CSV EXPORT
////////////////////////////////////////////////////////

func (h *AdminHandler) ExportBookings(c *gin.Context) {
	all, err := h.bookings.GetAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_export", "Kunde inte exportera bokningar.")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="bookings.csv"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"ID", "Name", "Email", "Phone", "Service", "Date", "Time", "Status", "Notes", "Created"})
	for _, b := range all {
		_ = w.Write([]string{
			b.ID,
			b.CustomerName,
			b.Email,
			b.Phone,
			b.ServiceID,
			b.Date,
			b.Time,
			b.Status,
			b.Notes,
			b.CreatedAt.Format(time.RFC3339),
		})
	}
	w.Flush()
}

////////////////////////////////////////////////////////
// STATS
////////////////////////////////////////////////////////

func (h *AdminHandler) Stats(c *gin.Context) {
	bookings, err := h.bookings.GetAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "stats_failed", "Kunde inte hämta statistik.")
		return
	}

	reviews, err := h.reviews.GetAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "stats_failed", "Kunde inte hämta statistik.")
		return
	}

	c.JSON(http.StatusOK, stats.BuildDashboard(bookings, reviews, h.now()))
}

////////////////////////////////////////////////////////
// REVIEWS
////////////////////////////////////////////////////////

func (h *AdminHandler) ListReviews(c *gin.Context) {
	all, err := h.reviews.GetAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_reviews", "Kunde inte hämta recensioner.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": all,
		"stats":   stats.Reviews(all),
	})
}

func (h *AdminHandler) UpdateReview(c *gin.Context) {
	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "ID och is_visible krävs.")
		return
	}

	review, err := h.reviews.SetVisibility(c.Request.Context(), req.ID, *req.IsVisible)
	if err != nil {
		httperr.NotFound(c, "review_not_found", "Recension hittades inte.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"review":  review,
	})
}
