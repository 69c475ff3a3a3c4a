package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/celosalong/salon-booking-api/internal/catalog"
	"github.com/celosalong/salon-booking-api/internal/config"
	"github.com/celosalong/salon-booking-api/internal/httperr"
	"github.com/celosalong/salon-booking-api/internal/httpresp"
	"github.com/celosalong/salon-booking-api/internal/middleware"
	"github.com/celosalong/salon-booking-api/internal/models"
	"github.com/celosalong/salon-booking-api/internal/schedule"
	"github.com/celosalong/salon-booking-api/internal/stats"
	"github.com/celosalong/salon-booking-api/internal/store"
	"github.com/celosalong/salon-booking-api/internal/timezone"
	ucBooking "github.com/celosalong/salon-booking-api/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	cfg     *config.Config
	reviews store.ReviewRepository

	createUC       *ucBooking.CreateBooking
	cancelUC       *ucBooking.CancelBooking
	availabilityUC *ucBooking.GetAvailability
}

func NewPublicHandler(
	cfg *config.Config,
	reviews store.ReviewRepository,
	createUC *ucBooking.CreateBooking,
	cancelUC *ucBooking.CancelBooking,
	availabilityUC *ucBooking.GetAvailability,
) *PublicHandler {
	return &PublicHandler{
		cfg:            cfg,
		reviews:        reviews,
		createUC:       createUC,
		cancelUC:       cancelUC,
		availabilityUC: availabilityUC,
	}
}

func (h *PublicHandler) now() time.Time {
	return timezone.NowIn(h.cfg.SalonTimezone)
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateBookingRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"required"`
	ServiceID    string `json:"service_id" binding:"required"`
	Date         string `json:"date" binding:"required"` // YYYY-MM-DD
	Time         string `json:"time" binding:"required"` // HH:mm
	Notes        string `json:"notes"`
}

type CancelBookingRequest struct {
	ID    string `json:"id" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

////////////////////////////////////////////////////////
// SALON & SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) Salon(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"salon":         catalog.Salon(),
		"opening_hours": schedule.Hours(),
		"status":        schedule.StatusAt(h.now()),
	})
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	httpresp.List(c, catalog.Services())
}

////////////////////////////////////////////////////////
// REVIEWS (VISIBLE ONLY)
////////////////////////////////////////////////////////

func (h *PublicHandler) ListReviews(c *gin.Context) {
	all, err := h.reviews.GetAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_reviews", "Kunde inte hämta recensioner.")
		return
	}

	visible := make([]models.Review, 0, len(all))
	for _, r := range all {
		if r.IsVisible {
			visible = append(visible, r)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews": visible,
		"stats":   stats.Reviews(all),
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_params", "Datum krävs.")
		return
	}

	date, err := time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(h.cfg.SalonTimezone),
	)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Ogiltigt datum.")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), date, h.now())
	if err != nil {
		httperr.Internal(c, "availability_failed", "Kunde inte beräkna lediga tider.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// CREATE BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_required_fields", "Alla obligatoriska fält måste fyllas i (inklusive e-post).")
		return
	}

	b, emailStatus, err := h.createUC.Execute(
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
		"success":      true,
		"booking":      b,
		"email_status": emailStatus,
	})
}

////////////////////////////////////////////////////////
// CANCEL BOOKING (SELF-SERVICE)
////////////////////////////////////////////////////////

func (h *PublicHandler) CancelBooking(c *gin.Context) {
	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_required_fields", "Boknings-ID och telefonnummer krävs.")
		return
	}

	b, err := h.cancelUC.Execute(c.Request.Context(), req.ID, req.Phone, h.now())
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"booking": b,
	})
}
