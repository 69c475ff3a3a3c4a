package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/celosalong/salon-booking-api/internal/httperr"
)

// mapBookingError translates usecase business codes onto the HTTP surface.
// Validation, not-found and forbidden outcomes stay distinct; anything
// unrecognized is a 500.
func mapBookingError(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case "missing_required_fields":
		httperr.BadRequest(c, "missing_required_fields", "Alla obligatoriska fält måste fyllas i.")
	case "invalid_service":
		httperr.BadRequest(c, "invalid_service", "Ogiltig tjänst vald.")
	case "invalid_date_or_time":
		httperr.BadRequest(c, "invalid_date_or_time", "Ogiltigt datum eller tid.")
	case "invalid_status":
		httperr.BadRequest(c, "invalid_status", "Ogiltig status.")
	case "invalid_transition":
		httperr.BadRequest(c, "invalid_transition", "Endast bekräftade bokningar kan slutföras.")
	case "already_cancelled":
		httperr.BadRequest(c, "already_cancelled", "Bokningen är redan avbokad.")
	case "booking_in_past":
		httperr.BadRequest(c, "booking_in_past", "Kan inte avboka en tid som redan passerat.")
	case "phone_mismatch":
		httperr.Forbidden(c, "phone_mismatch", "Telefonnummer matchar inte bokningen.")
	case "booking_not_found":
		httperr.NotFound(c, "booking_not_found", "Bokning hittades inte.")
	default:
		httperr.Internal(c, "internal_error", "Något gick fel. Försök igen.")
	}
}
