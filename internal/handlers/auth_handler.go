package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/celosalong/salon-booking-api/internal/httperr"
	"github.com/celosalong/salon-booking-api/internal/middleware"
	"github.com/celosalong/salon-booking-api/internal/session"
)

type AuthHandler struct {
	guard *session.Guard
}

func NewAuthHandler(guard *session.Guard) *AuthHandler {
	return &AuthHandler{guard: guard}
}

// --------- Requests ---------

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Användarnamn och lösenord krävs.")
		return
	}

	token, err := h.guard.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// Uniform regardless of which field was wrong.
		httperr.Unauthorized(c, "invalid_credentials", "Felaktigt användarnamn eller lösenord.")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.SessionCookie,
		token,
		int(session.TokenTTL.Seconds()),
		"/",
		"",
		false,
		true,
	)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil {
		h.guard.Logout(c.Request.Context(), token)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{"success": true})
}
