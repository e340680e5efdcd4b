package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// GetToken issues a capability token for the browser client. The real
// failure cause is logged but never echoed back, so credential material
// stays out of the response body.
// GET /api/token
func (h *Handler) GetToken(c echo.Context) error {
	token, err := h.service.IssueToken(c.QueryParam("identity"))
	if err != nil {
		log.Error().Err(err).Msg("error generating token")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to generate token"})
	}

	return c.JSON(http.StatusOK, map[string]string{"token": token})
}
