// Package handler provides the HTTP handlers for the signaling backend.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Gejoprajan/TwilioToolBarNode/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers all routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Browser-facing API
	e.GET("/api/token", h.GetToken)
	e.POST("/api/dial", h.Dial)
	e.POST("/api/test-incoming-call", h.TestIncomingCall)
	e.POST("/api/mute", h.Mute)
	e.POST("/api/hangup", h.Hangup)

	// Provider callbacks asking how to handle a call leg
	e.POST("/voice", h.Voice)
	e.POST("/api/receive-call", h.ReceiveCall)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
