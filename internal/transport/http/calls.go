package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/Gejoprajan/TwilioToolBarNode/internal/domain"
)

// DialRequest is the request to place an outbound call.
type DialRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

// MuteRequest is the request to change a call's mute state.
type MuteRequest struct {
	CallSID string `json:"callSid"`
	Mute    bool   `json:"mute"`
}

// HangupRequest is the request to terminate a call.
type HangupRequest struct {
	CallSID string `json:"callSid"`
}

// Dial places an outbound call.
// POST /api/dial
func (h *Handler) Dial(c echo.Context) error {
	ctx := c.Request().Context()

	var req DialRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": "invalid request body"})
	}

	callSID, err := h.service.Dial(ctx, req.PhoneNumber)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": verr.Message})
		}
		log.Error().Err(err).Str("to", req.PhoneNumber).Msg("error dialing")
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "callSid": callSID})
}

// TestIncomingCall triggers a simulated inbound call.
// POST /api/test-incoming-call
func (h *Handler) TestIncomingCall(c echo.Context) error {
	ctx := c.Request().Context()

	callSID, err := h.service.SimulateInbound(ctx)
	if err != nil {
		log.Error().Err(err).Msg("error triggering simulated incoming call")
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "error": err.Error()})
	}

	log.Info().Str("callSid", callSID).Msg("simulated incoming call placed")
	return c.JSON(http.StatusOK, map[string]any{"success": true, "callSid": callSID})
}

// Mute updates the mute state of a live call.
// POST /api/mute
func (h *Handler) Mute(c echo.Context) error {
	ctx := c.Request().Context()

	var req MuteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": "invalid request body"})
	}

	if err := h.service.SetMute(ctx, req.CallSID, req.Mute); err != nil {
		log.Error().Err(err).Str("callSid", req.CallSID).Msg("error updating mute status")
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true})
}

// Hangup terminates a live call.
// POST /api/hangup
func (h *Handler) Hangup(c echo.Context) error {
	ctx := c.Request().Context()

	var req HangupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "error": "invalid request body"})
	}

	if err := h.service.Hangup(ctx, req.CallSID); err != nil {
		log.Error().Err(err).Str("callSid", req.CallSID).Msg("error hanging up")
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true})
}
