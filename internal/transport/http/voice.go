package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Gejoprajan/TwilioToolBarNode/internal/twiml"
)

// Voice returns the call-handling document for a connected outbound call.
// POST /voice
func (h *Handler) Voice(c echo.Context) error {
	return h.renderTwiML(c, h.service.OutboundGreeting())
}

// ReceiveCall returns the call-handling document routing an inbound call
// to the browser client.
// POST /api/receive-call
func (h *Handler) ReceiveCall(c echo.Context) error {
	return h.renderTwiML(c, h.service.InboundRouting())
}

func (h *Handler) renderTwiML(c echo.Context, doc twiml.Document) error {
	body, err := twiml.Render(doc)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	// Twilio expects text/xml.
	return c.Blob(http.StatusOK, echo.MIMETextXMLCharsetUTF8, []byte(body))
}
