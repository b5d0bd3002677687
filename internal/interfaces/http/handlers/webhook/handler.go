// Package webhook receives WhatsApp Cloud API callbacks.
package webhook

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/estatedesk/estatedesk/internal/application/intake"
	"github.com/estatedesk/estatedesk/internal/infrastructure/whatsapp"
	"github.com/estatedesk/estatedesk/internal/shared/logger"
)

const maxBodyBytes = 1 << 20

// Dispatcher hands an inbound message to the intake conversation without
// blocking the webhook response.
type Dispatcher interface {
	Dispatch(msg intake.InboundMessage)
}

type WhatsAppHandler struct {
	verifyToken string
	appSecret   string
	dispatcher  Dispatcher
	logger      logger.Interface
}

func NewWhatsAppHandler(verifyToken, appSecret string, dispatcher Dispatcher, log logger.Interface) *WhatsAppHandler {
	return &WhatsAppHandler{
		verifyToken: verifyToken,
		appSecret:   appSecret,
		dispatcher:  dispatcher,
		logger:      log,
	}
}

// Verify handles the GET subscription handshake.
func (h *WhatsAppHandler) Verify(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode != "subscribe" || h.verifyToken == "" || token != h.verifyToken {
		h.logger.Warnw("whatsapp webhook verification rejected", "mode", mode)
		c.String(http.StatusForbidden, "forbidden")
		return
	}

	c.String(http.StatusOK, challenge)
}

// Receive handles POST callbacks. Unsigned or malformed bodies are rejected;
// accepted messages are acknowledged before they are processed.
func (h *WhatsAppHandler) Receive(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if !whatsapp.VerifySignature(h.appSecret, body, c.GetHeader(whatsapp.SignatureHeader)) {
		h.logger.Warnw("whatsapp webhook signature mismatch", "ip", c.ClientIP())
		c.Status(http.StatusUnauthorized)
		return
	}

	messages, err := whatsapp.ParseWebhook(body)
	if err != nil {
		h.logger.Warnw("failed to parse whatsapp webhook", "error", err)
		c.Status(http.StatusBadRequest)
		return
	}

	for _, msg := range messages {
		h.dispatcher.Dispatch(msg)
	}

	c.Status(http.StatusOK)
}
