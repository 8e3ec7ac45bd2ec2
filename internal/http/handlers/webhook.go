package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ambjay/unveiled-prod/internal/http/response"
	"github.com/ambjay/unveiled-prod/internal/platform/logger"
	"github.com/ambjay/unveiled-prod/internal/services"
	"github.com/ambjay/unveiled-prod/internal/webhook"
)

const (
	headerWebhookID        = "webhook-id"
	headerWebhookTimestamp = "webhook-timestamp"
	headerWebhookSignature = "webhook-signature"
)

const maxWebhookBody = 1 << 20

// WebhookHandler accepts signed lifecycle events from the identity provider.
// Verification failures are terminal 400s; persistence failures are 500s so
// the provider redelivers.
type WebhookHandler struct {
	log      *logger.Logger
	verifier *webhook.Verifier
	sync     services.UserSyncService
}

func NewWebhookHandler(log *logger.Logger, verifier *webhook.Verifier, sync services.UserSyncService) *WebhookHandler {
	return &WebhookHandler{
		log:      log.With("handler", "WebhookHandler"),
		verifier: verifier,
		sync:     sync,
	}
}

func (h *WebhookHandler) HandleIdentityEvent(c *gin.Context) {
	msgID := c.GetHeader(headerWebhookID)
	timestamp := c.GetHeader(headerWebhookTimestamp)
	signature := c.GetHeader(headerWebhookSignature)
	if msgID == "" || timestamp == "" || signature == "" {
		response.RespondError(c, http.StatusBadRequest, "missing_webhook_headers",
			errors.New("missing webhook headers"))
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody)
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", errors.New("unreadable body"))
		return
	}

	if err := h.verifier.Verify(msgID, timestamp, signature, body); err != nil {
		// One uniform rejection for every verification failure mode.
		response.RespondError(c, http.StatusBadRequest, "verification_failed",
			errors.New("webhook verification failed"))
		return
	}

	evt, err := services.ParseLifecycleEvent(body)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "verification_failed",
			errors.New("webhook verification failed"))
		return
	}

	if _, err := h.sync.Sync(c.Request.Context(), evt); err != nil {
		response.RespondError(c, http.StatusInternalServerError, "sync_failed", err)
		return
	}

	c.Status(http.StatusOK)
}
