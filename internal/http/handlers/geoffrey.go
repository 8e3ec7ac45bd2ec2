package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ambjay/unveiled-prod/internal/clients/assistant"
	"github.com/ambjay/unveiled-prod/internal/http/response"
	"github.com/ambjay/unveiled-prod/internal/platform/logger"
	"github.com/ambjay/unveiled-prod/internal/requestdata"
	"github.com/ambjay/unveiled-prod/internal/services"
)

type GeoffreyHandler struct {
	log       *logger.Logger
	assistant services.AssistantService
}

func NewGeoffreyHandler(baseLog *logger.Logger, svc services.AssistantService) *GeoffreyHandler {
	return &GeoffreyHandler{
		log:       baseLog.With("handler", "GeoffreyHandler"),
		assistant: svc,
	}
}

type chatRequest struct {
	Messages []assistant.Message `json:"messages"`
}

// Chat streams the assistant reply as plain text chunks. Once the first chunk
// is on the wire the status is committed, so errors after that point are only
// logged.
func (h *GeoffreyHandler) Chat(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == "" {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}

	wrote := false
	sink := func(delta string) error {
		if !wrote {
			c.Header("Content-Type", "text/plain; charset=utf-8")
			c.Header("Cache-Control", "no-cache")
			c.Status(http.StatusOK)
			wrote = true
		}
		if _, err := c.Writer.WriteString(delta); err != nil {
			return err
		}
		c.Writer.Flush()
		return nil
	}

	fallback, err := h.assistant.Chat(c.Request.Context(), rd.UserID, req.Messages, sink)
	if err != nil {
		if wrote {
			h.log.Warn("chat stream failed after response started", "error", err)
			return
		}
		response.RespondAPIError(c, err)
		return
	}
	if fallback {
		h.log.Info("served assistant fallback", "user_id", rd.UserID)
	}
}

func (h *GeoffreyHandler) History(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == "" {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	limit := 50
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 200 {
			limit = parsed
		}
	}
	rows, err := h.assistant.History(c.Request.Context(), rd.UserID, limit)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"messages": rows})
}
