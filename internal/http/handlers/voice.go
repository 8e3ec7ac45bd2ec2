package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ambjay/unveiled-prod/internal/http/response"
	"github.com/ambjay/unveiled-prod/internal/requestdata"
	"github.com/ambjay/unveiled-prod/internal/services"
)

type VoiceHandler struct {
	speech services.SpeechService
}

func NewVoiceHandler(speech services.SpeechService) *VoiceHandler {
	return &VoiceHandler{speech: speech}
}

type assistantSpeechRequest struct {
	Text string `json:"text"`
}

func (h *VoiceHandler) Assistant(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == "" {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req assistantSpeechRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	audio, err := h.speech.AssistantSpeech(c.Request.Context(), rd.UserID, req.Text)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.Data(http.StatusOK, "audio/mpeg", audio)
}

type testSpeechRequest struct {
	VoiceID string `json:"voice_id"`
	Text    string `json:"text"`
}

func (h *VoiceHandler) Test(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == "" {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req testSpeechRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	audio, err := h.speech.TestSpeech(c.Request.Context(), req.VoiceID, req.Text)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.Data(http.StatusOK, "audio/mpeg", audio)
}

func (h *VoiceHandler) List(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == "" {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	voices, err := h.speech.ListVoices(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"voices": voices})
}
