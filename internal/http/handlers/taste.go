package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ambjay/unveiled-prod/internal/http/response"
	"github.com/ambjay/unveiled-prod/internal/requestdata"
	"github.com/ambjay/unveiled-prod/internal/services"
)

type TasteHandler struct {
	profiles    services.ProfileService
	influences  services.InfluenceService
	timeMachine services.TimeMachineService
}

func NewTasteHandler(profiles services.ProfileService, influences services.InfluenceService, timeMachine services.TimeMachineService) *TasteHandler {
	return &TasteHandler{
		profiles:    profiles,
		influences:  influences,
		timeMachine: timeMachine,
	}
}

func (h *TasteHandler) Profile(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == "" {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	aggregate, err := h.profiles.Aggregate(c.Request.Context(), rd.UserID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, aggregate)
}

func (h *TasteHandler) Influences(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == "" {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	influences, err := h.influences.Analyze(c.Request.Context(), rd.UserID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"influences": influences})
}

type timeMachineRequest struct {
	Era string `json:"era"`
}

func (h *TasteHandler) TimeMachine(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == "" {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req timeMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	projection, err := h.timeMachine.Project(c.Request.Context(), rd.UserID, req.Era)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"era": req.Era, "projection": projection})
}
