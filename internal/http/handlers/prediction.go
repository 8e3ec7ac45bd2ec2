package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ambjay/unveiled-prod/internal/http/response"
	"github.com/ambjay/unveiled-prod/internal/requestdata"
	"github.com/ambjay/unveiled-prod/internal/services"
)

type PredictionHandler struct {
	predictions services.PredictionService
}

func NewPredictionHandler(predictions services.PredictionService) *PredictionHandler {
	return &PredictionHandler{predictions: predictions}
}

func (h *PredictionHandler) Generate(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == "" {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	rows, err := h.predictions.Generate(c.Request.Context(), rd.UserID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"predictions": rows})
}

func (h *PredictionHandler) List(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == "" {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	limit := 20
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}
	rows, err := h.predictions.List(c.Request.Context(), rd.UserID, limit)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"predictions": rows})
}
