package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ambjay/unveiled-prod/internal/http/response"
	"github.com/ambjay/unveiled-prod/internal/requestdata"
	"github.com/ambjay/unveiled-prod/internal/services"
)

// InsightsHandler serves the static editorial catalogs behind the dna,
// advanced-predictions and social endpoints.
type InsightsHandler struct{}

func NewInsightsHandler() *InsightsHandler {
	return &InsightsHandler{}
}

func (h *InsightsHandler) CulturalDNA(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == "" {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	response.RespondOK(c, services.CulturalDNACatalog())
}

func (h *InsightsHandler) AdvancedPredictions(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == "" {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	response.RespondOK(c, services.AdvancedPredictionsCatalog())
}

func (h *InsightsHandler) SocialNetwork(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == "" {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	response.RespondOK(c, services.SocialTasteNetworkCatalog())
}
