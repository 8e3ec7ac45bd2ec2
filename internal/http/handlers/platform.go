package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ambjay/unveiled-prod/internal/http/response"
	"github.com/ambjay/unveiled-prod/internal/requestdata"
	"github.com/ambjay/unveiled-prod/internal/services"
)

type PlatformHandler struct {
	profiles services.ProfileService
}

func NewPlatformHandler(profiles services.ProfileService) *PlatformHandler {
	return &PlatformHandler{profiles: profiles}
}

func (h *PlatformHandler) List(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == "" {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	connections, err := h.profiles.ListConnections(c.Request.Context(), rd.UserID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"platforms": connections})
}
