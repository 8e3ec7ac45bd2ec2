package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ambjay/unveiled-prod/internal/http/response"
	"github.com/ambjay/unveiled-prod/internal/requestdata"
	"github.com/ambjay/unveiled-prod/internal/services"
)

type SerendipityHandler struct {
	serendipity services.SerendipityService
}

func NewSerendipityHandler(serendipity services.SerendipityService) *SerendipityHandler {
	return &SerendipityHandler{serendipity: serendipity}
}

func (h *SerendipityHandler) Surprise(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == "" {
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	view, err := h.serendipity.Surprise(c.Request.Context(), rd.UserID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, view)
}
