package app

import (
	"github.com/gin-gonic/gin"

	"github.com/ambjay/unveiled-prod/internal/http/middleware"
	"github.com/ambjay/unveiled-prod/internal/platform/logger"
)

func wireRouter(log *logger.Logger, cfg Config, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS(cfg.CORSOrigins))

	session := middleware.NewSessionMiddleware(log, cfg.SessionSecret)

	// Public
	router.GET("/healthcheck", h.Health.Healthcheck)
	router.POST("/api/webhooks/identity", h.Webhook.HandleIdentityEvent)

	// Protected
	api := router.Group("/api")
	api.Use(session.RequireSession())
	{
		api.POST("/serendipity", h.Serendipity.Surprise)

		api.POST("/predictions/generate", h.Prediction.Generate)
		api.GET("/predictions", h.Prediction.List)
		api.GET("/predictions/advanced", h.Insights.AdvancedPredictions)

		api.GET("/taste/profile", h.Taste.Profile)
		api.POST("/taste/influences", h.Taste.Influences)
		api.POST("/time-machine", h.Taste.TimeMachine)

		api.POST("/geoffrey", h.Geoffrey.Chat)
		api.GET("/chat/history", h.Geoffrey.History)

		api.POST("/voice/geoffrey", h.Voice.Assistant)
		api.POST("/voice/test", h.Voice.Test)
		api.GET("/voice/list", h.Voice.List)

		api.GET("/dna", h.Insights.CulturalDNA)
		api.GET("/social", h.Insights.SocialNetwork)

		api.GET("/platforms", h.Platform.List)
		api.GET("/health/database", h.Health.Database)
	}

	return router
}
