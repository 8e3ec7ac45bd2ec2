package app

import (
	"github.com/ambjay/unveiled-prod/internal/data/db"
	"github.com/ambjay/unveiled-prod/internal/http/handlers"
	"github.com/ambjay/unveiled-prod/internal/platform/logger"
	"github.com/ambjay/unveiled-prod/internal/webhook"
)

type Handlers struct {
	Webhook     *handlers.WebhookHandler
	Serendipity *handlers.SerendipityHandler
	Prediction  *handlers.PredictionHandler
	Taste       *handlers.TasteHandler
	Geoffrey    *handlers.GeoffreyHandler
	Voice       *handlers.VoiceHandler
	Insights    *handlers.InsightsHandler
	Platform    *handlers.PlatformHandler
	Health      *handlers.HealthHandler
}

func wireHandlers(log *logger.Logger, svcs Services, verifier *webhook.Verifier, pg *db.PostgresService) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Webhook:     handlers.NewWebhookHandler(log, verifier, svcs.UserSync),
		Serendipity: handlers.NewSerendipityHandler(svcs.Serendipity),
		Prediction:  handlers.NewPredictionHandler(svcs.Prediction),
		Taste:       handlers.NewTasteHandler(svcs.Profile, svcs.Influence, svcs.TimeMachine),
		Geoffrey:    handlers.NewGeoffreyHandler(log, svcs.Assistant),
		Voice:       handlers.NewVoiceHandler(svcs.Speech),
		Insights:    handlers.NewInsightsHandler(),
		Platform:    handlers.NewPlatformHandler(svcs.Profile),
		Health:      handlers.NewHealthHandler(log, pg),
	}
}
