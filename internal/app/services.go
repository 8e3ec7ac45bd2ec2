package app

import (
	"gorm.io/gorm"

	"github.com/ambjay/unveiled-prod/internal/platform/logger"
	"github.com/ambjay/unveiled-prod/internal/services"
)

type Services struct {
	Tracker     services.TrackerService
	UserSync    services.UserSyncService
	Profile     services.ProfileService
	Serendipity services.SerendipityService
	Prediction  services.PredictionService
	Influence   services.InfluenceService
	TimeMachine services.TimeMachineService
	Assistant   services.AssistantService
	Speech      services.SpeechService
	Runner      *services.BackgroundRunner
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos, clients Clients) Services {
	log.Info("Wiring services...")

	runner := services.NewBackgroundRunner(log)
	tracker := services.NewTrackerService(db, log, repos.AnalyticsEvent)
	profile := services.NewProfileService(db, log, repos.TasteProfile, repos.Connection, repos.Prediction)

	return Services{
		Tracker:     tracker,
		UserSync:    services.NewUserSyncService(db, log, repos.User, tracker),
		Profile:     profile,
		Serendipity: services.NewSerendipityService(db, log, profile, repos.Serendipity, clients.TasteAPI, tracker),
		Prediction:  services.NewPredictionService(db, log, profile, repos.Prediction, clients.TasteAPI, tracker),
		Influence:   services.NewInfluenceService(db, log, profile, clients.TasteAPI, tracker),
		TimeMachine: services.NewTimeMachineService(db, log, profile, clients.TasteAPI, tracker),
		Assistant:   services.NewAssistantService(db, log, profile, repos.ChatMessage, clients.Assistant, cfg.AssistantModel, tracker, runner),
		Speech:      services.NewSpeechService(log, clients.Voice, cfg.AssistantVoiceID, tracker),
		Runner:      runner,
	}
}
