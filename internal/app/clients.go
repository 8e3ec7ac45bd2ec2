package app

import (
	"github.com/ambjay/unveiled-prod/internal/clients/assistant"
	"github.com/ambjay/unveiled-prod/internal/clients/tasteapi"
	"github.com/ambjay/unveiled-prod/internal/clients/voice"
	"github.com/ambjay/unveiled-prod/internal/platform/logger"
)

// Clients hold the outbound integrations. A nil client means the integration
// is unconfigured; services translate that into 503s (or the assistant
// fallback) instead of failing at startup.
type Clients struct {
	TasteAPI  tasteapi.Client
	Assistant assistant.Client
	Voice     voice.Client
}

func wireClients(log *logger.Logger, cfg Config) Clients {
	log.Info("Wiring clients...")
	return Clients{
		TasteAPI:  tasteapi.NewClient(cfg.TasteAPIBaseURL, cfg.TasteAPIKey, cfg.TasteAPITimeout, log),
		Assistant: assistant.NewClient(cfg.AssistantBaseURL, cfg.AssistantAPIKey, cfg.AssistantModel, cfg.AssistantTimeout, log),
		Voice:     voice.NewClient(cfg.VoiceBaseURL, cfg.VoiceAPIKey, cfg.VoiceTimeout, log),
	}
}
