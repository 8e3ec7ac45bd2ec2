package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/ambjay/unveiled-prod/internal/platform/envutil"
	"github.com/ambjay/unveiled-prod/internal/platform/logger"
)

// Config is resolved once at startup; nothing else in the process reads the
// environment.
type Config struct {
	Port    string
	LogMode string

	PostgresDSN string

	SessionSecret string
	WebhookSecret string

	TasteAPIBaseURL string
	TasteAPIKey     string
	TasteAPITimeout time.Duration

	AssistantBaseURL string
	AssistantAPIKey  string
	AssistantModel   string
	AssistantTimeout time.Duration

	VoiceBaseURL     string
	VoiceAPIKey      string
	AssistantVoiceID string
	VoiceTimeout     time.Duration

	CORSOrigins []string
}

func LoadConfig(log *logger.Logger) (Config, error) {
	cfg := Config{
		Port:    envutil.Str("PORT", "8080"),
		LogMode: envutil.Str("LOG_MODE", "development"),

		PostgresDSN: envutil.Str("DATABASE_URL", ""),

		SessionSecret: envutil.Str("SESSION_SECRET", ""),
		WebhookSecret: envutil.Str("IDENTITY_WEBHOOK_SECRET", ""),

		TasteAPIBaseURL: envutil.Str("TASTE_API_BASE_URL", ""),
		TasteAPIKey:     envutil.Str("TASTE_API_KEY", ""),
		TasteAPITimeout: envutil.Duration("TASTE_API_TIMEOUT", 30*time.Second),

		AssistantBaseURL: envutil.Str("ASSISTANT_BASE_URL", "https://api.groq.com/openai/v1"),
		AssistantAPIKey:  envutil.Str("ASSISTANT_API_KEY", ""),
		AssistantModel:   envutil.Str("ASSISTANT_MODEL", "llama-3.1-70b-versatile"),
		AssistantTimeout: envutil.Duration("ASSISTANT_TIMEOUT", 60*time.Second),

		VoiceBaseURL:     envutil.Str("VOICE_API_BASE_URL", "https://api.elevenlabs.io/v1"),
		VoiceAPIKey:      envutil.Str("VOICE_API_KEY", ""),
		AssistantVoiceID: envutil.Str("ASSISTANT_VOICE_ID", "pNInz6obpgDQGcFmaJgB"),
		VoiceTimeout:     envutil.Duration("VOICE_API_TIMEOUT", 30*time.Second),
	}

	if extra := envutil.Str("CORS_ORIGINS", ""); extra != "" {
		for _, origin := range strings.Split(extra, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
			}
		}
	}

	if cfg.PostgresDSN == "" {
		host := envutil.Str("POSTGRES_HOST", "localhost")
		port := envutil.Str("POSTGRES_PORT", "5432")
		user := envutil.Str("POSTGRES_USER", "postgres")
		pass := envutil.Str("POSTGRES_PASSWORD", "")
		name := envutil.Str("POSTGRES_DB", "unveiled")
		ssl := envutil.Str("POSTGRES_SSLMODE", "disable")
		cfg.PostgresDSN = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			host, port, user, pass, name, ssl)
	}

	// Both secrets gate security boundaries; refusing to boot beats running
	// open.
	if cfg.SessionSecret == "" {
		return cfg, fmt.Errorf("SESSION_SECRET is required")
	}
	if cfg.WebhookSecret == "" {
		return cfg, fmt.Errorf("IDENTITY_WEBHOOK_SECRET is required")
	}

	if cfg.TasteAPIKey == "" {
		log.Warn("TASTE_API_KEY not set; taste endpoints will return 503")
	}
	if cfg.AssistantAPIKey == "" {
		log.Warn("ASSISTANT_API_KEY not set; Geoffrey will serve the fallback reply")
	}
	if cfg.VoiceAPIKey == "" {
		log.Warn("VOICE_API_KEY not set; voice endpoints will return 503")
	}

	return cfg, nil
}
