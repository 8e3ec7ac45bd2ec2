// Package voice wraps the hosted text-to-speech provider.
package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ambjay/unveiled-prod/internal/platform/logger"
)

type Settings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style,omitempty"`
	UseSpeakerBoost bool    `json:"use_speaker_boost,omitempty"`
}

// AssistantSettings is the tuned voice configuration for Geoffrey.
var AssistantSettings = Settings{
	Stability:       0.75,
	SimilarityBoost: 0.85,
	Style:           0.2,
	UseSpeakerBoost: true,
}

type Voice struct {
	VoiceID     string `json:"voice_id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	PreviewURL  string `json:"preview_url,omitempty"`
}

type Client interface {
	// Generate synthesizes text with the given voice and returns raw
	// audio/mpeg bytes.
	Generate(ctx context.Context, voiceID, text string, settings Settings) ([]byte, error)
	ListVoices(ctx context.Context) ([]Voice, error)
}

type client struct {
	log        *logger.Logger
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration, log *logger.Logger) Client {
	if apiKey == "" {
		return nil
	}
	if baseURL == "" {
		baseURL = "https://api.elevenlabs.io/v1"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &client{
		log:        log.With("client", "VoiceAPI"),
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      "eleven_monolingual_v1",
		httpClient: &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Text          string   `json:"text"`
	VoiceSettings Settings `json:"voice_settings"`
	ModelID       string   `json:"model_id"`
}

func (c *client) Generate(ctx context.Context, voiceID, text string, settings Settings) ([]byte, error) {
	payload := generateRequest{
		Text:          text,
		VoiceSettings: settings,
		ModelID:       c.model,
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/text-to-speech/"+voiceID, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("voice synthesis request failed", "voice_id", voiceID, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn("voice synthesis returned non-2xx", "voice_id", voiceID, "status", resp.StatusCode)
		return nil, fmt.Errorf("voice api http %d: %s", resp.StatusCode, string(raw))
	}
	return raw, nil
}

type listVoicesResponse struct {
	Voices []Voice `json:"voices"`
}

func (c *client) ListVoices(ctx context.Context) ([]Voice, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/voices", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("voice api http %d: %s", resp.StatusCode, string(raw))
	}

	var out listVoicesResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("voice api decode error: %w", err)
	}
	return out.Voices, nil
}
