// Package tasteapi is a pure client of the external taste-intelligence API.
// Its response schema is externally owned and treated as opaque; callers
// validate it only at the point of reshaping into local types.
package tasteapi

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

type Client interface {
	Recommendations(ctx context.Context, req RecommendationsRequest) (*Response, error)
	Serendipity(ctx context.Context, req SerendipityRequest) (*Response, error)
	Influences(ctx context.Context, req InfluencesRequest) (*Response, error)
	Historical(ctx context.Context, req HistoricalRequest) (*Response, error)
}

// UserProfile is the locally stored preference aggregate forwarded upstream.
type UserProfile struct {
	Platforms   []string                     `json:"platforms"`
	Preferences map[string][]json.RawMessage `json:"preferences"`
}

type RecommendationsRequest struct {
	UserProfile         UserProfile `json:"user_profile"`
	RecommendationTypes []string    `json:"recommendation_types"`
	Count               int         `json:"count"`
	IncludeReasoning    bool        `json:"include_reasoning"`
}

type SerendipityRequest struct {
	UserProfile       UserProfile `json:"user_profile"`
	SurpriseFactor    float64     `json:"surprise_factor"`
	ConfidenceMinimum float64     `json:"confidence_minimum"`
	IncludeReasoning  bool        `json:"include_reasoning"`
}

type InfluencesRequest struct {
	UserProfile            UserProfile `json:"user_profile"`
	AnalysisDepth          string      `json:"analysis_depth"`
	IncludeCulturalContext bool        `json:"include_cultural_context"`
}

type HistoricalRequest struct {
	UserProfile            UserProfile `json:"user_profile"`
	TargetEra              string      `json:"target_era"`
	IncludeCulturalContext bool        `json:"include_cultural_context"`
}

type Entity struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Genre       string `json:"genre,omitempty"`
	Year        int    `json:"year,omitempty"`
	PreviewURL  string `json:"preview_url,omitempty"`
	ExternalURL string `json:"external_url,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

type Result struct {
	ID                 string          `json:"id"`
	Entity             Entity          `json:"entity"`
	ConfidenceScore    float64         `json:"confidence_score"`
	PredictedTimeframe string          `json:"predicted_timeframe"`
	Reasoning          string          `json:"reasoning"`
	Platform           string          `json:"platform"`
	Raw                json.RawMessage `json:"-"`
}

func (r *Result) UnmarshalJSON(data []byte) error {
	type alias Result
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*r = Result(a)
	r.Raw = append(json.RawMessage(nil), data...)
	return nil
}

type Response struct {
	Results  []Result       `json:"results"`
	Metadata map[string]any `json:"metadata"`
}

type httpError struct {
	StatusCode int
	Body       string
}

func (e *httpError) Error() string {
	return fmt.Sprintf("taste api http %d: %s", e.StatusCode, e.Body)
}

type client struct {
	log        *logger.Logger
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient returns a configured client, or nil when the API is not
// configured; callers translate a nil client into ServiceUnavailable rather
// than fabricating predictions.
func NewClient(baseURL, apiKey string, timeout time.Duration, log *logger.Logger) Client {
	if baseURL == "" || apiKey == "" {
		return nil
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &client{
		log:        log.With("client", "TasteAPI"),
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *client) Recommendations(ctx context.Context, req RecommendationsRequest) (*Response, error) {
	return c.post(ctx, "/recommendations", req)
}

func (c *client) Serendipity(ctx context.Context, req SerendipityRequest) (*Response, error) {
	return c.post(ctx, "/recommendations/serendipity", req)
}

func (c *client) Influences(ctx context.Context, req InfluencesRequest) (*Response, error) {
	return c.post(ctx, "/taste/influences", req)
}

func (c *client) Historical(ctx context.Context, req HistoricalRequest) (*Response, error) {
	return c.post(ctx, "/taste/historical", req)
}

// post makes exactly one attempt; relay requests are user-interactive and a
// failed call surfaces to the caller instead of being retried.
func (c *client) post(ctx context.Context, path string, body any) (*Response, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("taste api request failed", "path", path, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn("taste api returned non-2xx", "path", path, "status", resp.StatusCode)
		return nil, &httpError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var out Response
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("taste api decode error: %w", err)
	}
	return &out, nil
}
