// Package assistant talks to the OpenAI-compatible chat completion endpoint
// that backs the Geoffrey conversational interface.
package assistant

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/ambjay/unveiled-prod/internal/platform/logger"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Client interface {
	// StreamChat streams completion deltas to onDelta as they arrive and
	// returns the full concatenated response once the stream ends.
	StreamChat(ctx context.Context, system string, messages []Message, onDelta func(delta string) error) (string, error)
}

type client struct {
	log       *logger.Logger
	api       *openai.Client
	model     string
	maxTokens int
}

func NewClient(baseURL, apiKey, model string, timeout time.Duration, log *logger.Logger) Client {
	if apiKey == "" {
		return nil
	}
	if model == "" {
		model = "llama-3.1-70b-versatile"
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if timeout > 0 {
		cfg.HTTPClient = &http.Client{Timeout: timeout}
	}
	return &client{
		log:       log.With("client", "Assistant"),
		api:       openai.NewClientWithConfig(cfg),
		model:     model,
		maxTokens: 500,
	}
}

func (c *client) StreamChat(ctx context.Context, system string, messages []Message, onDelta func(string) error) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.7,
		MaxTokens:   c.maxTokens,
		Stream:      true,
		Messages:    make([]openai.ChatCompletionMessage, 0, len(messages)+1),
	}
	if system != "" {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	stream, err := c.api.CreateChatCompletionStream(ctx, req)
	if err != nil {
		c.log.Warn("assistant stream open failed", "error", err)
		return "", err
	}
	defer stream.Close()

	var full strings.Builder
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			c.log.Warn("assistant stream recv failed", "error", err)
			return full.String(), err
		}
		if len(resp.Choices) == 0 {
			continue
		}
		delta := resp.Choices[0].Delta.Content
		if delta == "" {
			continue
		}
		full.WriteString(delta)
		if onDelta != nil {
			if err := onDelta(delta); err != nil {
				return full.String(), err
			}
		}
	}
	return full.String(), nil
}
