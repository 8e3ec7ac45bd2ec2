package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ambjay/unveiled-prod/internal/clients/assistant"
	chatrepo "github.com/ambjay/unveiled-prod/internal/data/repos/chat"
	"github.com/ambjay/unveiled-prod/internal/domain"
	"github.com/ambjay/unveiled-prod/internal/platform/apierr"
	"github.com/ambjay/unveiled-prod/internal/platform/logger"
)

// FallbackReply is the one permitted canned assistant response, used when
// the conversational model is unavailable. Every other degraded dependency
// in the system surfaces an honest error instead.
const FallbackReply = "I'm having trouble accessing your taste profile right now. " +
	"Please make sure your platforms are connected and your taste engine integration is working."

const assistantSystemPrompt = `You are Geoffrey, an AI taste assistant with deep knowledge of the user's cultural preferences. You help users understand and explore their taste predictions and cultural DNA.

IMPORTANT: You do NOT generate predictions. You help users understand the predictions and analysis produced by the taste intelligence engine.

User's taste profile:
%s

User's current predictions:
%s

Your role:
- Help users understand their predictions and the reasoning behind them
- Reference specific predictions and confidence scores
- Suggest platform connections to improve predictions
- Be conversational but always ground responses in the taste data above
- If asked for new predictions, explain that you help interpret the existing analysis

You are the conversational interface to the taste intelligence engine, not a replacement for it.`

// AssistantService drives the Geoffrey chat. The response streams to the
// caller first; persisting the conversation happens on a detached task whose
// failure never reaches the user.
type AssistantService interface {
	// Chat streams the reply through sink and reports whether the canned
	// fallback was used instead of a model completion.
	Chat(ctx context.Context, userID string, messages []assistant.Message, sink func(delta string) error) (fallback bool, err error)
	History(ctx context.Context, userID string, limit int) ([]*domain.ChatMessage, error)
}

type assistantService struct {
	db       *gorm.DB
	log      *logger.Logger
	profiles ProfileService
	messages chatrepo.MessageRepo
	model    assistant.Client
	modelTag string
	tracker  TrackerService
	runner   *BackgroundRunner
}

func NewAssistantService(db *gorm.DB, baseLog *logger.Logger, profiles ProfileService, messages chatrepo.MessageRepo, model assistant.Client, modelTag string, tracker TrackerService, runner *BackgroundRunner) AssistantService {
	return &assistantService{
		db:       db,
		log:      baseLog.With("service", "AssistantService"),
		profiles: profiles,
		messages: messages,
		model:    model,
		modelTag: modelTag,
		tracker:  tracker,
		runner:   runner,
	}
}

func (s *assistantService) Chat(ctx context.Context, userID string, messages []assistant.Message, sink func(string) error) (bool, error) {
	if len(messages) == 0 {
		return false, apierr.BadRequest("missing_messages", errors.New("messages are required"))
	}
	last := messages[len(messages)-1]
	if last.Content == "" {
		return false, apierr.BadRequest("empty_message", errors.New("last message has no content"))
	}

	aggregate, err := s.profiles.Aggregate(ctx, userID)
	if err != nil {
		return false, apierr.Internal("profile_read_failed", err)
	}

	s.tracker.Track(ctx, userID, "geoffrey_chat", map[string]any{
		"message_length":      len(last.Content),
		"conversation_length": len(messages),
	}, "")

	if s.model == nil {
		return true, sink(FallbackReply)
	}

	profileJSON, _ := json.Marshal(aggregate.UserProfile())
	predictionsJSON, _ := json.Marshal(aggregate.Predictions)
	system := fmt.Sprintf(assistantSystemPrompt, profileJSON, predictionsJSON)

	full, err := s.model.StreamChat(ctx, system, messages, sink)
	if err != nil {
		if full != "" {
			// The stream broke mid-response; the partial answer is
			// already with the caller, nothing sensible to add.
			s.log.Warn("assistant stream broke mid-response", "error", err)
			return false, nil
		}
		s.log.Warn("assistant unavailable, serving fallback", "error", err)
		return true, sink(FallbackReply)
	}

	userMessage := last.Content
	predictionCount := len(aggregate.Predictions)
	s.runner.Go("save_chat_message", func(taskCtx context.Context) error {
		contextData, _ := json.Marshal(map[string]any{
			"model":                  s.modelTag,
			"predictions_referenced": predictionCount,
		})
		return s.messages.Create(taskCtx, nil, &domain.ChatMessage{
			UserID:      userID,
			Message:     userMessage,
			Response:    full,
			MessageType: "chat",
			ContextData: datatypes.JSON(contextData),
		})
	})

	return false, nil
}

func (s *assistantService) History(ctx context.Context, userID string, limit int) ([]*domain.ChatMessage, error) {
	rows, err := s.messages.ListByUser(ctx, nil, userID, limit)
	if err != nil {
		return nil, apierr.Internal("chat_history_read_failed", err)
	}
	return rows, nil
}
