package services

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/ambjay/unveiled-prod/internal/clients/voice"
	"github.com/ambjay/unveiled-prod/internal/platform/apierr"
	"github.com/ambjay/unveiled-prod/internal/platform/logger"
)

const (
	// The assistant reads full replies aloud; the test path only previews
	// a voice.
	assistantSpeechMaxChars = 1000
	testSpeechMaxChars      = 200
)

type SpeechService interface {
	// AssistantSpeech synthesizes Geoffrey's reply audio.
	AssistantSpeech(ctx context.Context, userID, text string) ([]byte, error)
	// TestSpeech previews an arbitrary voice; text beyond the preview
	// limit is truncated rather than rejected.
	TestSpeech(ctx context.Context, voiceID, text string) ([]byte, error)
	ListVoices(ctx context.Context) ([]voice.Voice, error)
}

type speechService struct {
	log            *logger.Logger
	client         voice.Client
	assistantVoice string
	tracker        TrackerService
}

func NewSpeechService(baseLog *logger.Logger, client voice.Client, assistantVoice string, tracker TrackerService) SpeechService {
	return &speechService{
		log:            baseLog.With("service", "SpeechService"),
		client:         client,
		assistantVoice: assistantVoice,
		tracker:        tracker,
	}
}

func (s *speechService) AssistantSpeech(ctx context.Context, userID, text string) ([]byte, error) {
	if text == "" || utf8.RuneCountInString(text) > assistantSpeechMaxChars {
		return nil, apierr.BadRequest("invalid_text_length", errors.New("text must be 1-1000 characters"))
	}

	if s.client == nil {
		return nil, apierr.Unavailable("voice_unconfigured", errors.New("voice generation not available"))
	}

	s.tracker.Track(ctx, userID, "voice_generation", map[string]any{
		"text_length": utf8.RuneCountInString(text),
	}, "")

	audio, err := s.client.Generate(ctx, s.assistantVoice, text, voice.AssistantSettings)
	if err != nil {
		return nil, apierr.Internal("voice_generation_failed", errors.New("voice generation failed"))
	}
	return audio, nil
}

func (s *speechService) TestSpeech(ctx context.Context, voiceID, text string) ([]byte, error) {
	if voiceID == "" || text == "" {
		return nil, apierr.BadRequest("missing_voice_or_text", errors.New("voice_id and text are required"))
	}
	if runes := []rune(text); len(runes) > testSpeechMaxChars {
		text = string(runes[:testSpeechMaxChars])
	}

	if s.client == nil {
		return nil, apierr.Unavailable("voice_unconfigured", errors.New("voice generation not available"))
	}

	audio, err := s.client.Generate(ctx, voiceID, text, voice.AssistantSettings)
	if err != nil {
		return nil, apierr.Internal("voice_generation_failed", errors.New("voice test failed"))
	}
	return audio, nil
}

func (s *speechService) ListVoices(ctx context.Context) ([]voice.Voice, error) {
	if s.client == nil {
		return []voice.Voice{}, nil
	}
	voices, err := s.client.ListVoices(ctx)
	if err != nil {
		s.log.Error("voice list failed", "error", err)
		return nil, apierr.Internal("voice_list_failed", errors.New("unable to list voices"))
	}
	return voices, nil
}
