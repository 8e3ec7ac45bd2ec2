package services

import (
	"context"
	"encoding/json"
	"testing"

	"gorm.io/gorm"

	"github.com/ambjay/unveiled-prod/internal/clients/assistant"
	"github.com/ambjay/unveiled-prod/internal/clients/tasteapi"
	"github.com/ambjay/unveiled-prod/internal/clients/voice"
	"github.com/ambjay/unveiled-prod/internal/domain"
	"github.com/ambjay/unveiled-prod/internal/platform/logger"
)

func testLogger(tb testing.TB) *logger.Logger {
	tb.Helper()
	log, err := logger.New("test")
	if err != nil {
		tb.Fatalf("init logger: %v", err)
	}
	return log
}

type trackedEvent struct {
	UserID    string
	EventType string
	EventData map[string]any
}

type fakeTracker struct {
	events []trackedEvent
}

func (f *fakeTracker) Track(ctx context.Context, userID, eventType string, eventData map[string]any, sessionID string) {
	f.events = append(f.events, trackedEvent{UserID: userID, EventType: eventType, EventData: eventData})
}

func (f *fakeTracker) eventTypes() []string {
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.EventType)
	}
	return out
}

type fakeProfiles struct {
	aggregate *TasteAggregate
	err       error
}

func (f *fakeProfiles) Aggregate(ctx context.Context, userID string) (*TasteAggregate, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.aggregate != nil {
		return f.aggregate, nil
	}
	return &TasteAggregate{
		Platforms:   []string{"spotify"},
		Preferences: map[string][]json.RawMessage{},
	}, nil
}

func (f *fakeProfiles) ListConnections(ctx context.Context, userID string) ([]*domain.PlatformConnection, error) {
	return nil, nil
}

func (f *fakeProfiles) ListPredictions(ctx context.Context, userID string, limit int) ([]*domain.Prediction, error) {
	return nil, nil
}

type fakeTasteAPI struct {
	resp     *tasteapi.Response
	err      error
	requests []string
}

func (f *fakeTasteAPI) Recommendations(ctx context.Context, req tasteapi.RecommendationsRequest) (*tasteapi.Response, error) {
	f.requests = append(f.requests, "recommendations")
	return f.resp, f.err
}

func (f *fakeTasteAPI) Serendipity(ctx context.Context, req tasteapi.SerendipityRequest) (*tasteapi.Response, error) {
	f.requests = append(f.requests, "serendipity")
	return f.resp, f.err
}

func (f *fakeTasteAPI) Influences(ctx context.Context, req tasteapi.InfluencesRequest) (*tasteapi.Response, error) {
	f.requests = append(f.requests, "influences")
	return f.resp, f.err
}

func (f *fakeTasteAPI) Historical(ctx context.Context, req tasteapi.HistoricalRequest) (*tasteapi.Response, error) {
	f.requests = append(f.requests, "historical")
	return f.resp, f.err
}

type fakeSerendipityRepo struct {
	rows []*domain.SerendipityRecommendation
	err  error
}

func (f *fakeSerendipityRepo) Create(ctx context.Context, tx *gorm.DB, row *domain.SerendipityRecommendation) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, row)
	return nil
}

type fakePredictionRepo struct {
	created []*domain.Prediction
	listed  []*domain.Prediction
	err     error
}

func (f *fakePredictionRepo) Create(ctx context.Context, tx *gorm.DB, rows []*domain.Prediction) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, rows...)
	return nil
}

func (f *fakePredictionRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID string, limit int) ([]*domain.Prediction, error) {
	return f.listed, f.err
}

type fakeUserRepo struct {
	upserts []*domain.User
	err     error
}

func (f *fakeUserRepo) Upsert(ctx context.Context, tx *gorm.DB, u *domain.User) error {
	if f.err != nil {
		return f.err
	}
	f.upserts = append(f.upserts, u)
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, tx *gorm.DB, id string) (*domain.User, error) {
	for _, u := range f.upserts {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeMessageRepo struct {
	rows []*domain.ChatMessage
	err  error
}

func (f *fakeMessageRepo) Create(ctx context.Context, tx *gorm.DB, row *domain.ChatMessage) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, row)
	return nil
}

func (f *fakeMessageRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID string, limit int) ([]*domain.ChatMessage, error) {
	return f.rows, f.err
}

type voiceCall struct {
	VoiceID string
	Text    string
}

type fakeVoiceClient struct {
	calls  []voiceCall
	audio  []byte
	voices []voice.Voice
	err    error
}

func (f *fakeVoiceClient) Generate(ctx context.Context, voiceID, text string, settings voice.Settings) ([]byte, error) {
	f.calls = append(f.calls, voiceCall{VoiceID: voiceID, Text: text})
	if f.err != nil {
		return nil, f.err
	}
	return f.audio, nil
}

func (f *fakeVoiceClient) ListVoices(ctx context.Context) ([]voice.Voice, error) {
	return f.voices, f.err
}

type fakeAssistantClient struct {
	deltas []string
	err    error
}

func (f *fakeAssistantClient) StreamChat(ctx context.Context, system string, messages []assistant.Message, onDelta func(string) error) (string, error) {
	full := ""
	for _, d := range f.deltas {
		if err := onDelta(d); err != nil {
			return full, err
		}
		full += d
	}
	return full, f.err
}
