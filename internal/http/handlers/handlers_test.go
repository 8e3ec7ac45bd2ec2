package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/ambjay/unveiled-prod/internal/clients/assistant"
	"github.com/ambjay/unveiled-prod/internal/clients/voice"
	"github.com/ambjay/unveiled-prod/internal/domain"
	"github.com/ambjay/unveiled-prod/internal/platform/apierr"
	"github.com/ambjay/unveiled-prod/internal/platform/logger"
	"github.com/ambjay/unveiled-prod/internal/requestdata"
	"github.com/ambjay/unveiled-prod/internal/services"
)

// asUser simulates the session middleware for handler tests.
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := requestdata.WithRequestData(c.Request.Context(), &requestdata.RequestData{UserID: userID})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func handlerLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	require.NoError(t, err)
	return log
}

type fakeSerendipitySvc struct {
	view *services.SerendipityView
	err  error
}

func (f *fakeSerendipitySvc) Surprise(ctx context.Context, userID string) (*services.SerendipityView, error) {
	return f.view, f.err
}

func TestSurpriseRequiresSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/serendipity", NewSerendipityHandler(&fakeSerendipitySvc{}).Surprise)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/serendipity", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSurpriseMapsServiceErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeSerendipitySvc{err: apierr.Unavailable("taste_api_unconfigured", nil)}
	router := gin.New()
	router.POST("/api/serendipity", asUser("user_1"), NewSerendipityHandler(svc).Surprise)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/serendipity", nil))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Contains(t, w.Body.String(), "taste_api_unconfigured")
}

func TestSurpriseReturnsView(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeSerendipitySvc{view: &services.SerendipityView{Title: "Kamasi Washington", Platform: "spotify"}}
	router := gin.New()
	router.POST("/api/serendipity", asUser("user_1"), NewSerendipityHandler(svc).Surprise)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/serendipity", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Kamasi Washington")
}

type fakeSpeechSvc struct {
	audio []byte
	err   error
}

func (f *fakeSpeechSvc) AssistantSpeech(ctx context.Context, userID, text string) ([]byte, error) {
	return f.audio, f.err
}

func (f *fakeSpeechSvc) TestSpeech(ctx context.Context, voiceID, text string) ([]byte, error) {
	return f.audio, f.err
}

func (f *fakeSpeechSvc) ListVoices(ctx context.Context) ([]voice.Voice, error) {
	return nil, f.err
}

func TestVoiceAssistantReturnsAudio(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/voice/geoffrey", asUser("user_1"), NewVoiceHandler(&fakeSpeechSvc{audio: []byte("mp3bytes")}).Assistant)

	req := httptest.NewRequest(http.MethodPost, "/api/voice/geoffrey", strings.NewReader(`{"text":"Hello"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "audio/mpeg", w.Header().Get("Content-Type"))
	require.Equal(t, "mp3bytes", w.Body.String())
}

func TestVoiceAssistantMapsLengthError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeSpeechSvc{err: apierr.BadRequest("invalid_text_length", nil)}
	router := gin.New()
	router.POST("/api/voice/geoffrey", asUser("user_1"), NewVoiceHandler(svc).Assistant)

	req := httptest.NewRequest(http.MethodPost, "/api/voice/geoffrey", strings.NewReader(`{"text":""}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "invalid_text_length")
}

type fakeAssistantSvc struct {
	deltas   []string
	fallback bool
	err      error
	history  []*domain.ChatMessage
}

func (f *fakeAssistantSvc) Chat(ctx context.Context, userID string, messages []assistant.Message, sink func(string) error) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, d := range f.deltas {
		if err := sink(d); err != nil {
			return false, err
		}
	}
	return f.fallback, nil
}

func (f *fakeAssistantSvc) History(ctx context.Context, userID string, limit int) ([]*domain.ChatMessage, error) {
	return f.history, f.err
}

func TestGeoffreyChatStreamsPlainText(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeAssistantSvc{deltas: []string{"You like ", "jazz."}}
	router := gin.New()
	router.POST("/api/geoffrey", asUser("user_1"), NewGeoffreyHandler(handlerLogger(t), svc).Chat)

	req := httptest.NewRequest(http.MethodPost, "/api/geoffrey",
		strings.NewReader(`{"messages":[{"role":"user","content":"hi"}]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	require.Equal(t, "You like jazz.", w.Body.String())
}

func TestGeoffreyChatPreStreamErrorIsJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeAssistantSvc{err: apierr.BadRequest("missing_messages", nil)}
	router := gin.New()
	router.POST("/api/geoffrey", asUser("user_1"), NewGeoffreyHandler(handlerLogger(t), svc).Chat)

	req := httptest.NewRequest(http.MethodPost, "/api/geoffrey", strings.NewReader(`{"messages":[]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "missing_messages")
}

func TestInsightsCatalogsAreServed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewInsightsHandler()
	router := gin.New()
	router.GET("/api/dna", asUser("user_1"), h.CulturalDNA)
	router.GET("/api/predictions/advanced", asUser("user_1"), h.AdvancedPredictions)
	router.GET("/api/social", asUser("user_1"), h.SocialNetwork)

	for _, path := range []string{"/api/dna", "/api/predictions/advanced", "/api/social"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, w.Code, path)
		require.NotEmpty(t, w.Body.String(), path)
	}
}

type fakePinger struct{ err error }

func (f *fakePinger) Ping() error { return f.err }

func TestDatabaseHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/health/database", NewHealthHandler(handlerLogger(t), &fakePinger{}).Database)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health/database", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "healthy")
}

func TestDatabaseHealthFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/health/database", NewHealthHandler(handlerLogger(t), &fakePinger{err: context.DeadlineExceeded}).Database)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health/database", nil))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Contains(t, w.Body.String(), "unhealthy")
}
