package tasteapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ambjay/unveiled-prod/internal/platform/logger"
)

func clientLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	require.NoError(t, err)
	return log
}

func TestNewClientUnconfigured(t *testing.T) {
	log := clientLogger(t)
	require.Nil(t, NewClient("", "key", time.Second, log))
	require.Nil(t, NewClient("http://taste.example", "", time.Second, log))
	require.NotNil(t, NewClient("http://taste.example", "key", time.Second, log))
}

func TestSerendipitySendsAuthAndPath(t *testing.T) {
	var gotPath, gotAuth, gotKey string
	var gotBody SerendipityRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotKey = r.Header.Get("X-API-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"id":"rec_1","entity":{"name":"Any"},"confidence_score":0.7}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret-key", time.Second, clientLogger(t))
	resp, err := c.Serendipity(context.Background(), SerendipityRequest{
		SurpriseFactor:    0.8,
		ConfidenceMinimum: 0.6,
		IncludeReasoning:  true,
	})
	require.NoError(t, err)

	require.Equal(t, "/recommendations/serendipity", gotPath)
	require.Equal(t, "Bearer secret-key", gotAuth)
	require.Equal(t, "secret-key", gotKey)
	require.Equal(t, 0.8, gotBody.SurpriseFactor)
	require.Len(t, resp.Results, 1)
	require.Equal(t, "Any", resp.Results[0].Entity.Name)
}

func TestResultPreservesRawPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[{"id":"rec_1","entity":{"name":"Any"},"cultural_context":"unmapped field"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key", time.Second, clientLogger(t))
	resp, err := c.Recommendations(context.Background(), RecommendationsRequest{Count: 5})
	require.NoError(t, err)

	// Fields outside the local schema survive in Raw for opaque storage.
	require.Contains(t, string(resp.Results[0].Raw), "cultural_context")
	require.Contains(t, string(resp.Results[0].Raw), "unmapped field")
}

func TestNon2xxIsError(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error":"upstream"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key", time.Second, clientLogger(t))
	_, err := c.Influences(context.Background(), InfluencesRequest{AnalysisDepth: "deep"})
	require.Error(t, err)
	// Exactly one attempt; relay calls are never retried.
	require.Equal(t, 1, calls)
}

func TestMalformedResponseIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": [`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key", time.Second, clientLogger(t))
	_, err := c.Historical(context.Background(), HistoricalRequest{TargetEra: "1970s"})
	require.Error(t, err)
}

func TestContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	c := NewClient(srv.URL, "key", time.Minute, clientLogger(t))
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Recommendations(ctx, RecommendationsRequest{})
	require.Error(t, err)
}
