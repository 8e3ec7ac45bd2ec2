package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ambjay/unveiled-prod/internal/clients/tasteapi"
	"github.com/ambjay/unveiled-prod/internal/platform/apierr"
)

func tasteResult(name string) tasteapi.Result {
	return tasteapi.Result{
		ID:              "rec_1",
		Entity:          tasteapi.Entity{Name: name, Type: "artist", Genre: "jazz"},
		ConfidenceScore: 0.91,
		Reasoning:       "adjacent to your listening history",
		Platform:        "spotify",
		Raw:             []byte(`{"id":"rec_1","entity":{"name":"` + name + `"}}`),
	}
}

func TestSurpriseUnconfiguredEngine(t *testing.T) {
	tracker := &fakeTracker{}
	history := &fakeSerendipityRepo{}
	svc := NewSerendipityService(nil, testLogger(t), &fakeProfiles{}, history, nil, tracker)

	_, err := svc.Surprise(context.Background(), "user_1")

	status, code := apierr.StatusOf(err)
	require.Equal(t, http.StatusServiceUnavailable, status)
	require.Equal(t, "taste_api_unconfigured", code)
	require.Empty(t, history.rows)
	require.Empty(t, tracker.events)
}

func TestSurpriseEngineFailure(t *testing.T) {
	api := &fakeTasteAPI{err: errors.New("upstream 500")}
	history := &fakeSerendipityRepo{}
	svc := NewSerendipityService(nil, testLogger(t), &fakeProfiles{}, history, api, &fakeTracker{})

	_, err := svc.Surprise(context.Background(), "user_1")

	status, code := apierr.StatusOf(err)
	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, "taste_api_failed", code)
	require.Empty(t, history.rows)
}

func TestSurpriseNoResults(t *testing.T) {
	api := &fakeTasteAPI{resp: &tasteapi.Response{}}
	svc := NewSerendipityService(nil, testLogger(t), &fakeProfiles{}, &fakeSerendipityRepo{}, api, &fakeTracker{})

	_, err := svc.Surprise(context.Background(), "user_1")

	status, code := apierr.StatusOf(err)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "no_recommendations", code)
}

func TestSurpriseNamelessResultsAreNotFound(t *testing.T) {
	api := &fakeTasteAPI{resp: &tasteapi.Response{
		Results: []tasteapi.Result{{ID: "rec_1", ConfidenceScore: 0.9}},
	}}
	svc := NewSerendipityService(nil, testLogger(t), &fakeProfiles{}, &fakeSerendipityRepo{}, api, &fakeTracker{})

	_, err := svc.Surprise(context.Background(), "user_1")

	status, code := apierr.StatusOf(err)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "no_recommendations", code)
}

func TestSurprisePersistsBeforeReturning(t *testing.T) {
	api := &fakeTasteAPI{resp: &tasteapi.Response{
		Results: []tasteapi.Result{tasteResult("Kamasi Washington"), tasteResult("Alice Coltrane")},
	}}
	tracker := &fakeTracker{}
	history := &fakeSerendipityRepo{}
	svc := NewSerendipityService(nil, testLogger(t), &fakeProfiles{}, history, api, tracker)

	view, err := svc.Surprise(context.Background(), "user_1")
	require.NoError(t, err)

	require.Equal(t, "Kamasi Washington", view.Title)
	require.Equal(t, "spotify", view.Platform)
	require.Equal(t, 0.91, view.Confidence)

	require.Len(t, history.rows, 1)
	require.Equal(t, "user_1", history.rows[0].UserID)
	require.Equal(t, serendipityAlgorithmVersion, history.rows[0].AlgorithmVersion)
	require.Contains(t, tracker.eventTypes(), "serendipity_request")
}

func TestSurpriseHistoryWriteFailure(t *testing.T) {
	api := &fakeTasteAPI{resp: &tasteapi.Response{Results: []tasteapi.Result{tasteResult("Kamasi Washington")}}}
	history := &fakeSerendipityRepo{err: errors.New("insert failed")}
	svc := NewSerendipityService(nil, testLogger(t), &fakeProfiles{}, history, api, &fakeTracker{})

	_, err := svc.Surprise(context.Background(), "user_1")

	status, code := apierr.StatusOf(err)
	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, "history_write_failed", code)
}

func TestSurpriseDefaultsPlatform(t *testing.T) {
	r := tasteResult("Kamasi Washington")
	r.Platform = ""
	api := &fakeTasteAPI{resp: &tasteapi.Response{Results: []tasteapi.Result{r}}}
	svc := NewSerendipityService(nil, testLogger(t), &fakeProfiles{}, &fakeSerendipityRepo{}, api, &fakeTracker{})

	view, err := svc.Surprise(context.Background(), "user_1")
	require.NoError(t, err)
	require.Equal(t, "Multiple", view.Platform)
}
