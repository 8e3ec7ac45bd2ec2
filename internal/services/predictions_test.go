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

func TestGenerateUnconfiguredEngine(t *testing.T) {
	repo := &fakePredictionRepo{}
	svc := NewPredictionService(nil, testLogger(t), &fakeProfiles{}, repo, nil, &fakeTracker{})

	_, err := svc.Generate(context.Background(), "user_1")

	status, code := apierr.StatusOf(err)
	require.Equal(t, http.StatusServiceUnavailable, status)
	require.Equal(t, "taste_api_unconfigured", code)
	require.Empty(t, repo.created)
}

func TestGenerateNoUsableResults(t *testing.T) {
	api := &fakeTasteAPI{resp: &tasteapi.Response{
		Results: []tasteapi.Result{{ID: "rec_1"}},
	}}
	repo := &fakePredictionRepo{}
	svc := NewPredictionService(nil, testLogger(t), &fakeProfiles{}, repo, api, &fakeTracker{})

	_, err := svc.Generate(context.Background(), "user_1")

	status, code := apierr.StatusOf(err)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "no_predictions", code)
	require.Empty(t, repo.created)
}

func TestGeneratePersistsUsableResults(t *testing.T) {
	named := tasteResult("Dune Part Three")
	nameless := tasteapi.Result{ID: "rec_2", ConfidenceScore: 0.8}
	api := &fakeTasteAPI{resp: &tasteapi.Response{Results: []tasteapi.Result{named, nameless}}}
	repo := &fakePredictionRepo{}
	tracker := &fakeTracker{}
	svc := NewPredictionService(nil, testLogger(t), &fakeProfiles{}, repo, api, tracker)

	rows, err := svc.Generate(context.Background(), "user_1")
	require.NoError(t, err)

	require.Len(t, rows, 1)
	require.Len(t, repo.created, 1)
	require.Equal(t, "Dune Part Three", repo.created[0].EntityName)
	require.Equal(t, predictionSourceTasteAPI, repo.created[0].PredictionSource)
	require.Equal(t, "rec_1", repo.created[0].ExternalID)
	require.Contains(t, tracker.eventTypes(), "predictions_generated")
}

func TestGenerateFillsDefaults(t *testing.T) {
	r := tasteResult("Dune Part Three")
	r.PredictedTimeframe = ""
	r.Reasoning = ""
	api := &fakeTasteAPI{resp: &tasteapi.Response{Results: []tasteapi.Result{r}}}
	repo := &fakePredictionRepo{}
	svc := NewPredictionService(nil, testLogger(t), &fakeProfiles{}, repo, api, &fakeTracker{})

	rows, err := svc.Generate(context.Background(), "user_1")
	require.NoError(t, err)
	require.Equal(t, "Next 2 weeks", rows[0].PredictedTimeframe)
	require.Equal(t, "Based on your taste profile analysis", rows[0].Reasoning)
}

func TestGenerateWriteFailure(t *testing.T) {
	api := &fakeTasteAPI{resp: &tasteapi.Response{Results: []tasteapi.Result{tasteResult("Dune Part Three")}}}
	repo := &fakePredictionRepo{err: errors.New("insert failed")}
	tracker := &fakeTracker{}
	svc := NewPredictionService(nil, testLogger(t), &fakeProfiles{}, repo, api, tracker)

	_, err := svc.Generate(context.Background(), "user_1")

	status, code := apierr.StatusOf(err)
	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, "prediction_write_failed", code)
	require.NotContains(t, tracker.eventTypes(), "predictions_generated")
}
