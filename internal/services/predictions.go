package services

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ambjay/unveiled-prod/internal/clients/tasteapi"
	"github.com/ambjay/unveiled-prod/internal/data/repos/taste"
	"github.com/ambjay/unveiled-prod/internal/domain"
	"github.com/ambjay/unveiled-prod/internal/platform/apierr"
	"github.com/ambjay/unveiled-prod/internal/platform/logger"
)

const predictionSourceTasteAPI = "taste_api"

var predictionTypes = []string{"music", "video", "gaming", "books"}

type PredictionService interface {
	// Generate forwards the user's preference aggregate to the taste API
	// and persists every usable result as a prediction row.
	Generate(ctx context.Context, userID string) ([]*domain.Prediction, error)
	List(ctx context.Context, userID string, limit int) ([]*domain.Prediction, error)
}

type predictionService struct {
	db          *gorm.DB
	log         *logger.Logger
	profiles    ProfileService
	predictions taste.PredictionRepo
	api         tasteapi.Client
	tracker     TrackerService
}

func NewPredictionService(db *gorm.DB, baseLog *logger.Logger, profiles ProfileService, predictions taste.PredictionRepo, api tasteapi.Client, tracker TrackerService) PredictionService {
	return &predictionService{
		db:          db,
		log:         baseLog.With("service", "PredictionService"),
		profiles:    profiles,
		predictions: predictions,
		api:         api,
		tracker:     tracker,
	}
}

func (s *predictionService) Generate(ctx context.Context, userID string) ([]*domain.Prediction, error) {
	aggregate, err := s.profiles.Aggregate(ctx, userID)
	if err != nil {
		return nil, apierr.Internal("profile_read_failed", err)
	}

	if s.api == nil {
		return nil, apierr.Unavailable("taste_api_unconfigured",
			errors.New("taste predictions require the taste intelligence engine; configure the taste API"))
	}

	resp, err := s.api.Recommendations(ctx, tasteapi.RecommendationsRequest{
		UserProfile:         aggregate.UserProfile(),
		RecommendationTypes: predictionTypes,
		Count:               5,
		IncludeReasoning:    true,
	})
	if err != nil {
		return nil, apierr.Internal("taste_api_failed",
			errors.New("unable to generate predictions; please try again"))
	}

	usable := usableResults(resp)
	if len(usable) == 0 {
		return nil, apierr.NotFound("no_predictions",
			errors.New("no predictions available; try connecting more platforms to improve predictions"))
	}

	rows := make([]*domain.Prediction, 0, len(usable))
	for _, r := range usable {
		timeframe := r.PredictedTimeframe
		if timeframe == "" {
			timeframe = "Next 2 weeks"
		}
		reasoning := r.Reasoning
		if reasoning == "" {
			reasoning = "Based on your taste profile analysis"
		}
		rows = append(rows, &domain.Prediction{
			UserID:             userID,
			EntityName:         r.Entity.Name,
			EntityType:         r.Entity.Type,
			EntityMetadata:     datatypes.JSON(r.Raw),
			ConfidenceScore:    r.ConfidenceScore,
			PredictedTimeframe: timeframe,
			Reasoning:          reasoning,
			PredictionSource:   predictionSourceTasteAPI,
			ExternalID:         r.ID,
		})
	}
	if err := s.predictions.Create(ctx, nil, rows); err != nil {
		s.log.Error("prediction write failed", "user_id", userID, "error", err)
		return nil, apierr.Internal("prediction_write_failed", err)
	}

	s.tracker.Track(ctx, userID, "predictions_generated", map[string]any{
		"count": len(rows),
	}, "")

	return rows, nil
}

func (s *predictionService) List(ctx context.Context, userID string, limit int) ([]*domain.Prediction, error) {
	rows, err := s.profiles.ListPredictions(ctx, userID, limit)
	if err != nil {
		return nil, apierr.Internal("prediction_read_failed", err)
	}
	return rows, nil
}
