package services

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/ambjay/unveiled-prod/internal/clients/tasteapi"
	"github.com/ambjay/unveiled-prod/internal/data/repos/taste"
	"github.com/ambjay/unveiled-prod/internal/domain"
	"github.com/ambjay/unveiled-prod/internal/platform/logger"
)

// The aggregate buckets preference rows into the four categories the taste
// API understands; rows in other categories are ignored, matching upstream.
var profileCategories = []string{"music", "gaming", "video", "social"}

// TasteAggregate is everything locally known about a user's taste, shaped for
// forwarding to the taste-intelligence API.
type TasteAggregate struct {
	Platforms   []string                     `json:"platforms"`
	Preferences map[string][]json.RawMessage `json:"preferences"`
	Predictions []*domain.Prediction         `json:"predictions"`
}

func (a *TasteAggregate) UserProfile() tasteapi.UserProfile {
	return tasteapi.UserProfile{
		Platforms:   a.Platforms,
		Preferences: a.Preferences,
	}
}

type ProfileService interface {
	// Aggregate reads connections, preference rows and recent predictions
	// for the user. The three reads are independent local queries and run
	// in parallel.
	Aggregate(ctx context.Context, userID string) (*TasteAggregate, error)
	ListConnections(ctx context.Context, userID string) ([]*domain.PlatformConnection, error)
	ListPredictions(ctx context.Context, userID string, limit int) ([]*domain.Prediction, error)
}

type profileService struct {
	db          *gorm.DB
	log         *logger.Logger
	profiles    taste.ProfileRepo
	connections taste.ConnectionRepo
	predictions taste.PredictionRepo
}

func NewProfileService(db *gorm.DB, baseLog *logger.Logger, profiles taste.ProfileRepo, connections taste.ConnectionRepo, predictions taste.PredictionRepo) ProfileService {
	return &profileService{
		db:          db,
		log:         baseLog.With("service", "ProfileService"),
		profiles:    profiles,
		connections: connections,
		predictions: predictions,
	}
}

func (s *profileService) Aggregate(ctx context.Context, userID string) (*TasteAggregate, error) {
	var (
		rows  []*domain.TasteProfile
		conns []*domain.PlatformConnection
		preds []*domain.Prediction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.profiles.ListByUser(gctx, nil, userID)
		return err
	})
	g.Go(func() error {
		var err error
		conns, err = s.connections.ListActiveByUser(gctx, nil, userID)
		return err
	})
	g.Go(func() error {
		var err error
		preds, err = s.predictions.ListByUser(gctx, nil, userID, 10)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	platforms := make([]string, 0, len(conns))
	for _, c := range conns {
		platforms = append(platforms, c.PlatformName)
	}

	preferences := make(map[string][]json.RawMessage, len(profileCategories))
	for _, cat := range profileCategories {
		preferences[cat] = []json.RawMessage{}
	}
	for _, row := range rows {
		if _, ok := preferences[row.Category]; !ok {
			continue
		}
		preferences[row.Category] = append(preferences[row.Category], json.RawMessage(row.Data))
	}

	return &TasteAggregate{
		Platforms:   platforms,
		Preferences: preferences,
		Predictions: preds,
	}, nil
}

func (s *profileService) ListConnections(ctx context.Context, userID string) ([]*domain.PlatformConnection, error) {
	return s.connections.ListActiveByUser(ctx, nil, userID)
}

func (s *profileService) ListPredictions(ctx context.Context, userID string, limit int) ([]*domain.Prediction, error) {
	return s.predictions.ListByUser(ctx, nil, userID, limit)
}
