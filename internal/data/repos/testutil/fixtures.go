package testutil

import (
	"context"
	"testing"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/ambjay/unveiled-prod/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, id, email string) *domain.User {
	tb.Helper()
	u := &domain.User{
		ID:        id,
		Email:     email,
		FirstName: "A",
		LastName:  "B",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedConnection(tb testing.TB, ctx context.Context, tx *gorm.DB, userID, platform string) *domain.PlatformConnection {
	tb.Helper()
	pc := &domain.PlatformConnection{
		UserID:       userID,
		PlatformName: platform,
		IsActive:     true,
		ConnectedAt:  time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(pc).Error; err != nil {
		tb.Fatalf("seed platform connection: %v", err)
	}
	return pc
}

func SeedTasteProfile(tb testing.TB, ctx context.Context, tx *gorm.DB, userID, platform, category string) *domain.TasteProfile {
	tb.Helper()
	tp := &domain.TasteProfile{
		UserID:          userID,
		Platform:        platform,
		Category:        category,
		Data:            datatypes.JSON([]byte(`{"genres":["ambient"]}`)),
		ConfidenceScore: 0.5,
	}
	if err := tx.WithContext(ctx).Create(tp).Error; err != nil {
		tb.Fatalf("seed taste profile: %v", err)
	}
	return tp
}
