package repository

import (
	"context"

	"influencer-hub/internal/domain"
)

// ProfileRepository defines persistence operations for InfluencerProfile entities.
type ProfileRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, profile *domain.InfluencerProfile) (string, error)
	// GetByOwner returns the owner's most recently created profile.
	GetByOwner(ctx context.Context, ownerUserID string) (*domain.InfluencerProfile, error)
	List(ctx context.Context) ([]domain.InfluencerProfile, error)
}
