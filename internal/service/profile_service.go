package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"influencer-hub/internal/domain"
	"influencer-hub/internal/repository"
	"influencer-hub/internal/storage"
)

var (
	// ErrProfileNotFound is returned when a user has no influencer profile yet.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrInvalidProfile marks caller-supplied profile input that fails validation.
	ErrInvalidProfile = errors.New("invalid profile")
)

// ProfileFields carries the caller-supplied part of a new profile.
type ProfileFields struct {
	YoutubeLink   string
	InstagramLink string
	AccountName   string
	Email         string
	Followers     string
	Category      string
}

// ImageUpload is the profile image attached to a creation request.
type ImageUpload struct {
	Filename string
	Reader   io.Reader
}

// ProfileService coordinates influencer profile operations backed by the repository.
type ProfileService interface {
	CreateProfile(ctx context.Context, fields ProfileFields, image ImageUpload, ownerUserID string) (*domain.InfluencerProfile, error)
	GetByOwner(ctx context.Context, ownerUserID string) (*domain.InfluencerProfile, error)
	ListProfiles(ctx context.Context) ([]domain.InfluencerProfile, error)
}

type profileService struct {
	profiles repository.ProfileRepository
	images   storage.Service
}

func NewProfileService(profiles repository.ProfileRepository, images storage.Service) ProfileService {
	return &profileService{profiles: profiles, images: images}
}

// CreateProfile validates all fields before the image is written, so a
// rejected request never leaves an orphan file in storage.
func (s *profileService) CreateProfile(ctx context.Context, fields ProfileFields, image ImageUpload, ownerUserID string) (*domain.InfluencerProfile, error) {
	if image.Reader == nil {
		return nil, fmt.Errorf("%w: profile image is required", ErrInvalidProfile)
	}
	if strings.TrimSpace(ownerUserID) == "" {
		return nil, errors.New("owner user id is required")
	}
	required := []struct {
		name, value string
	}{
		{"youtubeLink", fields.YoutubeLink},
		{"instagramLink", fields.InstagramLink},
		{"accountName", fields.AccountName},
		{"email", fields.Email},
		{"followers", fields.Followers},
		{"category", fields.Category},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return nil, fmt.Errorf("%w: %s is required", ErrInvalidProfile, f.name)
		}
	}

	imagePath, err := s.images.SaveImage(ctx, image.Filename, image.Reader)
	if err != nil {
		return nil, fmt.Errorf("save profile image: %w", err)
	}

	profile := &domain.InfluencerProfile{
		YoutubeLink:      strings.TrimSpace(fields.YoutubeLink),
		InstagramLink:    strings.TrimSpace(fields.InstagramLink),
		AccountName:      strings.TrimSpace(fields.AccountName),
		Email:            strings.TrimSpace(fields.Email),
		Followers:        strings.TrimSpace(fields.Followers),
		Category:         strings.TrimSpace(fields.Category),
		ProfileImagePath: imagePath,
		OwnerUserID:      ownerUserID,
	}

	if _, err := s.profiles.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *profileService) GetByOwner(ctx context.Context, ownerUserID string) (*domain.InfluencerProfile, error) {
	profile, err := s.profiles.GetByOwner(ctx, ownerUserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *profileService) ListProfiles(ctx context.Context) ([]domain.InfluencerProfile, error) {
	return s.profiles.List(ctx)
}
