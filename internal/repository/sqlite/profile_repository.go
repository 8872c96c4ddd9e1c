package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"influencer-hub/internal/domain"
	"influencer-hub/internal/repository"
)

const createProfilesTable = `
CREATE TABLE IF NOT EXISTS influencer_profiles (
	id TEXT PRIMARY KEY,
	youtube_link TEXT NOT NULL,
	instagram_link TEXT NOT NULL,
	account_name TEXT NOT NULL,
	email TEXT NOT NULL,
	followers TEXT NOT NULL,
	category TEXT NOT NULL,
	profile_image_path TEXT NOT NULL,
	owner_user_id TEXT NOT NULL,
	created_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_profiles_owner ON influencer_profiles(owner_user_id);
`

type ProfileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) repository.ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createProfilesTable); err != nil {
		return fmt.Errorf("create influencer_profiles table: %w", err)
	}
	return nil
}

func (r *ProfileRepository) Create(ctx context.Context, profile *domain.InfluencerProfile) (string, error) {
	profile.ID = uuid.NewString()
	profile.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
INSERT INTO influencer_profiles
	(id, youtube_link, instagram_link, account_name, email, followers, category, profile_image_path, owner_user_id, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		profile.ID,
		profile.YoutubeLink,
		profile.InstagramLink,
		profile.AccountName,
		profile.Email,
		profile.Followers,
		profile.Category,
		profile.ProfileImagePath,
		profile.OwnerUserID,
		profile.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("insert profile: %w", err)
	}
	return profile.ID, nil
}

// GetByOwner returns the newest profile for the owner. Several profiles per
// user may exist; created_at with id as tiebreak makes the pick deterministic.
func (r *ProfileRepository) GetByOwner(ctx context.Context, ownerUserID string) (*domain.InfluencerProfile, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, youtube_link, instagram_link, account_name, email, followers, category, profile_image_path, owner_user_id, created_at
FROM influencer_profiles
WHERE owner_user_id = ?
ORDER BY created_at DESC, id DESC
LIMIT 1`,
		ownerUserID,
	)

	var profile domain.InfluencerProfile
	if err := scanProfile(row.Scan, &profile); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("profile: %w", repository.ErrNotFound)
		}
		return nil, fmt.Errorf("scan profile: %w", err)
	}
	return &profile, nil
}

func (r *ProfileRepository) List(ctx context.Context) ([]domain.InfluencerProfile, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, youtube_link, instagram_link, account_name, email, followers, category, profile_image_path, owner_user_id, created_at
FROM influencer_profiles
ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []domain.InfluencerProfile
	for rows.Next() {
		var profile domain.InfluencerProfile
		if err := scanProfile(rows.Scan, &profile); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profiles: %w", err)
	}
	return profiles, nil
}

func scanProfile(scan func(dest ...any) error, profile *domain.InfluencerProfile) error {
	return scan(
		&profile.ID,
		&profile.YoutubeLink,
		&profile.InstagramLink,
		&profile.AccountName,
		&profile.Email,
		&profile.Followers,
		&profile.Category,
		&profile.ProfileImagePath,
		&profile.OwnerUserID,
		&profile.CreatedAt,
	)
}
