package domain

import "time"

// InfluencerProfile is the public-facing profile an influencer fills in.
// A profile always belongs to exactly one user; a user may create several
// profiles, in which case the owner lookup resolves to the newest one.
type InfluencerProfile struct {
	ID               string
	YoutubeLink      string
	InstagramLink    string
	AccountName      string
	Email            string
	Followers        string
	Category         string
	ProfileImagePath string
	OwnerUserID      string
	CreatedAt        time.Time
}
