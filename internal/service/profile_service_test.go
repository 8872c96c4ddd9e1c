package service_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"influencer-hub/internal/repository/sqlite"
	"influencer-hub/internal/service"
	"influencer-hub/internal/storage"
)

func newProfileService(t *testing.T) (service.ProfileService, storage.Service) {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := sqlite.NewProfileRepository(db)
	require.NoError(t, repo.Init(context.Background()))

	store, err := storage.NewLocalService(t.TempDir(), "/uploads")
	require.NoError(t, err)

	return service.NewProfileService(repo, store), store
}

func validFields() service.ProfileFields {
	return service.ProfileFields{
		YoutubeLink:   "https://youtube.com/@dave",
		InstagramLink: "https://instagram.com/dave",
		AccountName:   "dave",
		Email:         "dave@example.com",
		Followers:     "12000",
		Category:      "tech",
	}
}

func testImage() service.ImageUpload {
	return service.ImageUpload{Filename: "pic.png", Reader: strings.NewReader("png-bytes")}
}

func TestCreateProfile_And_GetByOwner(t *testing.T) {
	svc, _ := newProfileService(t)
	ctx := context.Background()

	created, err := svc.CreateProfile(ctx, validFields(), testImage(), "owner-1")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := svc.GetByOwner(ctx, "owner-1")
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, "dave", got.AccountName)
	require.Regexp(t, `^/uploads/.+\.png$`, got.ProfileImagePath)
	require.Equal(t, "owner-1", got.OwnerUserID)
}

func TestCreateProfile_MissingImage(t *testing.T) {
	svc, _ := newProfileService(t)

	_, err := svc.CreateProfile(context.Background(), validFields(), service.ImageUpload{}, "owner-1")
	require.ErrorIs(t, err, service.ErrInvalidProfile)

	_, err = svc.GetByOwner(context.Background(), "owner-1")
	require.ErrorIs(t, err, service.ErrProfileNotFound)
}

func TestCreateProfile_MissingField(t *testing.T) {
	svc, store := newProfileService(t)

	fields := validFields()
	fields.Category = ""
	_, err := svc.CreateProfile(context.Background(), fields, testImage(), "owner-1")
	require.ErrorIs(t, err, service.ErrInvalidProfile)
	require.ErrorContains(t, err, "category is required")

	// validation runs before the image is written, so nothing is left behind
	objects, err := store.ListObjects(context.Background(), "")
	require.NoError(t, err)
	require.Empty(t, objects)
}

func TestGetByOwner_ReturnsNewestProfile(t *testing.T) {
	svc, _ := newProfileService(t)
	ctx := context.Background()

	first := validFields()
	first.AccountName = "first"
	_, err := svc.CreateProfile(ctx, first, testImage(), "owner-1")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	second := validFields()
	second.AccountName = "second"
	_, err = svc.CreateProfile(ctx, second, testImage(), "owner-1")
	require.NoError(t, err)

	got, err := svc.GetByOwner(ctx, "owner-1")
	require.NoError(t, err)
	require.Equal(t, "second", got.AccountName)
}

func TestGetByOwner_NotFound(t *testing.T) {
	svc, _ := newProfileService(t)

	_, err := svc.GetByOwner(context.Background(), "nobody")
	require.ErrorIs(t, err, service.ErrProfileNotFound)
}

func TestListProfiles(t *testing.T) {
	svc, _ := newProfileService(t)
	ctx := context.Background()

	profiles, err := svc.ListProfiles(ctx)
	require.NoError(t, err)
	require.Empty(t, profiles)

	for i, owner := range []string{"owner-1", "owner-1", "owner-2"} {
		fields := validFields()
		fields.AccountName = fields.AccountName + string(rune('a'+i))
		_, err := svc.CreateProfile(ctx, fields, testImage(), owner)
		require.NoError(t, err)
	}

	profiles, err = svc.ListProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 3)
}
