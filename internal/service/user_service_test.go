package service_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"influencer-hub/internal/repository"
	"influencer-hub/internal/repository/sqlite"
	"influencer-hub/internal/service"
)

func newUserService(t *testing.T) (service.UserService, repository.UserRepository) {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := sqlite.NewUserRepository(db)
	require.NoError(t, repo.Init(context.Background()))

	return service.NewUserService(repo), repo
}

func TestRegister_And_Authenticate(t *testing.T) {
	svc, repo := newUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice@example.com", "s3cret-pass")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "alice@example.com", user.Email)
	require.Empty(t, user.PasswordHash, "service must not leak the hash")

	stored, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", stored.PasswordHash, "password must not be stored in plaintext")

	got, err := svc.Authenticate(ctx, "alice@example.com", "s3cret-pass")
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "bob@example.com", "password-1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "bob@example.com", "other-password")
	require.ErrorIs(t, err, service.ErrUserAlreadyExists)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "carol@example.com", "right-password")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "carol@example.com", "wrong-password")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.Authenticate(context.Background(), "nobody@example.com", "whatever")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.GetByID(context.Background(), "missing-id")
	require.ErrorIs(t, err, service.ErrUserNotFound)
}
