package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"influencer-hub/internal/storage"
)

func TestLocalService_SaveImage(t *testing.T) {
	dir := t.TempDir()
	svc, err := storage.NewLocalService(dir, "/uploads")
	require.NoError(t, err)

	url, err := svc.SaveImage(context.Background(), "avatar.png", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "/uploads/"))
	require.True(t, strings.HasSuffix(url, ".png"))

	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(url)))
	require.NoError(t, err)
	require.Equal(t, "image-bytes", string(data))
}

func TestLocalService_GeneratedNamesAreUnique(t *testing.T) {
	svc, err := storage.NewLocalService(t.TempDir(), "/uploads")
	require.NoError(t, err)

	first, err := svc.SaveImage(context.Background(), "pic.jpg", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := svc.SaveImage(context.Background(), "pic.jpg", strings.NewReader("b"))
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestLocalService_ListObjects(t *testing.T) {
	svc, err := storage.NewLocalService(t.TempDir(), "/uploads")
	require.NoError(t, err)

	objects, err := svc.ListObjects(context.Background(), "")
	require.NoError(t, err)
	require.Empty(t, objects)

	_, err = svc.SaveImage(context.Background(), "pic.png", strings.NewReader("image-bytes"))
	require.NoError(t, err)

	objects, err = svc.ListObjects(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, objects, 1)
	require.Equal(t, int64(len("image-bytes")), objects[0].Size)
	require.NotNil(t, objects[0].LastModified)
}
