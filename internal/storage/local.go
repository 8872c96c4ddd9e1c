package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalService stores images on the local disk. Files land in dir and are
// served read-only by the router under urlPrefix.
type LocalService struct {
	dir       string
	urlPrefix string
}

func NewLocalService(dir, urlPrefix string) (*LocalService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalService{dir: dir, urlPrefix: urlPrefix}, nil
}

func (s *LocalService) SaveImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	name := uuid.NewString() + filepath.Ext(filename)
	dst := filepath.Join(s.dir, name)

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dst)
		return "", fmt.Errorf("write image file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("close image file: %w", err)
	}

	return s.urlPrefix + "/" + name, nil
}

// ListObjects walks the upload dir. Kept for parity with the S3 backend so
// the object listing endpoint works against either.
func (s *LocalService) ListObjects(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read upload dir: %w", err)
	}

	var objects []ObjectInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if prefix != "" && !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", entry.Name(), err)
		}
		mod := info.ModTime()
		objects = append(objects, ObjectInfo{
			Key:          entry.Name(),
			Size:         info.Size(),
			LastModified: &mod,
		})
	}
	return objects, nil
}

var _ Service = (*LocalService)(nil)
