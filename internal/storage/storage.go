package storage

import (
	"context"
	"io"
	"time"
)

type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified *time.Time
}

// Service stores uploaded profile images and exposes them by URL.
type Service interface {
	// SaveImage writes the image and returns the URL the API should persist.
	SaveImage(ctx context.Context, filename string, r io.Reader) (string, error)
	ListObjects(ctx context.Context, prefix string) ([]ObjectInfo, error)
}
