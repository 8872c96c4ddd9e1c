package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Options conveys the upload destination.
type S3Options struct {
	Bucket    string
	KeyPrefix string
	// PublicBaseURL, when set, is joined with the object key to form the
	// stored image URL. When empty a presigned GET URL is returned instead.
	PublicBaseURL string
	PresignTTL    time.Duration
}

// S3Service stores profile images in Amazon S3 (or compatible APIs).
type S3Service struct {
	client    *s3.Client
	uploader  *manager.Uploader
	presigner *s3.PresignClient
	opts      S3Options
}

func NewS3Service(client *s3.Client, opts S3Options) *S3Service {
	if opts.PresignTTL <= 0 {
		opts.PresignTTL = 24 * time.Hour
	}
	return &S3Service{
		client:    client,
		uploader:  manager.NewUploader(client),
		presigner: s3.NewPresignClient(client),
		opts:      opts,
	}
}

func (s *S3Service) SaveImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	if s.opts.Bucket == "" {
		return "", fmt.Errorf("storage bucket is required")
	}

	key := uuid.NewString() + filepath.Ext(filename)
	if prefix := strings.Trim(s.opts.KeyPrefix, "/"); prefix != "" {
		key = prefix + "/" + key
	}

	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.opts.Bucket),
		Key:    aws.String(key),
		Body:   r,
	})
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}

	if s.opts.PublicBaseURL != "" {
		return strings.TrimSuffix(s.opts.PublicBaseURL, "/") + "/" + key, nil
	}

	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.opts.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.opts.PresignTTL))
	if err != nil {
		return "", fmt.Errorf("presign image url: %w", err)
	}
	return req.URL, nil
}

func (s *S3Service) ListObjects(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	if s.opts.Bucket == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}

	var objects []ObjectInfo
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(s.opts.Bucket),
	}
	if strings.TrimSpace(prefix) != "" {
		input.Prefix = aws.String(prefix)
	}

	for {
		output, err := s.client.ListObjectsV2(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("list objects: %w", err)
		}

		for _, obj := range output.Contents {
			objects = append(objects, ObjectInfo{
				Key:          aws.ToString(obj.Key),
				Size:         aws.ToInt64(obj.Size),
				LastModified: obj.LastModified,
			})
		}

		if !aws.ToBool(output.IsTruncated) || output.NextContinuationToken == nil {
			break
		}
		input.ContinuationToken = output.NextContinuationToken
	}

	return objects, nil
}

var _ Service = (*S3Service)(nil)
