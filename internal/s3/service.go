package s3

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"backup-uploader/internal/config"
	"backup-uploader/internal/uploader"
)

// Service wraps the AWS S3 transfer manager for backup uploads.
type Service struct {
	uploader *manager.Uploader
	bucket   string
	prefix   string
}

// NewService creates a Service from the provided config and optional client
// options. The transfer manager splits large backups into parts of the
// configured size and uploads them on the configured number of goroutines.
func NewService(ctx context.Context, cfg *config.Config, opts ...func(*s3.Options)) (*Service, error) {
	const op = "s3.NewService"

	if cfg == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNilConfig)
	}

	awsCfg, err := cfg.AWSConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get AWS config: %w", op, err)
	}

	client := s3.NewFromConfig(awsCfg, opts...)

	up := manager.NewUploader(client, func(u *manager.Uploader) {
		u.PartSize = cfg.PartSize * 1024 * 1024
		u.Concurrency = cfg.Threads
	})

	return &Service{
		uploader: up,
		bucket:   cfg.BucketName,
		prefix:   cfg.Prefix,
	}, nil
}

// Name identifies the backend in logs and results.
func (s *Service) Name() string { return "s3" }

// Upload sends the file at filePath to the configured bucket.
func (s *Service) Upload(ctx context.Context, filePath string) (*uploader.Result, error) {
	const op = "s3.Service.Upload"

	if filePath == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyFilename)
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open %s: %w", op, filePath, err)
	}
	defer f.Close()

	key := s.objectKey(filePath)

	out, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   f,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to upload %s to bucket %s: %w", op, filePath, s.bucket, err)
	}

	return &uploader.Result{
		Backend:  s.Name(),
		File:     filePath,
		Key:      key,
		ETag:     aws.ToString(out.ETag),
		Location: out.Location,
	}, nil
}

// objectKey maps a local file path to its key in the bucket.
func (s *Service) objectKey(filePath string) string {
	base := filepath.Base(filePath)
	if s.prefix == "" {
		return base
	}
	return path.Join(s.prefix, base)
}
