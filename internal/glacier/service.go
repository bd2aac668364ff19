package glacier

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/glacier"

	"backup-uploader/internal/config"
	"backup-uploader/internal/uploader"
)

// api is the subset of the Glacier client the Service calls.
type api interface {
	UploadArchive(ctx context.Context, params *glacier.UploadArchiveInput, optFns ...func(*glacier.Options)) (*glacier.UploadArchiveOutput, error)
}

// Service wraps the AWS Glacier client for backup uploads.
type Service struct {
	client api
	vault  string
}

// NewService creates a Service from the provided config and optional client
// options.
func NewService(ctx context.Context, cfg *config.Config, opts ...func(*glacier.Options)) (*Service, error) {
	const op = "glacier.NewService"

	if cfg == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNilConfig)
	}

	awsCfg, err := cfg.AWSConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get AWS config: %w", op, err)
	}

	return &Service{
		client: glacier.NewFromConfig(awsCfg, opts...),
		vault:  cfg.VaultName,
	}, nil
}

// Name identifies the backend in logs and results.
func (s *Service) Name() string { return "glacier" }

// Upload stores the file at filePath as a new archive in the configured
// vault. The archive description is the file's base name. Glacier reports
// the archive ID only in this response; the caller must persist it.
func (s *Service) Upload(ctx context.Context, filePath string) (*uploader.Result, error) {
	const op = "glacier.Service.Upload"

	if filePath == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyFilename)
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open %s: %w", op, filePath, err)
	}
	defer f.Close()

	// AccountId "-" addresses the account that owns the credentials.
	out, err := s.client.UploadArchive(ctx, &glacier.UploadArchiveInput{
		AccountId:          aws.String("-"),
		VaultName:          aws.String(s.vault),
		ArchiveDescription: aws.String(filepath.Base(filePath)),
		Body:               f,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to upload %s to vault %s: %w", op, filePath, s.vault, err)
	}

	return &uploader.Result{
		Backend:   s.Name(),
		File:      filePath,
		ArchiveID: aws.ToString(out.ArchiveId),
		Checksum:  aws.ToString(out.Checksum),
		Location:  aws.ToString(out.Location),
	}, nil
}
