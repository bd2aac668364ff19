// Package main provides the backup-uploader CLI tool for sending local
// database backups to AWS S3 or Glacier.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"backup-uploader/internal/config"
	"backup-uploader/internal/glacier"
	"backup-uploader/internal/history"
	"backup-uploader/internal/s3"
	"backup-uploader/internal/uploader"
)

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))
}

func main() {
	ctx := context.Background()

	// Credentials for cron runs usually live in a .env next to the binary.
	if err := loadEnvFile(".env"); err != nil {
		slog.Error("failed to load .env file", "error", err)
		os.Exit(1)
	}

	var cli config.CLI
	kong.Parse(&cli,
		kong.Name("backup-uploader"),
		kong.Description("Uploads the latest local backup to AWS S3 or Glacier."),
		kong.UsageOnError(),
	)

	cfg, err := config.New(cli)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	slog.Info("configuration loaded",
		"mode", cfg.Mode,
		"backup_dir", cfg.BackupDir,
		"backup_exp", cfg.BackupExp)

	svc, err := newService(ctx, cfg)
	if err != nil {
		slog.Error("failed to create uploader", "error", err)
		os.Exit(1)
	}

	results, err := svc.Run(ctx)
	if err != nil {
		slog.Error("backup upload failed", "error", err)
		os.Exit(1)
	}

	slog.Info("backup upload completed", "uploaded", len(results))
}

// loadEnvFile merges the variables in path into the environment. A missing
// file is fine; a file that exists but cannot be parsed is not.
func loadEnvFile(path string) error {
	const op = "main.loadEnvFile"

	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// newService wires the mode-selected backend into an upload service.
func newService(ctx context.Context, cfg *config.Config) (*uploader.Service, error) {
	backend, recorder, err := selectBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return uploader.NewService(backend, recorder, cfg)
}

// selectBackend builds the storage backend named by the configured mode.
// Only Glacier uploads carry a history recorder; S3 objects are listable by
// key, Glacier archives are not.
func selectBackend(ctx context.Context, cfg *config.Config) (uploader.Backend, *history.Recorder, error) {
	switch cfg.Mode {
	case config.ModeS3:
		backend, err := s3.NewService(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return backend, nil, nil

	case config.ModeGlacier:
		backend, err := glacier.NewService(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		recorder, err := history.NewRecorder(cfg.HistoryFile)
		if err != nil {
			return nil, nil, err
		}
		return backend, recorder, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrInvalidMode, cfg.Mode)
	}
}
