// Package config loads and validates the uploader configuration from CLI
// flags, environment variables, and an optional YAML file.
package config

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// Mode selects the upload backend.
type Mode string

const (
	// ModeS3 uploads to an S3 bucket.
	ModeS3 Mode = "s3"
	// ModeGlacier uploads to a Glacier vault and records each upload in the
	// history file.
	ModeGlacier Mode = "glacier"
)

// Config holds every parameter the uploader accepts. It is populated once at
// startup and treated as immutable afterwards. The yaml tags are the
// parameter names accepted in the configuration file.
type Config struct {
	AccessKey   string `yaml:"access_key"`
	SecretKey   string `yaml:"secret_key"`
	Region      string `yaml:"region"`
	BucketName  string `yaml:"bucket_name"`
	VaultName   string `yaml:"vault_name"`
	HistoryFile string `yaml:"history_file"`
	BackupDir   string `yaml:"backup_dir"`
	BackupExp   string `yaml:"backup_exp"`
	Mode        Mode   `yaml:"mode"`

	Prefix         string `yaml:"prefix"`
	PartSize       int64  `yaml:"part_size"`
	Threads        int    `yaml:"threads"`
	UploadAll      bool   `yaml:"upload_all"`
	RemoveUploaded bool   `yaml:"remove_uploaded"`
	LogLevel       string `yaml:"log_level"`
}

// New builds the effective configuration from the parsed CLI flags, the YAML
// file they name, and the built-in defaults, then validates the result for
// the selected mode.
func New(cli CLI) (*Config, error) {
	const op = "config.New"

	cfg := cli.config()

	if err := mergeFromFile(cfg, cli.Config); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return cfg, nil
}

// AWSConfig returns an aws.Config carrying the configured region and static
// credentials, ready for client construction.
func (c *Config) AWSConfig(ctx context.Context) (aws.Config, error) {
	const op = "config.Config.AWSConfig"

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(c.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, ""),
		),
	)
	if err != nil {
		return aws.Config{}, fmt.Errorf("%s: failed to load AWS config: %w", op, err)
	}

	return awsCfg, nil
}

// SlogLevel maps the configured log level onto slog's levels.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// applyDefaults fills the fields no source provided.
func applyDefaults(cfg *Config) {
	if cfg.Mode == "" {
		cfg.Mode = DefaultMode
	}
	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}
	if cfg.PartSize == 0 {
		cfg.PartSize = DefaultPartSize
	}
	if cfg.Threads == 0 {
		cfg.Threads = DefaultThreads
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
}
