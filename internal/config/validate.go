package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// validate checks the merged configuration against the requirements of the
// selected mode.
func validate(cfg *Config) error {
	if err := validateMode(cfg.Mode); err != nil {
		return err
	}

	if err := validateCredentials(cfg.AccessKey, cfg.SecretKey); err != nil {
		return err
	}

	if err := validateSelection(cfg.BackupDir, cfg.BackupExp); err != nil {
		return err
	}

	if err := validateBackend(cfg); err != nil {
		return err
	}

	if err := validateRegion(cfg.Region); err != nil {
		return err
	}

	if err := validateTransfer(cfg.PartSize, cfg.Threads); err != nil {
		return err
	}

	return validateLogLevel(cfg.LogLevel)
}

// validateMode ensures mode names one of the two backends.
func validateMode(mode Mode) error {
	switch mode {
	case ModeS3, ModeGlacier:
		return nil
	}
	return fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidMode, mode, ModeS3, ModeGlacier)
}

// validateCredentials ensures both halves of the AWS credentials are set.
func validateCredentials(access, secret string) error {
	if access == "" {
		return fmt.Errorf("%w (set %s or configure access_key)", ErrMissingAccessKey, EnvAccessKey)
	}
	if secret == "" {
		return fmt.Errorf("%w (set %s or configure secret_key)", ErrMissingSecretKey, EnvSecretKey)
	}
	return nil
}

// validateSelection ensures the backup directory exists and an extension
// filter is configured.
func validateSelection(dir, exp string) error {
	if dir == "" {
		return fmt.Errorf("%w (set %s or configure backup_dir)", ErrMissingBackupDir, EnvBackupDir)
	}
	if err := validateDirectory(dir); err != nil {
		return err
	}
	if exp == "" {
		return fmt.Errorf("%w (set %s or configure backup_exp)", ErrMissingBackupExp, EnvBackupExp)
	}
	return nil
}

// validateBackend checks the fields only one of the two modes needs. Glacier
// mode has no use for a bucket name, so it is not required there.
func validateBackend(cfg *Config) error {
	if cfg.Mode == ModeGlacier {
		if cfg.VaultName == "" {
			return fmt.Errorf("%w (set %s or configure vault_name)", ErrMissingVaultName, EnvVaultName)
		}
		if cfg.HistoryFile == "" {
			return fmt.Errorf("%w (set %s or configure history_file)", ErrMissingHistoryFile, EnvHistoryFile)
		}
		return nil
	}

	if cfg.BucketName == "" {
		return fmt.Errorf("%w (set %s or configure bucket_name)", ErrMissingBucketName, EnvBucketName)
	}
	return nil
}

// validateDirectory checks if a directory exists and is accessible.
func validateDirectory(dir string) error {
	fi, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("backup directory %s: %w", dir, ErrInvalidDir)
	}

	if !fi.IsDir() {
		return fmt.Errorf("backup directory %s: %w", dir, ErrInvalidDir)
	}

	return nil
}

// validateRegion checks if the AWS region format is valid.
// AWS regions follow the pattern: {code}-{direction}-{number} (e.g., us-west-2)
func validateRegion(region string) error {
	parts := strings.Split(region, "-")

	if len(parts) != 3 {
		return fmt.Errorf("%w: expected format {code}-{direction}-{number}", ErrInvalidRegion)
	}

	// Validate region code (e.g., "us", "eu", "ap")
	if len(parts[0]) != 2 {
		return fmt.Errorf("%w: invalid region code", ErrInvalidRegion)
	}

	// Validate direction (e.g., "east", "west", "central")
	if parts[1] == "" {
		return fmt.Errorf("%w: invalid direction", ErrInvalidRegion)
	}

	// Validate zone number
	if parts[2] == "" {
		return fmt.Errorf("%w: invalid zone number", ErrInvalidRegion)
	}

	if _, err := strconv.Atoi(parts[2]); err != nil {
		return fmt.Errorf("%w: zone must be a number", ErrInvalidRegion)
	}

	return nil
}

// validateTransfer checks the S3 transfer manager knobs.
func validateTransfer(partSize int64, threads int) error {
	if partSize < MinPartSize {
		return fmt.Errorf("%w: %d MiB (minimum %d MiB)", ErrInvalidPartSize, partSize, MinPartSize)
	}
	if threads < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidThreads, threads)
	}
	return nil
}

// validateLogLevel ensures the level is one slog knows.
func validateLogLevel(level string) error {
	switch level {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidLogLevel, level)
}
