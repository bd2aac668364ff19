package config

import "errors"

var (
	// ErrMissingAccessKey is returned when no AWS access key ID is configured.
	ErrMissingAccessKey = errors.New("missing AWS access key ID")
	// ErrMissingSecretKey is returned when no AWS secret key is configured.
	ErrMissingSecretKey = errors.New("missing AWS secret key")
	// ErrMissingBucketName is returned when s3 mode has no bucket name.
	ErrMissingBucketName = errors.New("missing S3 bucket name")
	// ErrMissingVaultName is returned when glacier mode has no vault name.
	ErrMissingVaultName = errors.New("missing Glacier vault name")
	// ErrMissingHistoryFile is returned when glacier mode has no history file path.
	ErrMissingHistoryFile = errors.New("missing history file path")
	// ErrMissingBackupDir is returned when no backup directory is configured.
	ErrMissingBackupDir = errors.New("missing backup directory")
	// ErrMissingBackupExp is returned when no backup extension is configured.
	ErrMissingBackupExp = errors.New("missing backup extension")

	// ErrInvalidMode is returned when mode is neither s3 nor glacier.
	ErrInvalidMode = errors.New("invalid mode")
	// ErrInvalidDir is returned when a directory does not exist or is not a directory.
	ErrInvalidDir = errors.New("directory does not exist or is not a directory")
	// ErrInvalidRegion is returned when AWS region format is invalid.
	ErrInvalidRegion = errors.New("invalid AWS region format")
	// ErrInvalidPartSize is returned when part_size is below the S3 minimum.
	ErrInvalidPartSize = errors.New("part size below S3 minimum")
	// ErrInvalidThreads is returned when threads is not positive.
	ErrInvalidThreads = errors.New("threads must be positive")
	// ErrInvalidLogLevel is returned when log_level is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
)
