package config

const (
	// EnvConfigFile is the path to the YAML configuration file
	EnvConfigFile = "UPLOADER_CONFIG_FILE"

	// AWS credentials and placement
	EnvAccessKey = "AWS_ACCESS_KEY_ID"
	EnvSecretKey = "AWS_SECRET_ACCESS_KEY"
	EnvRegion    = "AWS_REGION"

	// Backend targets
	EnvBucketName  = "S3_BUCKET"
	EnvVaultName   = "GLACIER_VAULT"
	EnvHistoryFile = "HISTORY_FILE"

	// Backup selection
	EnvBackupDir = "BACKUP_DIR"
	EnvBackupExp = "BACKUP_EXP"

	// Uploader behavior
	EnvMode     = "UPLOADER_MODE"
	EnvLogLevel = "UPLOADER_LOG_LEVEL"
)

const (
	// DefaultConfigFile is consulted when --config is not given.
	DefaultConfigFile = "uploader.yaml"

	// DefaultMode ships to S3 unless told otherwise.
	DefaultMode = ModeS3

	// DefaultRegion applies when no region is configured.
	DefaultRegion = "us-east-1"

	// DefaultPartSize is the multipart part size in MiB for S3 transfers.
	DefaultPartSize int64 = 32

	// DefaultThreads is the SDK part concurrency for S3 transfers.
	DefaultThreads = 3

	// DefaultLogLevel applies when no log level is configured.
	DefaultLogLevel = "info"

	// MinPartSize is the smallest part size S3 accepts for multipart
	// uploads, in MiB.
	MinPartSize int64 = 5
)
