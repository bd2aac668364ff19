package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CLI is the flag surface parsed by kong. The long names and short aliases
// are stable so existing crontabs keep working; every parameter can also
// come from its bound environment variable or from the YAML file named by
// --config.
type CLI struct {
	Config string `name:"config" short:"c" help:"Path to the YAML configuration file." env:"UPLOADER_CONFIG_FILE" default:"uploader.yaml"`

	AccessKey   string `name:"access_key" short:"a" help:"AWS account access key ID." env:"AWS_ACCESS_KEY_ID"`
	SecretKey   string `name:"secret_key" short:"s" help:"AWS account secret key." env:"AWS_SECRET_ACCESS_KEY"`
	Region      string `name:"region" help:"AWS region (default us-east-1)." env:"AWS_REGION"`
	BucketName  string `name:"bucket_name" short:"b" help:"Target S3 bucket (s3 mode)." env:"S3_BUCKET"`
	VaultName   string `name:"vault_name" short:"v" help:"Target Glacier vault (glacier mode)." env:"GLACIER_VAULT"`
	HistoryFile string `name:"history_file" short:"l" help:"Append-only upload history file (glacier mode)." env:"HISTORY_FILE"`
	BackupDir   string `name:"backup_dir" short:"d" help:"Directory scanned for backup files." env:"BACKUP_DIR"`
	BackupExp   string `name:"backup_exp" short:"e" help:"Backup filename extension filter." env:"BACKUP_EXP"`
	Mode        string `name:"mode" short:"m" help:"Upload backend, s3 or glacier (default s3)." env:"UPLOADER_MODE"`

	Prefix         string `name:"prefix" help:"Optional S3 object key prefix." env:"S3_PREFIX"`
	PartSize       int64  `name:"part_size" help:"Multipart part size in MiB for S3 transfers (default 32)." env:"UPLOADER_PART_SIZE"`
	Threads        int    `name:"threads" help:"SDK part concurrency for S3 transfers (default 3)." env:"UPLOADER_THREADS"`
	UploadAll      bool   `name:"upload_all" help:"Upload every matching file instead of only the newest." env:"UPLOADER_UPLOAD_ALL"`
	RemoveUploaded bool   `name:"remove_uploaded" help:"Delete local backup files after successful upload." env:"UPLOADER_REMOVE_UPLOADED"`
	LogLevel       string `name:"log_level" help:"Log level: debug, info, warn or error (default info)." env:"UPLOADER_LOG_LEVEL"`
}

// config copies the flag values into a Config. Fields the user did not set
// stay zero so the YAML file and the built-in defaults can fill them.
func (c CLI) config() *Config {
	return &Config{
		AccessKey:   c.AccessKey,
		SecretKey:   c.SecretKey,
		Region:      c.Region,
		BucketName:  c.BucketName,
		VaultName:   c.VaultName,
		HistoryFile: c.HistoryFile,
		BackupDir:   c.BackupDir,
		BackupExp:   c.BackupExp,
		Mode:        Mode(c.Mode),

		Prefix:         c.Prefix,
		PartSize:       c.PartSize,
		Threads:        c.Threads,
		UploadAll:      c.UploadAll,
		RemoveUploaded: c.RemoveUploaded,
		LogLevel:       c.LogLevel,
	}
}

// mergeFromFile loads the YAML file at path, if it exists, and fills the
// fields that flags and environment variables left unset. Flag values always
// win over file values.
func mergeFromFile(cfg *Config, path string) error {
	const op = "config.mergeFromFile"

	if path == "" {
		return nil
	}

	var file Config
	if err := loadFromYAML(path, &file); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cfg.AccessKey == "" {
		cfg.AccessKey = file.AccessKey
	}
	if cfg.SecretKey == "" {
		cfg.SecretKey = file.SecretKey
	}
	if cfg.Region == "" {
		cfg.Region = file.Region
	}
	if cfg.BucketName == "" {
		cfg.BucketName = file.BucketName
	}
	if cfg.VaultName == "" {
		cfg.VaultName = file.VaultName
	}
	if cfg.HistoryFile == "" {
		cfg.HistoryFile = file.HistoryFile
	}
	if cfg.BackupDir == "" {
		cfg.BackupDir = file.BackupDir
	}
	if cfg.BackupExp == "" {
		cfg.BackupExp = file.BackupExp
	}
	if cfg.Mode == "" {
		cfg.Mode = file.Mode
	}
	if cfg.Prefix == "" {
		cfg.Prefix = file.Prefix
	}
	if cfg.PartSize == 0 {
		cfg.PartSize = file.PartSize
	}
	if cfg.Threads == 0 {
		cfg.Threads = file.Threads
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = file.LogLevel
	}
	cfg.UploadAll = cfg.UploadAll || file.UploadAll
	cfg.RemoveUploaded = cfg.RemoveUploaded || file.RemoveUploaded

	return nil
}

// loadFromYAML loads configuration from a YAML file into the provided target
// struct. A file that does not exist is not an error so deployments can run
// on flags and environment variables alone.
func loadFromYAML(filePath string, target any) error {
	const op = "config.loadFromYAML"

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("%s: failed to read file: %w", op, err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%s: failed to unmarshal YAML: %w", op, err)
	}

	return nil
}
