package backup

import "errors"

// ErrNoBackupFiles is the error returned when the backup directory holds no
// file matching the configured extension.
var ErrNoBackupFiles = errors.New("no backup files found")
