// Package s3 uploads backup files to an S3 bucket.
package s3

import "errors"

var (
	// ErrNilConfig indicates that a nil config was provided.
	ErrNilConfig = errors.New("config cannot be nil")

	// ErrEmptyFilename indicates that an empty filename was provided.
	ErrEmptyFilename = errors.New("filename cannot be empty")
)
