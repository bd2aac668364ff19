// Package glacier uploads backup files to a Glacier vault as archives.
package glacier

import "errors"

var (
	// ErrNilConfig indicates that a nil config was provided.
	ErrNilConfig = errors.New("config cannot be nil")

	// ErrEmptyFilename indicates that an empty filename was provided.
	ErrEmptyFilename = errors.New("filename cannot be empty")
)
