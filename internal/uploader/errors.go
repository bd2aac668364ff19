package uploader

import "errors"

var (
	// ErrNilBackend is the error returned when a Service is created without
	// a storage backend.
	ErrNilBackend = errors.New("backend is nil")

	// ErrNilConfig is the error returned when a Service is created without
	// a configuration.
	ErrNilConfig = errors.New("config is nil")
)
