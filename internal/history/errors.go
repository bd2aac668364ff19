package history

import "errors"

// ErrEmptyPath is the error returned when a Recorder is created without a
// history file path.
var ErrEmptyPath = errors.New("history file path is empty")
