// Package history records Glacier archive IDs so uploads can be retrieved
// or deleted later. Glacier reports the archive ID only at upload time; the
// history file is the durable mapping from backup file to archive ID.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// Entry is one recorded upload. Entries are stored as JSON Lines, one object
// per line, appended after each successful upload.
type Entry struct {
	File       string    `json:"file"`
	ArchiveID  string    `json:"archive_id"`
	Checksum   string    `json:"checksum,omitempty"`
	Location   string    `json:"location,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Recorder appends upload entries to a history file.
type Recorder struct {
	path string
}

// NewRecorder returns a Recorder writing to the given path. The file is
// created on first append if it does not exist.
func NewRecorder(path string) (*Recorder, error) {
	const op = "history.NewRecorder"

	if path == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyPath)
	}

	return &Recorder{path: path}, nil
}

// Append writes one entry to the end of the history file. The file is opened
// per call; the uploader runs once per invocation so there is no handle to
// keep warm.
func (r *Recorder) Append(e Entry) error {
	const op = "history.Recorder.Append"

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%s: failed to open %s: %w", op, r.path, err)
	}

	if err := json.NewEncoder(f).Encode(e); err != nil {
		f.Close()
		return fmt.Errorf("%s: failed to write entry: %w", op, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%s: failed to close %s: %w", op, r.path, err)
	}

	return nil
}

// Entries reads back every recorded entry. A missing history file is not an
// error; it means nothing has been uploaded yet.
func (r *Recorder) Entries() ([]Entry, error) {
	const op = "history.Recorder.Entries"

	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: failed to open %s: %w", op, r.path, err)
	}
	defer f.Close()

	var entries []Entry
	dec := json.NewDecoder(f)
	for {
		var e Entry
		if err := dec.Decode(&e); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%s: failed to decode entry: %w", op, err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}
