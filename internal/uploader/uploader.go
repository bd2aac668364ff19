// Package uploader orchestrates a single backup run: pick the files to send,
// hand them to the configured storage backend, and record the outcome.
package uploader

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"backup-uploader/internal/backup"
	"backup-uploader/internal/config"
	"backup-uploader/internal/history"
)

// Result describes one completed upload. The backend fills the fields that
// apply to it: Key and ETag for object storage, ArchiveID and Checksum for
// archive storage. Location is set by both.
type Result struct {
	Backend   string
	File      string
	Key       string
	ETag      string
	ArchiveID string
	Checksum  string
	Location  string
}

// Backend sends one local file to remote storage.
type Backend interface {
	// Name identifies the backend in logs and results.
	Name() string

	// Upload sends the file at path and reports where it landed.
	Upload(ctx context.Context, path string) (*Result, error)
}

// Service runs backup uploads against a single backend.
type Service struct {
	backend  Backend
	recorder *history.Recorder

	backupDir string
	backupExp string
	uploadAll bool
	remove    bool

	now func() time.Time
}

// NewService returns a Service wired to the given backend. The recorder may
// be nil for backends that do not need upload history.
func NewService(backend Backend, recorder *history.Recorder, cfg *config.Config) (*Service, error) {
	const op = "uploader.NewService"

	if backend == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNilBackend)
	}
	if cfg == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNilConfig)
	}

	return &Service{
		backend:   backend,
		recorder:  recorder,
		backupDir: cfg.BackupDir,
		backupExp: cfg.BackupExp,
		uploadAll: cfg.UploadAll,
		remove:    cfg.RemoveUploaded,
		now:       time.Now,
	}, nil
}

// Run selects the backup files and uploads them in order. It stops at the
// first failure and returns the results of the uploads that completed.
func (s *Service) Run(ctx context.Context) ([]*Result, error) {
	const op = "uploader.Service.Run"

	files, err := s.selectFiles()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	results := make([]*Result, 0, len(files))
	for _, f := range files {
		res, err := s.uploadOne(ctx, f)
		if err != nil {
			return results, fmt.Errorf("%s: %w", op, err)
		}
		results = append(results, res)
	}

	return results, nil
}

// selectFiles resolves the configured directory and extension to the files
// for this run: every match oldest first, or just the newest one.
func (s *Service) selectFiles() ([]backup.File, error) {
	if s.uploadAll {
		return backup.Find(s.backupDir, s.backupExp)
	}

	latest, err := backup.Latest(s.backupDir, s.backupExp)
	if err != nil {
		return nil, err
	}
	return []backup.File{latest}, nil
}

func (s *Service) uploadOne(ctx context.Context, f backup.File) (*Result, error) {
	slog.Info("uploading backup",
		"backend", s.backend.Name(),
		"file", f.Path,
		"size", humanize.IBytes(uint64(f.Size)))

	res, err := s.backend.Upload(ctx, f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", f.Path, err)
	}

	if err := s.record(res); err != nil {
		return nil, err
	}

	slog.Info("upload complete",
		"backend", res.Backend,
		"file", res.File,
		"location", res.Location)

	if s.remove {
		if err := os.Remove(f.Path); err != nil {
			return nil, fmt.Errorf("failed to remove %s after upload: %w", f.Path, err)
		}
		slog.Info("removed uploaded backup", "file", f.Path)
	}

	return res, nil
}

// record appends the upload to the history file. A failed append is fatal;
// the error carries the archive ID so it can be recovered by hand.
func (s *Service) record(res *Result) error {
	if s.recorder == nil || res.ArchiveID == "" {
		return nil
	}

	e := history.Entry{
		File:       filepath.Base(res.File),
		ArchiveID:  res.ArchiveID,
		Checksum:   res.Checksum,
		Location:   res.Location,
		UploadedAt: s.now().UTC(),
	}

	if err := s.recorder.Append(e); err != nil {
		return fmt.Errorf("failed to record archive %s for %s: %w", res.ArchiveID, res.File, err)
	}

	return nil
}
