// Package backup selects the local backup files to upload.
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// File is a candidate backup file found in the backup directory.
type File struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// Find returns the regular files in dir whose names end with exp, sorted
// oldest first by modification time. Subdirectories are not descended into;
// the dump script writes flat files.
func Find(dir, exp string) ([]File, error) {
	const op = "backup.Find"

	dis, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read directory %s: %w", op, dir, err)
	}

	var files []File
	for _, di := range dis {
		if di.IsDir() || !strings.HasSuffix(di.Name(), exp) {
			continue
		}

		info, err := di.Info()
		if err != nil {
			return nil, fmt.Errorf("%s: failed to stat %s: %w", op, di.Name(), err)
		}
		if !info.Mode().IsRegular() {
			continue
		}

		files = append(files, File{
			Path:    filepath.Join(dir, di.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%s: no files matching %q in %s: %w", op, exp, dir, ErrNoBackupFiles)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].ModTime.Before(files[j].ModTime)
	})

	return files, nil
}

// Latest returns the single newest file in dir matching exp.
func Latest(dir, exp string) (File, error) {
	files, err := Find(dir, exp)
	if err != nil {
		return File{}, err
	}
	return files[len(files)-1], nil
}
