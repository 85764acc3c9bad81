// Package download saves attachments referenced by assignments, messages,
// posts and medical records into the local downloads directory.
package download

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-pet-walker/internal/logger"
	"github.com/MKhiriev/go-pet-walker/internal/service"
	"github.com/gabriel-vasile/mimetype"
)

// maxCopies bounds the "name (n).ext" probing.
const maxCopies = 1000

var (
	// ErrEmptyReference is returned when QueryDownload gets no reference.
	ErrEmptyReference = errors.New("empty file reference")
	// ErrNoFreeName is returned when every candidate file name is taken.
	ErrNoFreeName = errors.New("no free file name")
)

// Manager downloads files through the file service and writes them into dir.
type Manager struct {
	files  service.FileService
	dir    string
	logger *logger.Logger
}

// NewManager creates a Manager writing into dir.
func NewManager(files service.FileService, dir string, log *logger.Logger) *Manager {
	if log == nil {
		log = logger.Nop()
	}
	return &Manager{files: files, dir: dir, logger: log.Named("download")}
}

// Dir returns the directory downloads are written to.
func (m *Manager) Dir() string {
	return m.dir
}

// QueryDownload fetches the file behind reference and stores it under
// displayName. A missing extension is derived from the file content and an
// existing file is never overwritten: "walk.pdf" becomes "walk (1).pdf".
func (m *Manager) QueryDownload(ctx context.Context, reference, displayName string) error {
	if reference == "" {
		return ErrEmptyReference
	}

	file, err := m.files.Download(ctx, reference)
	if err != nil {
		return fmt.Errorf("query download: %w", err)
	}

	name := fileName(displayName, file.Name, reference)
	if filepath.Ext(name) == "" {
		name += mimetype.Detect(file.Data).Extension()
	}

	if err = os.MkdirAll(m.dir, 0o755); err != nil {
		return fmt.Errorf("query download: create dir: %w", err)
	}

	path, err := writeUnique(m.dir, name, file.Data)
	if err != nil {
		return fmt.Errorf("query download: %w", err)
	}

	m.logger.Info().
		Str("func", "Manager.QueryDownload").
		Str("reference", reference).
		Str("path", path).
		Int("bytes", len(file.Data)).
		Msg("file downloaded")
	return nil
}

// fileName picks the first usable candidate and strips any directory part.
func fileName(candidates ...string) string {
	for _, c := range candidates {
		c = filepath.Base(strings.TrimSpace(c))
		if c != "" && c != "." && c != ".." && c != string(filepath.Separator) {
			return c
		}
	}
	return "download"
}

func writeUnique(dir, name string, data []byte) (string, error) {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	for i := 0; i < maxCopies; i++ {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", base, i, ext)
		}
		path := filepath.Join(dir, candidate)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", err
		}
		if _, err = f.Write(data); err != nil {
			_ = f.Close()
			_ = os.Remove(path)
			return "", err
		}
		return path, f.Close()
	}
	return "", fmt.Errorf("%w for %q", ErrNoFreeName, name)
}
