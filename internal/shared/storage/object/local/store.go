package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"resume-store/internal/shared/storage/object"
)

// uploadsDir is the subdirectory of the data root that holds stored files.
// It is also the static-serving prefix, so the relative paths recorded per
// resume resolve both on disk and over HTTP.
const uploadsDir = "uploads"

// Store implements FileStore using the local filesystem.
type Store struct {
	baseDir string
}

// New creates a local file store rooted at baseDir.
func New(baseDir string) object.FileStore {
	return &Store{baseDir: baseDir}
}

// Save writes the reader to disk under a server-generated unique name,
// keeping only the extension of the client-supplied filename. Files whose
// declared content type is neither a PDF nor an image are rejected before
// anything touches the disk.
func (s *Store) Save(ctx context.Context, originalName string, contentType string, r io.Reader) (string, error) {
	if !object.AllowedMediaType(contentType) {
		return "", fmt.Errorf("%w: %s", object.ErrRejectedMediaType, contentType)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	finalName := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))

	dirPath := filepath.Join(s.baseDir, uploadsDir)
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return "", fmt.Errorf("mkdir: %w", err)
	}

	fullPath := filepath.Join(dirPath, finalName)
	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write body: %w", err)
	}

	return filepath.ToSlash(filepath.Join(uploadsDir, finalName)), nil
}

// Open opens a stored file for reading. Missing files surface as
// fs.ErrNotExist via os.Open.
func (s *Store) Open(ctx context.Context, relPath string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	clean := filepath.Clean(filepath.FromSlash(relPath))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return nil, fmt.Errorf("invalid file path")
	}

	f, err := os.Open(filepath.Join(s.baseDir, clean))
	if err != nil {
		return nil, err
	}
	return f, nil
}
