package object

import (
	"context"
	"errors"
	"io"
	"strings"
)

// ErrRejectedMediaType is returned by Save when the declared content type is
// not an accepted resume format. The check runs before any bytes are written.
var ErrRejectedMediaType = errors.New("rejected media type")

// FileStore defines the contract for saving and retrieving uploaded files.
// Save stores the reader under a server-generated name and returns a path
// relative to the file-serving root; the original client filename only
// contributes its extension.
type FileStore interface {
	Save(ctx context.Context, originalName string, contentType string, r io.Reader) (relPath string, err error)
	Open(ctx context.Context, relPath string) (io.ReadCloser, error)
}

// AllowedMediaType reports whether the declared content type may be stored:
// PDFs and any image subtype.
func AllowedMediaType(contentType string) bool {
	if contentType == "application/pdf" {
		return true
	}
	return strings.HasPrefix(contentType, "image/")
}
