package resumes

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"path"
	"time"

	"resume-store/internal/shared/storage/object"
)

// Service contains business logic for resume records.
type Service struct {
	Repo  Repo
	Store object.FileStore
}

// Create assigns a public ID to the normalized fields and persists the
// record. filePath may be empty when no file accompanied the upload.
func (s *Service) Create(ctx context.Context, fields Fields, filePath string) (Resume, error) {
	publicID, err := NewPublicID()
	if err != nil {
		return Resume{}, err
	}

	rec := Resume{
		PublicID:   publicID,
		Name:       fields.Name,
		Email:      fields.Email,
		Phone:      fields.Phone,
		Skills:     fields.Skills,
		Experience: fields.Experience,
		Education:  fields.Education,
		FilePath:   filePath,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, rec); err != nil {
		return Resume{}, err
	}

	return rec, nil
}

// Get returns the record for a public ID.
func (s *Service) Get(ctx context.Context, publicID string) (Resume, error) {
	return s.Repo.GetByPublicID(ctx, publicID)
}

// Download resolves a public ID to its stored file. A missing record or a
// record without a file yields ErrNotFound; a record whose file is gone from
// disk yields ErrFileMissing so callers can tell the two apart. The second
// return value is the stored base filename for the content disposition.
func (s *Service) Download(ctx context.Context, publicID string) (io.ReadCloser, string, error) {
	rec, err := s.Repo.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, "", err
	}
	if rec.FilePath == "" {
		return nil, "", ErrNotFound
	}

	f, err := s.Store.Open(ctx, rec.FilePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", ErrFileMissing
		}
		return nil, "", err
	}

	return f, path.Base(rec.FilePath), nil
}
