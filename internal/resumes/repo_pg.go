package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new resume record. A public_id collision maps to
// ErrDuplicateID.
func (r *PGRepo) Create(ctx context.Context, rec Resume) error {
	const query = `
INSERT INTO resumes (
    public_id,
    name,
    email,
    phone,
    skills,
    experience,
    education,
    file_path,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	skills, err := json.Marshal(rec.Skills)
	if err != nil {
		return fmt.Errorf("encode skills: %w", err)
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		rec.PublicID,
		rec.Name,
		rec.Email,
		nullString(rec.Phone),
		skills,
		nullString(rec.Experience),
		nullString(rec.Education),
		nullString(rec.FilePath),
		rec.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: %s", ErrDuplicateID, rec.PublicID)
		}
		return err
	}
	return nil
}

// GetByPublicID returns the record for a public ID, or ErrNotFound.
func (r *PGRepo) GetByPublicID(ctx context.Context, publicID string) (Resume, error) {
	const query = `
SELECT public_id, name, email, phone, skills, experience, education, file_path, created_at
FROM resumes
WHERE public_id = $1`

	var rec Resume
	var phone, experience, education, filePath sql.NullString
	var skills []byte
	err := r.DB.QueryRowContext(ctx, query, publicID).Scan(
		&rec.PublicID,
		&rec.Name,
		&rec.Email,
		&phone,
		&skills,
		&experience,
		&education,
		&filePath,
		&rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}

	rec.Phone = phone.String
	rec.Experience = experience.String
	rec.Education = education.String
	rec.FilePath = filePath.String
	rec.Skills = []string{}
	if len(skills) > 0 {
		if err := json.Unmarshal(skills, &rec.Skills); err != nil {
			return Resume{}, fmt.Errorf("decode skills: %w", err)
		}
	}
	return rec, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

var _ Repo = (*PGRepo)(nil)
