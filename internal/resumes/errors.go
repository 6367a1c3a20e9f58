package resumes

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound means no record exists for the public ID, or the record
	// carries no file when one was asked for.
	ErrNotFound = errors.New("resume not found")

	// ErrFileMissing means the record exists but its file is gone from disk.
	ErrFileMissing = errors.New("file not found on server")

	// ErrDuplicateID means an insert hit the public_id uniqueness constraint.
	// Public IDs are probabilistically unique, never re-checked before insert,
	// so this surfaces to callers as an internal error.
	ErrDuplicateID = errors.New("duplicate public id")
)

// ValidationError reports required fields missing after normalization.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) == 0 {
		return "Invalid input!"
	}
	names := strings.Join(e.Missing, " and ")
	verb := "is"
	if len(e.Missing) > 1 {
		verb = "are"
	}
	return strings.ToUpper(names[:1]) + names[1:] + " " + verb + " required!"
}
