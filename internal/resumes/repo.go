package resumes

import "context"

// Repo defines persistence operations for resume records. There are no
// update or delete operations; records are immutable once created.
type Repo interface {
	Create(ctx context.Context, rec Resume) error
	GetByPublicID(ctx context.Context, publicID string) (Resume, error)
}
