package health

import (
	"context"
	"database/sql"
	"time"
)

// Service encapsulates health-related checks.
type Service struct {
	db *sql.DB
}

// NewService constructs a new health service. db may be nil when the process
// runs on in-memory storage.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// Status reports process liveness and, when a database is configured,
// whether it is reachable.
func (s *Service) Status(ctx context.Context) map[string]bool {
	status := map[string]bool{"ok": true}
	if s.db != nil {
		pingCtx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		status["db"] = s.db.PingContext(pingCtx) == nil
	}
	return status
}
