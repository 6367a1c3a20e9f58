package resumes

import "time"

// Resume is a stored resume record. PublicID is the only handle exposed to
// clients; records are created once and never mutated.
type Resume struct {
	PublicID   string
	Name       string
	Email      string
	Phone      string
	Skills     []string
	Experience string
	Education  string
	FilePath   string
	CreatedAt  time.Time
}
