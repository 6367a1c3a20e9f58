package resumes

import "time"

// UploadResponse is the success payload of the upload endpoint.
type UploadResponse struct {
	Message  string `json:"message"`
	UniqueID string `json:"uniqueID"`
}

// ResumeResponse is the outward-facing representation of a resume record.
type ResumeResponse struct {
	UniqueID   string    `json:"uniqueID"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Skills     []string  `json:"skills"`
	Experience string    `json:"experience,omitempty"`
	Education  string    `json:"education,omitempty"`
	ResumeFile string    `json:"resumeFile,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toResponse(rec Resume) ResumeResponse {
	return ResumeResponse{
		UniqueID:   rec.PublicID,
		Name:       rec.Name,
		Email:      rec.Email,
		Phone:      rec.Phone,
		Skills:     rec.Skills,
		Experience: rec.Experience,
		Education:  rec.Education,
		ResumeFile: rec.FilePath,
		CreatedAt:  rec.CreatedAt,
	}
}
