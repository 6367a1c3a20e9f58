package resumes

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-store/internal/shared/server/respond"
	"resume-store/internal/shared/storage/object"
	"resume-store/internal/shared/telemetry"
)

const maxUploadSize = 10 << 20 // 10MB

const fileField = "resumeFile"

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload", h.upload)
	rg.GET("/download/:resumeID", h.download)
	rg.GET("/:resumeID", h.get)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	// The file step runs ahead of field handling: an unacceptable media type
	// aborts the whole request, and an accepted file is already on disk by
	// the time field validation runs. A validation failure after that leaves
	// an orphaned file behind; there is no cleanup pass.
	filePath, ok := h.storeFile(c)
	if !ok {
		return
	}

	fields, err := Normalize(map[string]string{
		"name":       c.PostForm("name"),
		"email":      c.PostForm("email"),
		"phone":      c.PostForm("phone"),
		"skills":     c.PostForm("skills"),
		"experience": c.PostForm("experience"),
		"education":  c.PostForm("education"),
	})
	if err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			respond.Error(c, http.StatusBadRequest, vErr.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Internal Server Error", err)
		return
	}

	rec, err := h.Svc.Create(c.Request.Context(), fields, filePath)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Internal Server Error", err)
		return
	}

	c.Set("resumeId", rec.PublicID)
	telemetry.Info("resume.uploaded", map[string]any{
		"resume_id":  rec.PublicID,
		"has_file":   rec.FilePath != "",
		"request_id": c.GetString("requestId"),
	})

	respond.OK(c, UploadResponse{
		Message:  "Resume uploaded successfully!",
		UniqueID: rec.PublicID,
	})
}

// storeFile saves the attached file, if any, and reports whether the request
// may proceed. An absent file is valid; the record is then created without a
// file path.
func (h *Handler) storeFile(c *gin.Context) (string, bool) {
	fileHeader, err := c.FormFile(fileField)
	if errors.Is(err, http.ErrMissingFile) {
		return "", true
	}
	if err != nil {
		// Oversized or malformed multipart body; the form fields are not
		// readable either, so the request cannot proceed.
		respond.Error(c, http.StatusBadRequest, "Unable to read uploaded file", err)
		return "", false
	}

	f, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Unable to read uploaded file", err)
		return "", false
	}
	defer f.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	filePath, err := h.Svc.Store.Save(c.Request.Context(), fileHeader.Filename, contentType, f)
	if err != nil {
		if errors.Is(err, object.ErrRejectedMediaType) {
			respond.Error(c, http.StatusBadRequest, "Only PDFs and images are allowed!", err)
			return "", false
		}
		respond.Error(c, http.StatusInternalServerError, "Internal Server Error", err)
		return "", false
	}
	return filePath, true
}

func (h *Handler) get(c *gin.Context) {
	publicID := c.Param("resumeID")

	rec, err := h.Svc.Get(c.Request.Context(), publicID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Message(c, http.StatusNotFound, "Resume not found!")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Internal Server Error", err)
		return
	}

	c.Set("resumeId", rec.PublicID)
	respond.OK(c, toResponse(rec))
}

func (h *Handler) download(c *gin.Context) {
	publicID := c.Param("resumeID")

	reader, fileName, err := h.Svc.Download(c.Request.Context(), publicID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Message(c, http.StatusNotFound, "Resume not found!")
		case errors.Is(err, ErrFileMissing):
			respond.Message(c, http.StatusNotFound, "File not found on server!")
		default:
			respond.Error(c, http.StatusInternalServerError, "Internal Server Error", err)
		}
		return
	}
	defer reader.Close()

	c.Set("resumeId", publicID)

	contentType := mime.TypeByExtension(path.Ext(fileName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", "attachment; filename="+strconv.Quote(fileName))
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, reader); err != nil {
		// Headers are gone; all that is left is to log the stream failure.
		telemetry.Error("resume.download.stream", map[string]any{
			"resume_id":  publicID,
			"err":        err.Error(),
			"request_id": c.GetString("requestId"),
		})
	}
}
