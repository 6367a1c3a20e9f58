package resumes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-store/internal/bootstrap"
	"resume-store/internal/shared/config"
)

var publicIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{8}$`)

func newTestApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		Env:             "dev",
		DataDir:         t.TempDir(),
		CORSAllowOrigin: []string{"http://localhost:5173"},
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app
}

type uploadForm struct {
	fields   map[string]string
	fileName string
	fileType string
	fileBody []byte
}

func postUpload(t *testing.T, app *bootstrap.App, form uploadForm) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, val := range form.fields {
		if err := writer.WriteField(key, val); err != nil {
			t.Fatalf("write field %s: %v", key, err)
		}
	}
	if form.fileName != "" {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="resumeFile"; filename=%q`, form.fileName))
		header.Set("Content-Type", form.fileType)
		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		if _, err := part.Write(form.fileBody); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/resumes/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	return resp
}

func decodeUploadResponse(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var payload struct {
		Message  string `json:"message"`
		UniqueID string `json:"uniqueID"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode upload response: %v", err)
	}
	if payload.Message != "Resume uploaded successfully!" {
		t.Fatalf("unexpected message: %q", payload.Message)
	}
	if !publicIDPattern.MatchString(payload.UniqueID) {
		t.Fatalf("uniqueID %q is not an 8-character url-safe id", payload.UniqueID)
	}
	return payload.UniqueID
}

func TestUploadAndFetchRecord(t *testing.T) {
	app := newTestApp(t)

	resp := postUpload(t, app, uploadForm{
		fields: map[string]string{
			"name":       `"Jane Doe"`,
			"email":      "jane@example.com",
			"phone":      "555-0100",
			"skills":     "Go,SQL,Docker",
			"experience": "5 years",
			"education":  "BSc",
		},
		fileName: "resume.pdf",
		fileType: "application/pdf",
		fileBody: []byte("%PDF-1.4 test"),
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	id := decodeUploadResponse(t, resp)

	reqGet := httptest.NewRequest(http.MethodGet, "/api/resumes/"+id, nil)
	respGet := httptest.NewRecorder()
	app.Router.ServeHTTP(respGet, reqGet)

	if respGet.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respGet.Code)
	}

	var rec struct {
		UniqueID   string   `json:"uniqueID"`
		Name       string   `json:"name"`
		Email      string   `json:"email"`
		Phone      string   `json:"phone"`
		Skills     []string `json:"skills"`
		Experience string   `json:"experience"`
		Education  string   `json:"education"`
		ResumeFile string   `json:"resumeFile"`
	}
	if err := json.NewDecoder(respGet.Body).Decode(&rec); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if rec.UniqueID != id {
		t.Fatalf("expected uniqueID %s, got %s", id, rec.UniqueID)
	}
	if rec.Name != "Jane Doe" {
		t.Fatalf("expected quote-stripped name, got %q", rec.Name)
	}
	if len(rec.Skills) != 3 || rec.Skills[0] != "Go" || rec.Skills[1] != "SQL" || rec.Skills[2] != "Docker" {
		t.Fatalf("unexpected skills: %v", rec.Skills)
	}
	if !strings.HasPrefix(rec.ResumeFile, "uploads/") || !strings.HasSuffix(rec.ResumeFile, ".pdf") {
		t.Fatalf("unexpected stored path: %q", rec.ResumeFile)
	}
	if strings.Contains(rec.ResumeFile, "resume.pdf") {
		t.Fatalf("stored path %q reuses the client filename", rec.ResumeFile)
	}
}

func TestUploadWithoutFile(t *testing.T) {
	app := newTestApp(t)

	resp := postUpload(t, app, uploadForm{
		fields: map[string]string{
			"name":  "Jane",
			"email": "jane@example.com",
		},
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	id := decodeUploadResponse(t, resp)

	rec, err := app.ResumesRepo.GetByPublicID(t.Context(), id)
	if err != nil {
		t.Fatalf("lookup created record: %v", err)
	}
	if rec.FilePath != "" {
		t.Fatalf("expected no file path, got %q", rec.FilePath)
	}
}

func TestUploadMissingRequiredFields(t *testing.T) {
	cases := []struct {
		name    string
		fields  map[string]string
		message string
	}{
		{"both missing", map[string]string{"skills": "a,b"}, "Name and email are required!"},
		{"email missing", map[string]string{"name": "Jane"}, "Email is required!"},
		{"name empty", map[string]string{"name": "", "email": "jane@example.com"}, "Name is required!"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(t)
			resp := postUpload(t, app, uploadForm{fields: tc.fields})
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", resp.Code)
			}
			var payload struct {
				Error string `json:"error"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
				t.Fatalf("decode error response: %v", err)
			}
			if payload.Error != tc.message {
				t.Fatalf("expected error %q, got %q", tc.message, payload.Error)
			}
		})
	}
}

func TestUploadOversizedBody(t *testing.T) {
	app := newTestApp(t)

	resp := postUpload(t, app, uploadForm{
		fields: map[string]string{
			"name":  "Jane",
			"email": "jane@example.com",
		},
		fileName: "resume.pdf",
		fileType: "application/pdf",
		fileBody: bytes.Repeat([]byte("a"), 11<<20),
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if payload.Error != "Unable to read uploaded file" {
		t.Fatalf("expected file read error, got %q", payload.Error)
	}
}

func TestUploadRejectsMediaType(t *testing.T) {
	app := newTestApp(t)

	resp := postUpload(t, app, uploadForm{
		fields: map[string]string{
			"name":  "Jane",
			"email": "jane@example.com",
		},
		fileName: "resume.exe",
		fileType: "application/octet-stream",
		fileBody: []byte("MZ"),
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "Only PDFs and images are allowed!") {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}

	// Nothing may reach the disk for a rejected media type.
	entries, err := os.ReadDir(filepath.Join(app.Config.DataDir, "uploads"))
	if err == nil && len(entries) > 0 {
		t.Fatalf("expected no stored files, found %d", len(entries))
	}
}

func TestUploadSameFilenameTwice(t *testing.T) {
	app := newTestApp(t)

	paths := make(map[string]struct{})
	for i := 0; i < 2; i++ {
		resp := postUpload(t, app, uploadForm{
			fields: map[string]string{
				"name":  "Jane",
				"email": "jane@example.com",
			},
			fileName: "resume.pdf",
			fileType: "application/pdf",
			fileBody: []byte(fmt.Sprintf("%%PDF-1.4 copy %d", i)),
		})
		if resp.Code != http.StatusOK {
			t.Fatalf("upload %d: expected status 200, got %d", i, resp.Code)
		}
		id := decodeUploadResponse(t, resp)

		rec, err := app.ResumesRepo.GetByPublicID(t.Context(), id)
		if err != nil {
			t.Fatalf("lookup record %d: %v", i, err)
		}
		if _, seen := paths[rec.FilePath]; seen {
			t.Fatalf("stored path %q reused across uploads", rec.FilePath)
		}
		paths[rec.FilePath] = struct{}{}

		reqDl := httptest.NewRequest(http.MethodGet, "/api/resumes/download/"+id, nil)
		respDl := httptest.NewRecorder()
		app.Router.ServeHTTP(respDl, reqDl)
		if respDl.Code != http.StatusOK {
			t.Fatalf("download %d: expected status 200, got %d", i, respDl.Code)
		}
	}
}
