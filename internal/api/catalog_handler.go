package api

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/campusware/course-advisor/internal/api/shared"
	"github.com/campusware/course-advisor/internal/service"
)

// maxUploadBytes caps catalog uploads at 16 MiB.
const maxUploadBytes = 16 << 20

// CatalogHandler handles catalog-loading HTTP requests.
type CatalogHandler struct {
	advisor  *service.AdvisorService
	sessions *service.SessionStore
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(advisor *service.AdvisorService, sessions *service.SessionStore) *CatalogHandler {
	return &CatalogHandler{
		advisor:  advisor,
		sessions: sessions,
	}
}

// Upload handles POST /api/catalog/upload requests. It accepts a multipart
// PDF upload, extracts and segments its text, and stores the resulting
// catalog in the session. A document that yields no records still succeeds:
// the session receives the built-in fallback catalog.
func (h *CatalogHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid upload")
		return
	}

	file, header, err := r.FormFile("pdf")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.Warn("failed to close uploaded file", "error", err)
		}
	}()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid file type. Please upload a PDF.")
		return
	}

	// Buffer the upload so the extractor gets random access to it.
	data, err := io.ReadAll(file)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	courses := h.advisor.LoadCatalog(r.Context(), bytes.NewReader(data), int64(len(data)))

	sessionID := ensureSession(w, r, h.sessions)
	h.sessions.SetCourses(sessionID, courses)

	shared.RespondWithJSON(w, r, http.StatusOK, CatalogResponse{
		Success: true,
		Courses: courses,
		Count:   len(courses),
	})
}

// Sample handles POST /api/catalog/sample requests by loading the built-in
// reference catalog into the session.
func (h *CatalogHandler) Sample(w http.ResponseWriter, r *http.Request) {
	courses := h.advisor.SampleCatalog()

	sessionID := ensureSession(w, r, h.sessions)
	h.sessions.SetCourses(sessionID, courses)

	shared.RespondWithJSON(w, r, http.StatusOK, CatalogResponse{
		Success: true,
		Courses: courses,
		Count:   len(courses),
	})
}
