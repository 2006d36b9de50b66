package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/campusware/course-advisor/internal/api/shared"
	"github.com/campusware/course-advisor/internal/domain"
	"github.com/campusware/course-advisor/internal/gpa"
)

// GPAHandler handles GPA calculation requests.
//
// This is the one boundary that accepts raw numeric user input, so it
// validates before calling into the pure arithmetic core: malformed JSON
// (including non-numeric credits) and out-of-range values fail fast with a
// 400. Unrecognized letter grades, by contrast, are silently skipped by the
// calculator itself.
type GPAHandler struct {
	validator *validator.Validate
}

// NewGPAHandler creates a new GPAHandler.
func NewGPAHandler() *GPAHandler {
	return &GPAHandler{
		validator: validator.New(),
	}
}

// Calculate handles POST /api/gpa requests. When the request carries prior
// credits it computes a cumulative GPA; otherwise a plain term GPA.
func (h *GPAHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateGPARequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	grades := make([]domain.GradeEntry, len(req.Grades))
	for i, g := range req.Grades {
		grades[i] = domain.GradeEntry{Grade: g.Grade, Credits: g.Credits}
	}

	var result interface{}
	if req.CurrentCredits > 0 {
		result = gpa.ComputeCumulative(req.CurrentGPA, req.CurrentCredits, grades)
	} else {
		result = gpa.Compute(grades)
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CalculateGPAResponse{
		Success: true,
		Result:  result,
	})
}
