package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/campusware/course-advisor/internal/api/shared"
	"github.com/campusware/course-advisor/internal/recommendation"
	"github.com/campusware/course-advisor/internal/requirements"
	"github.com/campusware/course-advisor/internal/service"
)

// RecommendationHandler handles requirement submission and recommendation
// requests for a session.
type RecommendationHandler struct {
	advisor   *service.AdvisorService
	sessions  *service.SessionStore
	validator *validator.Validate
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(advisor *service.AdvisorService, sessions *service.SessionStore) *RecommendationHandler {
	return &RecommendationHandler{
		advisor:   advisor,
		sessions:  sessions,
		validator: validator.New(),
	}
}

// SubmitRequirements handles POST /api/requirements requests. Requirements
// are normalized (negative values clamped to zero) before being stored.
func (h *RecommendationHandler) SubmitRequirements(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequirementsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	reqs := req.Requirements.Normalize()

	sessionID := ensureSession(w, r, h.sessions)
	h.sessions.SetRequirements(sessionID, reqs)

	shared.RespondWithJSON(w, r, http.StatusOK, RequirementsResponse{
		Success:      true,
		Requirements: reqs,
	})
}

// Recommend handles POST /api/recommendations requests. The session must
// have a catalog loaded; interest scores and requirements are optional and
// default to empty, which simply means those scoring rules never fire.
func (h *RecommendationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendationsRequest
	if r.ContentLength != 0 {
		if err := shared.DecodeJSON(r, &req); err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
			return
		}

		if err := h.validator.Struct(req); err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
			return
		}
	}

	topN := req.TopN
	if topN == 0 {
		topN = recommendation.DefaultTopN
	}

	sessionID := ensureSession(w, r, h.sessions)
	state, _ := h.sessions.Get(sessionID)

	if len(state.Courses) == 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"No courses loaded. Please upload a PDF or use sample data.")
		return
	}

	interestScores := state.InterestScores
	if interestScores == nil {
		interestScores = map[string]float64{}
	}

	reqs := state.Requirements
	if reqs.Categories == nil {
		reqs = requirements.Requirements{Categories: map[string]int{}}
	}

	recs := h.advisor.Recommend(r.Context(), state.Courses, interestScores, reqs, topN)

	shared.RespondWithJSON(w, r, http.StatusOK, RecommendationsResponse{
		Success:         true,
		Recommendations: recs,
	})
}
