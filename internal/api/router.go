package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/campusware/course-advisor/internal/api/middleware"
	"github.com/campusware/course-advisor/internal/api/shared"
	"github.com/campusware/course-advisor/internal/questionnaire"
	"github.com/campusware/course-advisor/internal/service"
)

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Advisor   *service.AdvisorService
	Sessions  *service.SessionStore
	Bank      []questionnaire.Question
	ModelName string
}

// NewRouter builds the HTTP router with all routes and middleware wired.
func NewRouter(deps RouterDeps) http.Handler {
	catalogHandler := NewCatalogHandler(deps.Advisor, deps.Sessions)
	questionnaireHandler := NewQuestionnaireHandler(deps.Bank, deps.Sessions)
	recommendationHandler := NewRecommendationHandler(deps.Advisor, deps.Sessions)
	gpaHandler := NewGPAHandler()

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Trace)

	r.Route("/api", func(r chi.Router) {
		r.Post("/catalog/upload", catalogHandler.Upload)
		r.Post("/catalog/sample", catalogHandler.Sample)
		r.Get("/questions", questionnaireHandler.GetQuestions)
		r.Post("/answers", questionnaireHandler.SubmitAnswers)
		r.Post("/requirements", recommendationHandler.SubmitRequirements)
		r.Post("/recommendations", recommendationHandler.Recommend)
		r.Post("/gpa", gpaHandler.Calculate)
	})

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		shared.RespondWithJSON(w, req, http.StatusOK, HealthResponse{
			Status: "healthy",
			Model:  deps.ModelName,
		})
	})

	return r
}
