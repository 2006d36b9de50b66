package api

import (
	"net/http"

	"github.com/campusware/course-advisor/internal/api/shared"
	"github.com/campusware/course-advisor/internal/questionnaire"
	"github.com/campusware/course-advisor/internal/service"
)

// QuestionnaireHandler serves the interest-assessment question bank and
// aggregates submitted answers.
type QuestionnaireHandler struct {
	bank     []questionnaire.Question
	sessions *service.SessionStore
}

// NewQuestionnaireHandler creates a new QuestionnaireHandler over the given
// question bank.
func NewQuestionnaireHandler(bank []questionnaire.Question, sessions *service.SessionStore) *QuestionnaireHandler {
	return &QuestionnaireHandler{
		bank:     bank,
		sessions: sessions,
	}
}

// GetQuestions handles GET /api/questions requests.
func (h *QuestionnaireHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	questions := make([]QuestionResponse, len(h.bank))
	for i, q := range h.bank {
		questions[i] = QuestionResponse{
			ID:       i,
			Question: q.Text,
			Options:  q.Options(),
			Weight:   q.Weight,
		}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, QuestionsResponse{Questions: questions})
}

// SubmitAnswers handles POST /api/answers requests. Answers referencing
// unknown question ids or unrecognized answer tokens contribute nothing; the
// request still succeeds with whatever scores the valid answers produced.
func (h *QuestionnaireHandler) SubmitAnswers(w http.ResponseWriter, r *http.Request) {
	var req SubmitAnswersRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	scores := questionnaire.Aggregate(req.Answers, h.bank)

	sessionID := ensureSession(w, r, h.sessions)
	h.sessions.SetInterestScores(sessionID, scores)

	shared.RespondWithJSON(w, r, http.StatusOK, InterestScoresResponse{
		Success:        true,
		InterestScores: scores,
	})
}
