package api

import (
	"github.com/campusware/course-advisor/internal/domain"
	"github.com/campusware/course-advisor/internal/questionnaire"
	"github.com/campusware/course-advisor/internal/requirements"
)

// Common request/response structures

// CatalogResponse is returned after a catalog is loaded into the session,
// whether from an uploaded document or the built-in sample data.
type CatalogResponse struct {
	Success bool                  `json:"success"`
	Courses []domain.CourseRecord `json:"courses"`
	Count   int                   `json:"count"`
}

// QuestionResponse is one question of the interest assessment as shown to
// the student.
type QuestionResponse struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Weight   float64  `json:"weight"`
}

// QuestionsResponse wraps the full question bank.
type QuestionsResponse struct {
	Questions []QuestionResponse `json:"questions"`
}

// SubmitAnswersRequest carries the student's questionnaire answers.
type SubmitAnswersRequest struct {
	Answers []questionnaire.Answer `json:"answers"`
}

// InterestScoresResponse is returned after answers are aggregated.
type InterestScoresResponse struct {
	Success        bool               `json:"success"`
	InterestScores map[string]float64 `json:"interest_scores"`
}

// SubmitRequirementsRequest carries the student's graduation requirements.
type SubmitRequirementsRequest struct {
	Requirements requirements.Requirements `json:"requirements"`
}

// RequirementsResponse echoes the normalized requirements that were stored.
type RequirementsResponse struct {
	Success      bool                      `json:"success"`
	Requirements requirements.Requirements `json:"requirements"`
}

// RecommendationsRequest asks for the session's course recommendations.
// TopN defaults to 5 when omitted.
type RecommendationsRequest struct {
	TopN int `json:"top_n" validate:"gte=0"`
}

// RecommendationsResponse carries the ranked recommendations.
type RecommendationsResponse struct {
	Success         bool                    `json:"success"`
	Recommendations []domain.Recommendation `json:"recommendations"`
}

// GradeEntryRequest is one graded course in a GPA calculation request.
// Credits must be numeric in the JSON; a non-numeric value is rejected at
// decode time, before any arithmetic runs.
type GradeEntryRequest struct {
	Grade   string  `json:"grade"   validate:"required"`
	Credits float64 `json:"credits" validate:"gte=0"`
}

// CalculateGPARequest carries grades for a GPA calculation, plus an optional
// prior cumulative GPA. CurrentCredits > 0 switches to the cumulative
// calculation.
type CalculateGPARequest struct {
	Grades         []GradeEntryRequest `json:"grades"          validate:"required,min=1,dive"`
	CurrentGPA     float64             `json:"current_gpa"     validate:"gte=0,lte=4"`
	CurrentCredits float64             `json:"current_credits" validate:"gte=0"`
}

// CalculateGPAResponse wraps either a term result or a cumulative result.
type CalculateGPAResponse struct {
	Success bool        `json:"success"`
	Result  interface{} `json:"result"`
}

// HealthResponse reports service liveness and the configured model.
type HealthResponse struct {
	Status string `json:"status"`
	Model  string `json:"model"`
}
