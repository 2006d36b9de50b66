// Package gemini implements the recommendation.Enricher interface using
// Google's Gemini API.
package gemini

// promptData represents the data passed to the prompt template.
type promptData struct {
	TopN           int
	InterestScores string
	Requirements   string
	CoursesText    string
}

// recommendationSchema is the shape each element of the model's JSON array
// reply must have. Only code, score, and reasons are trusted; everything else
// about a recommended course is re-joined from the real records by code.
type recommendationSchema struct {
	Code    string   `json:"code"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
}
