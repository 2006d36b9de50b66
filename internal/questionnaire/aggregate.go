package questionnaire

import "strings"

// Answer is one submitted questionnaire answer. QuestionID indexes into the
// question bank.
type Answer struct {
	QuestionID int    `json:"question_id"`
	Answer     string `json:"answer"`
}

// Aggregate sums submitted answers into per-category interest scores against
// the given question bank.
//
// Lenient by contract: an out-of-range question id is ignored, and an answer
// token the question does not recognize credits nothing. Aggregation is pure
// summation, so answer order never affects the result, and no answer can
// produce a negative contribution.
func Aggregate(answers []Answer, bank []Question) map[string]float64 {
	scores := make(map[string]float64)

	for _, a := range answers {
		if a.QuestionID < 0 || a.QuestionID >= len(bank) {
			continue
		}

		q := bank[a.QuestionID]
		token := strings.ToLower(strings.TrimSpace(a.Answer))
		for _, category := range q.Categories[token] {
			scores[category] += q.Weight
		}
	}

	return scores
}
