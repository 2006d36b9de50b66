// Package requirements models a student's graduation-requirement targets.
package requirements

// Requirements maps category names to the credit count still required in
// each, alongside the overall graduation target and credits already earned.
// A category absent from Categories requires 0 credits.
type Requirements struct {
	Categories       map[string]int `json:"categories"`
	TotalCredits     int            `json:"total_credits"`
	CompletedCredits int            `json:"completed_credits"`
}

// Normalize returns a copy with negative values clamped to zero and a nil
// category map replaced by an empty one. Input maps are never mutated.
func (r Requirements) Normalize() Requirements {
	out := Requirements{
		Categories:       make(map[string]int, len(r.Categories)),
		TotalCredits:     max(r.TotalCredits, 0),
		CompletedCredits: max(r.CompletedCredits, 0),
	}

	for category, credits := range r.Categories {
		out.Categories[category] = max(credits, 0)
	}

	return out
}

// CreditsFor returns the credits required in a category, 0 when absent.
func (r Requirements) CreditsFor(category string) int {
	return r.Categories[category]
}

// Remaining returns the credits still needed to reach the graduation target,
// never negative.
func (r Requirements) Remaining() int {
	return max(r.TotalCredits-r.CompletedCredits, 0)
}
