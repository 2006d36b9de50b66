// Package questionnaire holds the interest-assessment question bank and the
// aggregation of submitted answers into per-category interest scores.
package questionnaire

// Question is a single interest-assessment question. Categories maps a
// normalized (lower-cased, trimmed) answer token to the category names that
// answer credits; Weight is the increment each credited category receives.
type Question struct {
	Text       string
	Categories map[string][]string
	Weight     float64
}

// Options returns the valid answer tokens for the question in a stable order.
func (q Question) Options() []string {
	// Fixed display order: yes/no style questions first show the
	// affirmative, the one preference question shows theoretical first.
	ordered := []string{"yes", "no", "theoretical", "practical"}

	var opts []string
	for _, o := range ordered {
		if _, ok := q.Categories[o]; ok {
			opts = append(opts, o)
		}
	}
	return opts
}

// DefaultBank is the fixed question bank used by the interest assessment.
// Question ids are positions in this slice.
var DefaultBank = []Question{
	{
		Text:       "Do you enjoy working with technology and computers?",
		Categories: map[string][]string{"yes": {"Computer Science"}, "no": {}},
		Weight:     3,
	},
	{
		Text:       "Are you interested in solving mathematical problems?",
		Categories: map[string][]string{"yes": {"Mathematics", "Computer Science", "Physics"}, "no": {}},
		Weight:     2,
	},
	{
		Text:       "Do you enjoy writing and communication?",
		Categories: map[string][]string{"yes": {"English"}, "no": {}},
		Weight:     2,
	},
	{
		Text:       "Are you interested in understanding how the physical world works?",
		Categories: map[string][]string{"yes": {"Physics"}, "no": {}},
		Weight:     2,
	},
	{
		Text:       "Do you have an interest in history and social studies?",
		Categories: map[string][]string{"yes": {"History"}, "no": {}},
		Weight:     1,
	},
	{
		Text:       "Are you creative and interested in visual arts?",
		Categories: map[string][]string{"yes": {"Art"}, "no": {}},
		Weight:     1,
	},
	{
		Text:       "Do you want to learn about artificial intelligence and machine learning?",
		Categories: map[string][]string{"yes": {"Computer Science"}, "no": {}},
		Weight:     3,
	},
	{
		Text:       "Do you prefer theoretical or practical courses?",
		Categories: map[string][]string{"theoretical": {"Mathematics", "Physics"}, "practical": {"Computer Science", "Art"}},
		Weight:     2,
	},
	{
		Text:       "Do you enjoy problem-solving and logical thinking?",
		Categories: map[string][]string{"yes": {"Computer Science", "Mathematics"}, "no": {}},
		Weight:     2,
	},
	{
		Text:       "Are you interested in a career in technology?",
		Categories: map[string][]string{"yes": {"Computer Science"}, "no": {}},
		Weight:     3,
	},
}
