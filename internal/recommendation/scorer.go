// Package recommendation implements the deterministic rule-based course
// scorer and the boundary to the optional ranking-enrichment service.
package recommendation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/campusware/course-advisor/internal/domain"
	"github.com/campusware/course-advisor/internal/requirements"
)

// Scoring constants. Scores are plain sums of these additive terms, never
// capped or normalized.
const (
	interestMultiplier = 10.0
	requirementBonus   = 20.0
	noPrereqBonus      = 15.0
	foundationalBonus  = 10.0

	foundationalMarker = "101"
)

// DefaultTopN is the number of recommendations returned when the caller does
// not ask for a specific count.
const DefaultTopN = 5

// ScoreAndRank scores every record against the student's interest scores and
// graduation requirements, then returns the topN highest-scoring courses.
//
// Rules fire in a fixed order and each appends one reason when it does:
// interest match, requirement fulfillment, no-prerequisite bonus,
// foundational-course bonus. The result is sorted by descending score with
// ties keeping input order; an empty record list yields an empty result.
func ScoreAndRank(
	records []domain.CourseRecord,
	interestScores map[string]float64,
	reqs requirements.Requirements,
	topN int,
) []domain.Recommendation {
	if topN < 0 {
		topN = 0
	}

	scored := make([]domain.Recommendation, 0, len(records))
	for _, record := range records {
		scored = append(scored, scoreCourse(record, interestScores, reqs))
	}

	// Stable: equal scores keep the order records were presented in.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if topN < len(scored) {
		scored = scored[:topN]
	}
	return scored
}

func scoreCourse(
	record domain.CourseRecord,
	interestScores map[string]float64,
	reqs requirements.Requirements,
) domain.Recommendation {
	var score float64
	var reasons []string

	if interest, ok := interestScores[record.Category]; ok {
		contribution := interest * interestMultiplier
		score += contribution
		reasons = append(reasons,
			fmt.Sprintf("Matches your interest in %s (score: %.1f)", record.Category, contribution))
	}

	if needed := reqs.CreditsFor(record.Category); needed > 0 {
		score += requirementBonus
		reasons = append(reasons,
			fmt.Sprintf("Fulfills %s requirement (%d credits needed)", record.Category, needed))
	}

	if !record.HasPrerequisites() {
		score += noPrereqBonus
		reasons = append(reasons, "No prerequisites required")
	}

	if strings.Contains(record.Code, foundationalMarker) {
		score += foundationalBonus
		reasons = append(reasons, "Foundational course")
	}

	return domain.Recommendation{
		Course:  record,
		Score:   score,
		Reasons: reasons,
	}
}
