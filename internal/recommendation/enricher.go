package recommendation

import (
	"context"
	"errors"

	"github.com/campusware/course-advisor/internal/domain"
	"github.com/campusware/course-advisor/internal/requirements"
)

// Common errors returned by enrichment implementations.
var (
	// ErrUnavailable is returned when the enrichment service cannot be reached.
	ErrUnavailable = errors.New("enrichment service unavailable")

	// ErrInvalidResponse is returned when the service's response cannot be
	// parsed into the expected shape.
	ErrInvalidResponse = errors.New("invalid response from enrichment service")

	// ErrInvalidConfig is returned when the enricher configuration is invalid.
	ErrInvalidConfig = errors.New("invalid enricher configuration")
)

// Enricher defines the interface to the optional ranking-enrichment service.
// This boundary keeps the application core free of any AI/LLM dependency,
// following the hexagonal architecture pattern.
//
// An Enricher accepts the exact inputs the rule-based scorer accepts and, on
// success, returns recommendations in the same shape the scorer produces. It
// is strictly optional: callers must treat any error, or any unusable result,
// identically to the service being absent and fall back to ScoreAndRank.
type Enricher interface {
	Enrich(
		ctx context.Context,
		records []domain.CourseRecord,
		interestScores map[string]float64,
		reqs requirements.Requirements,
		topN int,
	) ([]domain.Recommendation, error)
}
