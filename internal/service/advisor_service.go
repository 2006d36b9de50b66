// Package service contains the application services that orchestrate the
// core pipeline for the transport layer.
package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/campusware/course-advisor/internal/catalog"
	"github.com/campusware/course-advisor/internal/domain"
	"github.com/campusware/course-advisor/internal/recommendation"
	"github.com/campusware/course-advisor/internal/requirements"
)

// AdvisorService wires the catalog, scorer, and optional enrichment service
// together. Every method is a pure function of its inputs plus the injected
// collaborators; the service itself holds no per-request state.
type AdvisorService struct {
	extractor catalog.TextExtractor
	enricher  recommendation.Enricher
	logger    *slog.Logger
}

// NewAdvisorService creates an AdvisorService. Both collaborators are
// optional: a nil extractor limits catalog loading to the built-in sample
// data, and a nil enricher means every recommendation request is served by
// the rule-based scorer.
func NewAdvisorService(
	extractor catalog.TextExtractor,
	enricher recommendation.Enricher,
	logger *slog.Logger,
) *AdvisorService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AdvisorService{
		extractor: extractor,
		enricher:  enricher,
		logger:    logger,
	}
}

// LoadCatalog extracts text from an uploaded document and segments it into
// course records. Extraction failures are converted into the empty-input
// path, so the caller always receives a usable catalog (possibly the
// built-in fallback), never an error.
func (s *AdvisorService) LoadCatalog(ctx context.Context, r io.ReaderAt, size int64) []domain.CourseRecord {
	var text string
	if s.extractor != nil {
		extracted, err := s.extractor.ExtractText(ctx, r, size)
		if err != nil {
			s.logger.WarnContext(ctx, "document text extraction failed, using fallback catalog",
				"error", err)
		} else {
			text = extracted
		}
	}

	return catalog.Segment(text)
}

// SampleCatalog returns the built-in reference catalog.
func (s *AdvisorService) SampleCatalog() []domain.CourseRecord {
	return catalog.FallbackCatalog()
}

// Recommend produces the ranked top-N course recommendations.
//
// When an enrichment service is configured it is tried first; any error or
// empty result from it is silently converted into the deterministic
// rule-based ranking. Enrichment failure is never surfaced to the caller.
func (s *AdvisorService) Recommend(
	ctx context.Context,
	records []domain.CourseRecord,
	interestScores map[string]float64,
	reqs requirements.Requirements,
	topN int,
) []domain.Recommendation {
	if s.enricher != nil {
		recs, err := s.enricher.Enrich(ctx, records, interestScores, reqs, topN)
		if err != nil {
			s.logger.WarnContext(ctx, "enrichment failed, falling back to rule-based ranking",
				"error", err)
		} else if len(recs) > 0 {
			return recs
		}
	}

	return recommendation.ScoreAndRank(records, interestScores, reqs, topN)
}
