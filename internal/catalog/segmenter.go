// Package catalog turns raw catalog text into course records.
//
// Segmentation is deliberately heuristic and line-oriented: a line whose first
// whitespace-delimited token contains a digit starts a new record, continuation
// lines accumulate into the description, and a blank line closes the record
// under construction. It is not a document-structure parser.
package catalog

import (
	"strings"
	"unicode"

	"github.com/campusware/course-advisor/internal/domain"
)

// Segment splits raw catalog text into course records.
//
// It never returns an error: input that yields no recognizable records
// (empty text, unparsable text, a missing source document) produces the
// built-in fallback catalog instead, so the rest of the pipeline always has
// something to work with.
func Segment(raw string) []domain.CourseRecord {
	records := segmentText(raw)
	if len(records) == 0 {
		return FallbackCatalog()
	}
	return records
}

func segmentText(raw string) []domain.CourseRecord {
	var records []domain.CourseRecord
	var current *domain.CourseRecord

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)

		if line == "" {
			if current != nil {
				records = append(records, *current)
				current = nil
			}
			continue
		}

		tokens := strings.Fields(line)
		if startsRecord(tokens[0]) {
			if current != nil {
				records = append(records, *current)
			}
			current = newRecord(tokens, line)
			continue
		}

		if current != nil {
			if current.Description == "" {
				current.Description = line
			} else {
				current.Description += " " + line
			}
		}
		// A continuation line with no open record cannot be attached to
		// anything and is dropped.
	}

	if current != nil {
		records = append(records, *current)
	}

	return records
}

// startsRecord reports whether a line's first token looks like a course code
// (e.g. CS101, MATH201): any token containing at least one digit.
func startsRecord(token string) bool {
	return strings.ContainsFunc(token, unicode.IsDigit)
}

func newRecord(tokens []string, line string) *domain.CourseRecord {
	name := line
	if len(tokens) > 1 {
		name = strings.Join(tokens[1:], " ")
	}

	return &domain.CourseRecord{
		Code:          tokens[0],
		Name:          name,
		Credits:       domain.DefaultCredits,
		Prerequisites: []string{},
		Category:      domain.DefaultCategory,
	}
}
