// Package domain defines the core business entities and their validation
// errors.
package domain

import (
	"errors"
	"strings"
)

// Course-specific validation errors
var (
	// ErrCourseCodeEmpty is returned when a course record has no code.
	ErrCourseCodeEmpty = errors.New("course code cannot be empty")

	// ErrCourseCreditsInvalid is returned when a course's credit count is not positive.
	ErrCourseCreditsInvalid = errors.New("course credits must be positive")
)

// Default values applied during catalog segmentation when the source text
// does not specify them.
const (
	DefaultCredits  = 3
	DefaultCategory = "General"
)

// CourseRecord represents a single course extracted from a catalog document.
// Records are created once by the segmenter and are immutable afterwards:
// the scorer reads them but never mutates them.
type CourseRecord struct {
	Code          string   `json:"code"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Credits       int      `json:"credits"`
	Prerequisites []string `json:"prerequisites"`
	Category      string   `json:"category"`
}

// Validate checks if the CourseRecord has valid data.
// Returns an error if any field fails validation.
func (c *CourseRecord) Validate() error {
	if strings.TrimSpace(c.Code) == "" {
		return ErrCourseCodeEmpty
	}

	if c.Credits <= 0 {
		return ErrCourseCreditsInvalid
	}

	return nil
}

// HasPrerequisites reports whether the course requires any prior courses.
func (c *CourseRecord) HasPrerequisites() bool {
	return len(c.Prerequisites) > 0
}
