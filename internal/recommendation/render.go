package recommendation

import (
	"fmt"
	"strings"

	"github.com/campusware/course-advisor/internal/domain"
)

// courseSeparator divides rendered courses in the combined text block.
const courseSeparator = "\n---\n"

// RenderCourse produces the structured text block representation of a single
// course, as embedded in the enrichment prompt.
func RenderCourse(c domain.CourseRecord) string {
	prereqs := strings.Join(c.Prerequisites, ", ")
	if prereqs == "" {
		prereqs = "None"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Course Code: %s\n", c.Code)
	fmt.Fprintf(&b, "Course Name: %s\n", c.Name)
	fmt.Fprintf(&b, "Description: %s\n", c.Description)
	fmt.Fprintf(&b, "Credits: %d\n", c.Credits)
	fmt.Fprintf(&b, "Prerequisites: %s\n", prereqs)
	fmt.Fprintf(&b, "Category: %s\n", c.Category)
	return b.String()
}

// RenderCourses renders all courses into one text block.
func RenderCourses(records []domain.CourseRecord) string {
	parts := make([]string, len(records))
	for i, c := range records {
		parts[i] = RenderCourse(c)
	}
	return strings.Join(parts, courseSeparator)
}

// CountTokens returns an approximate, model-agnostic size measure for a text:
// its whitespace-delimited word count. It is a sizing heuristic, not a count
// against any specific model vocabulary.
func CountTokens(text string) int {
	return len(strings.Fields(text))
}
