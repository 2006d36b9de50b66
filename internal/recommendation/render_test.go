package recommendation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusware/course-advisor/internal/domain"
)

func TestRenderCourse(t *testing.T) {
	t.Parallel()

	c := domain.CourseRecord{
		Code:          "CS201",
		Name:          "Data Structures",
		Description:   "Study of data structures and algorithms",
		Credits:       3,
		Prerequisites: []string{"CS101"},
		Category:      "Computer Science",
	}

	want := "Course Code: CS201\n" +
		"Course Name: Data Structures\n" +
		"Description: Study of data structures and algorithms\n" +
		"Credits: 3\n" +
		"Prerequisites: CS101\n" +
		"Category: Computer Science\n"
	assert.Equal(t, want, RenderCourse(c))
}

func TestRenderCourseNoPrerequisites(t *testing.T) {
	t.Parallel()

	c := domain.CourseRecord{Code: "CS101", Name: "Intro", Credits: 3, Category: "Computer Science"}
	assert.Contains(t, RenderCourse(c), "Prerequisites: None\n")
}

func TestRenderCoursesJoinsWithSeparator(t *testing.T) {
	t.Parallel()

	records := []domain.CourseRecord{
		{Code: "CS101", Name: "Intro", Credits: 3},
		{Code: "CS201", Name: "Data Structures", Credits: 3},
	}

	text := RenderCourses(records)
	assert.Equal(t, 1, strings.Count(text, "\n---\n"))
	assert.Contains(t, text, "Course Code: CS101")
	assert.Contains(t, text, "Course Code: CS201")
}

func TestCountTokens(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, CountTokens(""))
	assert.Equal(t, 0, CountTokens("   \n\t "))
	assert.Equal(t, 5, CountTokens("Course Code: CS101 Credits: 3"))
}
