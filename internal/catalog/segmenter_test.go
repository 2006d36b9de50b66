package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusware/course-advisor/internal/domain"
)

func TestSegmentBasicRecords(t *testing.T) {
	t.Parallel()

	raw := "CS101 Introduction to Computer Science\n" +
		"Fundamental concepts of programming\n" +
		"and computer science\n" +
		"\n" +
		"MATH201 Calculus II\n" +
		"Introduction to integral calculus\n"

	records := Segment(raw)
	require.Len(t, records, 2)

	assert.Equal(t, "CS101", records[0].Code)
	assert.Equal(t, "Introduction to Computer Science", records[0].Name)
	assert.Equal(t, "Fundamental concepts of programming and computer science", records[0].Description)
	assert.Equal(t, domain.DefaultCredits, records[0].Credits)
	assert.Empty(t, records[0].Prerequisites)
	assert.Equal(t, domain.DefaultCategory, records[0].Category)

	assert.Equal(t, "MATH201", records[1].Code)
	assert.Equal(t, "Calculus II", records[1].Name)
	assert.Equal(t, "Introduction to integral calculus", records[1].Description)
}

func TestSegmentCodeLineStartsNewRecord(t *testing.T) {
	t.Parallel()

	// No blank line between courses: the code line itself flushes the
	// record under construction.
	raw := "CS101 Intro\nsome description\nCS201 Data Structures\n"

	records := Segment(raw)
	require.Len(t, records, 2)
	assert.Equal(t, "CS101", records[0].Code)
	assert.Equal(t, "some description", records[0].Description)
	assert.Equal(t, "CS201", records[1].Code)
}

func TestSegmentSingleTokenLine(t *testing.T) {
	t.Parallel()

	// A code-only line uses the whole line as the name.
	records := Segment("CS101\n")
	require.Len(t, records, 1)
	assert.Equal(t, "CS101", records[0].Code)
	assert.Equal(t, "CS101", records[0].Name)
}

func TestSegmentDiscardsOrphanLines(t *testing.T) {
	t.Parallel()

	// Leading prose with no digits and no open record attaches to nothing.
	raw := "Course Catalog\nFall Semester\n\nCS101 Intro\n"

	records := Segment(raw)
	require.Len(t, records, 1)
	assert.Equal(t, "CS101", records[0].Code)
	assert.Empty(t, records[0].Description)
}

func TestSegmentBlankLineRuns(t *testing.T) {
	t.Parallel()

	raw := "CS101 Intro\n\n\n\nMATH101 Calculus I\n\n\n"

	records := Segment(raw)
	require.Len(t, records, 2)
}

func TestSegmentFlushesAtEndOfInput(t *testing.T) {
	t.Parallel()

	records := Segment("CS101 Intro\ntrailing description")
	require.Len(t, records, 1)
	assert.Equal(t, "trailing description", records[0].Description)
}

func TestSegmentEmptyInputUsesFallback(t *testing.T) {
	t.Parallel()

	first := Segment("")
	second := Segment("")

	require.NotEmpty(t, first)
	assert.Equal(t, first, second, "fallback catalog size must be constant across calls")
	assert.Equal(t, FallbackCatalog(), first)
}

func TestSegmentUnparsableInputUsesFallback(t *testing.T) {
	t.Parallel()

	// Text with no digit-bearing tokens never opens a record.
	records := Segment("welcome to the catalog\nall about courses\n")
	assert.Equal(t, FallbackCatalog(), records)
}

func TestFallbackCatalogIsACopy(t *testing.T) {
	t.Parallel()

	first := FallbackCatalog()
	first[0].Code = "MUTATED"

	second := FallbackCatalog()
	assert.Equal(t, "CS101", second[0].Code, "callers must not be able to mutate the shared catalog")
}

func TestFallbackCatalogRecordsAreValid(t *testing.T) {
	t.Parallel()

	for _, record := range FallbackCatalog() {
		record := record
		assert.NoError(t, record.Validate(), "record %s", record.Code)
	}
}
