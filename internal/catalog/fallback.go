package catalog

import "github.com/campusware/course-advisor/internal/domain"

// fallbackCatalog is the built-in reference catalog used whenever no real
// document is available or segmentation finds nothing. It covers a handful of
// categories so the questionnaire and scorer always have something to match.
var fallbackCatalog = []domain.CourseRecord{
	{
		Code:          "CS101",
		Name:          "Introduction to Computer Science",
		Description:   "Fundamental concepts of programming and computer science",
		Credits:       3,
		Prerequisites: []string{},
		Category:      "Computer Science",
	},
	{
		Code:          "CS201",
		Name:          "Data Structures",
		Description:   "Study of data structures and algorithms",
		Credits:       3,
		Prerequisites: []string{"CS101"},
		Category:      "Computer Science",
	},
	{
		Code:          "MATH101",
		Name:          "Calculus I",
		Description:   "Introduction to differential calculus",
		Credits:       4,
		Prerequisites: []string{},
		Category:      "Mathematics",
	},
	{
		Code:          "MATH201",
		Name:          "Calculus II",
		Description:   "Introduction to integral calculus",
		Credits:       4,
		Prerequisites: []string{"MATH101"},
		Category:      "Mathematics",
	},
	{
		Code:          "ENG101",
		Name:          "English Composition",
		Description:   "Writing and critical thinking",
		Credits:       3,
		Prerequisites: []string{},
		Category:      "English",
	},
	{
		Code:          "PHY101",
		Name:          "Physics I",
		Description:   "Mechanics and thermodynamics",
		Credits:       4,
		Prerequisites: []string{"MATH101"},
		Category:      "Physics",
	},
	{
		Code:          "CS301",
		Name:          "Algorithms",
		Description:   "Algorithm design and analysis",
		Credits:       3,
		Prerequisites: []string{"CS201", "MATH101"},
		Category:      "Computer Science",
	},
	{
		Code:          "CS401",
		Name:          "Artificial Intelligence",
		Description:   "Introduction to AI concepts and machine learning",
		Credits:       3,
		Prerequisites: []string{"CS301"},
		Category:      "Computer Science",
	},
	{
		Code:          "HIST101",
		Name:          "World History",
		Description:   "Survey of world history",
		Credits:       3,
		Prerequisites: []string{},
		Category:      "History",
	},
	{
		Code:          "ART101",
		Name:          "Introduction to Art",
		Description:   "Basic principles of art and design",
		Credits:       3,
		Prerequisites: []string{},
		Category:      "Art",
	},
}

// FallbackCatalog returns a fresh copy of the built-in reference catalog.
// Callers receive their own slice so one session cannot mutate another's view.
func FallbackCatalog() []domain.CourseRecord {
	out := make([]domain.CourseRecord, len(fallbackCatalog))
	copy(out, fallbackCatalog)
	return out
}
