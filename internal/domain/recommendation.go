package domain

// Recommendation pairs a course with the score it earned and the ordered list
// of reasons that produced that score. Reasons are append-only and surface to
// the end user as justification, so their order is part of the contract.
type Recommendation struct {
	Course  CourseRecord `json:"course"`
	Score   float64      `json:"score"`
	Reasons []string     `json:"reasons"`
}

// GradeEntry is a single graded course: a letter grade plus the credit hours
// it was worth.
type GradeEntry struct {
	Grade   string  `json:"grade"`
	Credits float64 `json:"credits"`
}
