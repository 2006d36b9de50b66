// Package gpa implements grade-point-average arithmetic.
//
// Both entry points are pure functions over well-typed numeric input; the
// boundary accepting raw user-submitted values is responsible for rejecting
// non-numeric credits before they reach this package.
package gpa

import (
	"math"
	"strings"

	"github.com/campusware/course-advisor/internal/domain"
)

// gradePoints maps letter grades to grade-point values on a 4.0-anchored scale.
var gradePoints = map[string]float64{
	"A+": 4.0, "A": 4.0, "A-": 3.7,
	"B+": 3.3, "B": 3.0, "B-": 2.7,
	"C+": 2.3, "C": 2.0, "C-": 1.7,
	"D+": 1.3, "D": 1.0, "D-": 0.7,
	"F": 0.0,
}

// Result holds the outcome of a single-term GPA computation.
// All fields are derived, never independently mutated.
type Result struct {
	GPA          float64 `json:"gpa"`
	TotalCredits float64 `json:"total_credits"`
	GradePoints  float64 `json:"grade_points"`
}

// CumulativeResult combines a prior cumulative GPA with a new term.
type CumulativeResult struct {
	CumulativeGPA    float64 `json:"cumulative_gpa"`
	TotalCredits     float64 `json:"total_credits"`
	TotalGradePoints float64 `json:"total_grade_points"`
	SemesterGPA      float64 `json:"semester_gpa"`
}

// Compute calculates the GPA for a list of graded courses.
//
// Grades are normalized to uppercase before lookup; an entry whose grade is
// not in the table is skipped entirely, contributing neither credits nor
// grade points. GPA and grade points are rounded to two decimal places;
// total credits are returned unrounded. Empty input yields all zeros.
func Compute(grades []domain.GradeEntry) Result {
	var totalCredits, totalGradePoints float64

	for _, entry := range grades {
		points, ok := gradePoints[strings.ToUpper(entry.Grade)]
		if !ok {
			continue
		}
		totalGradePoints += points * entry.Credits
		totalCredits += entry.Credits
	}

	var avg float64
	if totalCredits > 0 {
		avg = totalGradePoints / totalCredits
	}

	return Result{
		GPA:          round2(avg),
		TotalCredits: totalCredits,
		GradePoints:  round2(totalGradePoints),
	}
}

// ComputeCumulative folds a new term's grades into a prior cumulative GPA.
//
// Prior grade points are derived as priorGPA * priorCredits; the new term is
// computed with Compute and reported unchanged as the semester GPA.
func ComputeCumulative(priorGPA, priorCredits float64, grades []domain.GradeEntry) CumulativeResult {
	priorGradePoints := priorGPA * priorCredits

	term := Compute(grades)

	totalCredits := priorCredits + term.TotalCredits
	totalGradePoints := priorGradePoints + term.GradePoints

	var cumulative float64
	if totalCredits > 0 {
		cumulative = totalGradePoints / totalCredits
	}

	return CumulativeResult{
		CumulativeGPA:    round2(cumulative),
		TotalCredits:     totalCredits,
		TotalGradePoints: round2(totalGradePoints),
		SemesterGPA:      term.GPA,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
