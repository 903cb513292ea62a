package grading

import (
	"math"

	"github.com/campuskit/backend/core"
)

// CalculateCGPA folds the trimesters chronologically into a running GPA/CGPA
// series. Prior academic history is seeded as priorCredits hours at priorCGPA.
//
// Counting rules:
//   - W and I are skipped from both the numerator and the credit denominator.
//   - F contributes 0 points but its credit hours stay in the denominator.
//   - A retake contributes its credit hours once, with the latest grade's
//     points; PreviousGrade is audit-only and never summed.
//   - Rows without a grade or with credit <= 0 are ignored (mid-edit rows).
//
// Input is assumed pre-validated; see InitValidators.
func CalculateCGPA(trimesters []TrimesterInput, priorCredits, priorCGPA float64) []CGPAResult {
	cumPoints := priorCredits * priorCGPA
	cumCredits := priorCredits
	cumEarned := priorCredits

	results := make([]CGPAResult, 0, len(trimesters))
	for _, tri := range trimesters {
		var triPoints, triCredits, triEarned float64
		for _, c := range tri.Courses {
			letter := core.CleanString(c.Grade)
			if letter == "" || c.Credit <= 0 {
				continue
			}
			if letter == GradeWithdrawal || letter == GradeIncomplete {
				continue
			}
			triPoints += GradeToPoint(letter) * c.Credit
			triCredits += c.Credit
			if IsPassingGrade(letter) {
				triEarned += c.Credit
			}
		}

		cumPoints += triPoints
		cumCredits += triCredits
		cumEarned += triEarned

		var gpa, cgpa float64
		if triCredits > 0 {
			gpa = triPoints / triCredits
		}
		if cumCredits > 0 {
			cgpa = cumPoints / cumCredits
		}

		results = append(results, CGPAResult{
			TrimesterName:    tri.Name,
			TrimesterCredits: triCredits,
			GPA:              round2(gpa),
			CGPA:             round2(cgpa),
			TotalCredits:     cumCredits,
			EarnedCredits:    cumEarned,
		})
	}
	return results
}

// CompletedCourses flattens the trimester history into one record per unique
// course code, keeping the best attempt ever ("best grade wins"). This is
// deliberately different from the aggregator's latest-attempt rule: a later
// retake with a worse grade must not regress the completion record.
// Courses without a passing grade are not completed.
func CompletedCourses(trimesters []TrimesterInput) []CompletedCourse {
	best := make(map[string]CompletedCourse)
	order := make([]string, 0)

	for _, tri := range trimesters {
		for _, c := range tri.Courses {
			code := core.CleanCode(c.Name)
			letter := core.CleanString(c.Grade)
			if code == "" || !IsPassingGrade(letter) {
				continue
			}
			point := GradeToPoint(letter)
			prev, seen := best[code]
			if !seen {
				order = append(order, code)
			}
			if !seen || point > prev.Point {
				best[code] = CompletedCourse{Code: code, Grade: letter, Point: point}
			}
		}
	}

	completed := make([]CompletedCourse, 0, len(order))
	for _, code := range order {
		completed = append(completed, best[code])
	}
	return completed
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
