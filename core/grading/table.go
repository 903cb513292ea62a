package grading

// GradeEntry maps a letter grade to its grade point and the percentage marks
// range it is awarded for. W (withdrawal) and I (incomplete) carry no marks
// range and never count toward a GPA.
type GradeEntry struct {
	Letter   string  `json:"letter"`
	Point    float64 `json:"point"`
	MinMarks float64 `json:"min_marks"`
	MaxMarks float64 `json:"max_marks"`
}

// GradeWithdrawal and GradeIncomplete are excluded from both the GPA
// numerator and the credit denominator.
const (
	GradeWithdrawal = "W"
	GradeIncomplete = "I"
	GradeFail       = "F"
)

// Table is the official grading scale, highest grade first.
// Maintained by hand; marks ranges are contiguous and non-overlapping.
var Table = []GradeEntry{
	{Letter: "A", Point: 4.00, MinMarks: 90, MaxMarks: 100},
	{Letter: "A-", Point: 3.67, MinMarks: 86, MaxMarks: 89},
	{Letter: "B+", Point: 3.33, MinMarks: 82, MaxMarks: 85},
	{Letter: "B", Point: 3.00, MinMarks: 78, MaxMarks: 81},
	{Letter: "B-", Point: 2.67, MinMarks: 74, MaxMarks: 77},
	{Letter: "C+", Point: 2.33, MinMarks: 70, MaxMarks: 73},
	{Letter: "C", Point: 2.00, MinMarks: 66, MaxMarks: 69},
	{Letter: "C-", Point: 1.67, MinMarks: 62, MaxMarks: 65},
	{Letter: "D+", Point: 1.33, MinMarks: 58, MaxMarks: 61},
	{Letter: "D", Point: 1.00, MinMarks: 55, MaxMarks: 57},
	{Letter: "F", Point: 0.00, MinMarks: 0, MaxMarks: 54},
	{Letter: GradeWithdrawal, Point: 0.00, MinMarks: -1, MaxMarks: -1},
	{Letter: GradeIncomplete, Point: 0.00, MinMarks: -1, MaxMarks: -1},
}

var pointsByLetter = func() map[string]float64 {
	m := make(map[string]float64, len(Table))
	for _, e := range Table {
		m[e.Letter] = e.Point
	}
	return m
}()

// GradeToPoint returns the grade point for a letter grade.
// Unknown letters map to 0 rather than erroring so the UI stays responsive
// while the user is mid-edit.
func GradeToPoint(letter string) float64 {
	return pointsByLetter[letter]
}

// PointToGrade returns the letter whose grade point is nearest at-or-below
// the given point. Anything below the table floor is an F.
func PointToGrade(point float64) string {
	for _, e := range Table {
		if e.Letter == GradeWithdrawal || e.Letter == GradeIncomplete {
			continue
		}
		if e.Point <= point {
			return e.Letter
		}
	}
	return GradeFail
}

// ClassifyMarks maps a percentage score to its letter grade.
func ClassifyMarks(marks float64) string {
	for _, e := range Table {
		if e.MaxMarks < 0 {
			continue
		}
		if marks >= e.MinMarks && marks <= e.MaxMarks {
			return e.Letter
		}
	}
	return GradeFail
}

// IsPassingGrade reports whether a letter grade earns credit.
// F, W, I, the empty string and unknown letters do not.
func IsPassingGrade(letter string) bool {
	switch letter {
	case "", GradeFail, GradeWithdrawal, GradeIncomplete:
		return false
	}
	_, known := pointsByLetter[letter]
	return known
}

// IsValidGrade reports whether the letter exists in the grading scale.
func IsValidGrade(letter string) bool {
	_, ok := pointsByLetter[letter]
	return ok
}
