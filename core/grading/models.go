package grading

// CourseInput is one course row as entered by the student. IDs are
// client-local; they only exist so the UI can address rows.
//
// A retake row carries the earlier attempt's letter in PreviousGrade for
// display/audit. The aggregator counts the credit hours once, with the
// latest grade's points; it never re-scans history.
type CourseInput struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Credit        float64 `json:"credit" validate:"omitempty,gt=0"`
	Grade         string  `json:"grade"`
	IsRetake      bool    `json:"is_retake"`
	PreviousGrade string  `json:"previous_grade"`
}

// TrimesterInput holds the courses of one trimester. Trimesters are always
// processed oldest first regardless of how the UI displays them.
type TrimesterInput struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Courses []CourseInput `json:"courses" validate:"dive"`
}

// CGPAResult is the per-trimester row of the cumulative series. The
// cumulative figures are "as of this trimester" so the series can feed a
// trend chart directly.
type CGPAResult struct {
	TrimesterName    string  `json:"trimester_name"`
	TrimesterCredits float64 `json:"trimester_credits"`
	GPA              float64 `json:"gpa"`
	CGPA             float64 `json:"cgpa"`
	TotalCredits     float64 `json:"total_credits"`
	EarnedCredits    float64 `json:"earned_credits"`
}

// CompletedCourse is the deduplicated record of a course the student has
// passed, keeping the best attempt ever. Code is normalized (whitespace
// stripped, upper-cased).
type CompletedCourse struct {
	Code  string  `json:"code"`
	Grade string  `json:"grade"`
	Point float64 `json:"point"`
}
