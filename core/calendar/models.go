package calendar

import "time"

// Event categories.
const (
	CategoryClass    = "class"
	CategoryExam     = "exam"
	CategoryHoliday  = "holiday"
	CategoryDeadline = "deadline"
)

var Categories = []string{CategoryClass, CategoryExam, CategoryHoliday, CategoryDeadline}

type (
	// Event is one dated entry of an academic calendar.
	Event struct {
		Date     time.Time `json:"date" db:"date"`
		Title    string    `json:"title" db:"title"`
		Category string    `json:"category" db:"category"`
	}

	// Calendar is the academic calendar of one trimester. Only published
	// calendars are visible to students; drafts stay admin-only.
	Calendar struct {
		ID        string    `json:"id" db:"id"`
		Trimester string    `json:"trimester" db:"trimester"`
		Year      int       `json:"year" db:"year"`
		Published bool      `json:"published" db:"published"`
		Events    []Event   `json:"events"`
		CreatedAt time.Time `json:"created_at" db:"created_at"` // UTC
		UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // UTC
	}
)

type NewEvent struct {
	Date     time.Time `json:"date" validate:"required"`
	Title    string    `json:"title" validate:"required"`
	Category string    `json:"category" validate:"required,oneof=class exam holiday deadline"`
}

type NewCalendar struct {
	Trimester string     `json:"trimester" validate:"required,trimester"`
	Year      int        `json:"year" validate:"required,gte=2000,lte=2100"`
	Published bool       `json:"published"`
	Events    []NewEvent `json:"events" validate:"dive"`
}

type UpdateCalendar struct {
	Trimester string     `json:"trimester" validate:"required,trimester"`
	Year      int        `json:"year" validate:"required,gte=2000,lte=2100"`
	Published *bool      `json:"published"`
	Events    []NewEvent `json:"events" validate:"dive"`
}
