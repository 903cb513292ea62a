package faculty

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Request statuses.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type (
	// Faculty is one directory entry, addressed by initials (the short code
	// students know instructors by, e.g. "MSI").
	Faculty struct {
		ID         string      `json:"id" db:"id"`
		Initials   string      `json:"initials" db:"initials"`
		Name       string      `json:"name" db:"name"`
		Email      null.String `json:"email,omitempty" db:"email"`
		Department string      `json:"department" db:"department"`
		CreatedAt  time.Time   `json:"created_at" db:"created_at"` // UTC
	}

	// Review is one anonymous student rating of a faculty member for a course.
	Review struct {
		ID             string      `json:"id" db:"id"`
		FacultyID      string      `json:"faculty_id" db:"faculty_id"`
		CourseCode     string      `json:"course_code" db:"course_code"`
		Rating         int         `json:"rating" db:"rating"`         // 1-5
		Difficulty     int         `json:"difficulty" db:"difficulty"` // 1-5
		WouldTakeAgain bool        `json:"would_take_again" db:"would_take_again"`
		Comment        null.String `json:"comment,omitempty" db:"comment"`
		CreatedAt      time.Time   `json:"created_at" db:"created_at"` // UTC
	}

	// RatingSummary aggregates a faculty member's reviews.
	RatingSummary struct {
		Count             int     `json:"count"`
		AvgRating         float64 `json:"avg_rating"`
		AvgDifficulty     float64 `json:"avg_difficulty"`
		WouldTakeAgainPct float64 `json:"would_take_again_pct"`
	}

	// Request is a student-submitted ask to add a missing faculty member to
	// the directory; admins approve or reject it.
	Request struct {
		ID         string    `json:"id" db:"id"`
		Initials   string    `json:"initials" db:"initials"`
		Name       string    `json:"name" db:"name"`
		Department string    `json:"department" db:"department"`
		Status     string    `json:"status" db:"status"`
		CreatedAt  time.Time `json:"created_at" db:"created_at"` // UTC
		DecidedAt  null.Time `json:"decided_at,omitempty" db:"decided_at"`
	}
)

type NewFaculty struct {
	Initials   string `json:"initials" validate:"required,alphanum,uppercase,min=2,max=5"`
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"omitempty,email"`
	Department string `json:"department" validate:"required"`
}

type NewReview struct {
	CourseCode     string `json:"course_code" validate:"required,coursecode"`
	Rating         int    `json:"rating" validate:"required,gte=1,lte=5"`
	Difficulty     int    `json:"difficulty" validate:"required,gte=1,lte=5"`
	WouldTakeAgain bool   `json:"would_take_again"`
	Comment        string `json:"comment" validate:"max=2000"`
}

type NewRequest struct {
	Initials   string `json:"initials" validate:"required,alphanum,uppercase,min=2,max=5"`
	Name       string `json:"name" validate:"required"`
	Department string `json:"department" validate:"required"`
}

// DecideRequest carries an admin decision on a pending request.
type DecideRequest struct {
	Approve bool `json:"approve"`
}

// QueryFilter fields are ANDed; Search matches initials or name,
// case-insensitively.
type QueryFilter struct {
	Search     string
	Department string
}
