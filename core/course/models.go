package course

import (
	"time"

	"github.com/lib/pq"
)

// Course is a catalog entry maintained by the admin screens. Prerequisites
// hold normalized course codes.
type Course struct {
	ID            string         `json:"id" db:"id"`
	Code          string         `json:"code" db:"code"`
	Title         string         `json:"title" db:"title"`
	Credits       float64        `json:"credits" db:"credits"`
	Department    string         `json:"department" db:"department"`
	Description   string         `json:"description,omitempty" db:"description"`
	Prerequisites pq.StringArray `json:"prerequisites" db:"prerequisites"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"` // UTC
	UpdatedAt     time.Time      `json:"updated_at" db:"updated_at"` // UTC
}

type NewCourse struct {
	Code          string   `json:"code" validate:"required,coursecode"`
	Title         string   `json:"title" validate:"required"`
	Credits       float64  `json:"credits" validate:"required,gt=0,lte=6"`
	Department    string   `json:"department" validate:"required"`
	Description   string   `json:"description"`
	Prerequisites []string `json:"prerequisites" validate:"dive,coursecode"`
}

type UpdateCourse struct {
	Title         string   `json:"title" validate:"required"`
	Credits       float64  `json:"credits" validate:"required,gt=0,lte=6"`
	Department    string   `json:"department" validate:"required"`
	Description   string   `json:"description"`
	Prerequisites []string `json:"prerequisites" validate:"dive,coursecode"`
}

// QueryFilter fields are ANDed; Search matches code or title,
// case-insensitively.
type QueryFilter struct {
	Search     string
	Department string
}
