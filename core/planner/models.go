package planner

import "time"

// Day codes used by the section datasets ("Sat".."Fri"; the academic week
// starts on Saturday).
var Days = []string{"Sat", "Sun", "Mon", "Tue", "Wed", "Thu", "Fri"}

type (
	// Section is one scheduled class meeting pattern. Times are minutes from
	// midnight so overlap checks are plain integer comparisons.
	Section struct {
		CourseCode string   `json:"course_code" db:"course_code"`
		Section    string   `json:"section" db:"section"`
		Faculty    string   `json:"faculty" db:"faculty"`
		Days       []string `json:"days"`
		StartMin   int      `json:"start_min" db:"start_min"`
		EndMin     int      `json:"end_min" db:"end_min"`
		Room       string   `json:"room" db:"room"`
		Capacity   int      `json:"capacity" db:"capacity"`
	}

	// Dataset is one trimester's worth of offered sections, uploaded in bulk
	// by admins.
	Dataset struct {
		ID        string    `json:"id" db:"id"`
		Trimester string    `json:"trimester" db:"trimester"`
		Sections  []Section `json:"sections"`
		CreatedAt time.Time `json:"created_at" db:"created_at"` // UTC
	}
)

type NewSection struct {
	CourseCode string   `json:"course_code" validate:"required,coursecode"`
	Section    string   `json:"section" validate:"required"`
	Faculty    string   `json:"faculty"`
	Days       []string `json:"days" validate:"required,min=1,dive,oneof=Sat Sun Mon Tue Wed Thu Fri"`
	StartMin   int      `json:"start_min" validate:"gte=0,lt=1440"`
	EndMin     int      `json:"end_min" validate:"gtfield=StartMin,lte=1440"`
	Room       string   `json:"room"`
	Capacity   int      `json:"capacity" validate:"gte=0"`
}

type NewDataset struct {
	Trimester string       `json:"trimester" validate:"required,trimester"`
	Sections  []NewSection `json:"sections" validate:"required,min=1,dive"`
}

type (
	// Clash is a pair of selected sections meeting at overlapping times on a
	// shared day.
	Clash struct {
		First  string `json:"first"`  // "CSE2215 [A]"
		Second string `json:"second"` // "CSE2217 [B]"
		Day    string `json:"day"`
	}

	// UnmetPrerequisite flags a selected course whose prerequisite is neither
	// completed nor among the selection.
	UnmetPrerequisite struct {
		CourseCode   string `json:"course_code"`
		Prerequisite string `json:"prerequisite"`
	}

	// CheckResult is everything the planner screen warns about.
	CheckResult struct {
		Clashes      []Clash             `json:"clashes"`
		Unmet        []UnmetPrerequisite `json:"unmet_prerequisites"`
		TotalCredits float64             `json:"total_credits"`
		HeavyLoad    bool                `json:"heavy_load"`
	}
)
