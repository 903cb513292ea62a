package career

import "github.com/campuskit/backend/core/grading"

// Importance ranks how much a key course matters for a track.
type Importance string

const (
	ImportanceCritical  Importance = "critical"
	ImportanceImportant Importance = "important"
	ImportanceHelpful   Importance = "helpful"
)

var importanceRank = map[Importance]int{
	ImportanceCritical:  0,
	ImportanceImportant: 1,
	ImportanceHelpful:   2,
}

// Growth is the hiring outlook of a track.
type Growth string

const (
	GrowthHigh   Growth = "high"
	GrowthStable Growth = "stable"
)

type (
	// ProgramCourse is one required course of a degree program.
	ProgramCourse struct {
		Code          string   `json:"code"`
		Name          string   `json:"name"`
		Credits       float64  `json:"credits"`
		Prerequisites []string `json:"prerequisites"`
	}

	// Program is a degree program's required-course catalog.
	Program struct {
		ID           string          `json:"id"`
		Name         string          `json:"name"`
		TotalCredits float64         `json:"total_credits"`
		Courses      []ProgramCourse `json:"courses"`
	}

	// Track is a career path within a program. KeyCourseCodes are the courses
	// most predictive of fit; CourseImportance ranks them (unlisted codes
	// default to "important"). TargetPoint is the grade point the track's
	// competitiveness calls for (0 means the default B+).
	Track struct {
		ID               string                `json:"id"`
		ProgramID        string                `json:"program_id"`
		Title            string                `json:"title"`
		Description      string                `json:"description"`
		Icon             string                `json:"icon"`
		KeyCourseCodes   []string              `json:"key_course_codes"`
		JobTitles        []string              `json:"job_titles"`
		AvgSalaryBDT     int                   `json:"avg_salary_bdt"`
		Growth           Growth                `json:"growth"`
		Skills           []string              `json:"skills"`
		TargetPoint      float64               `json:"target_point,omitempty"`
		CourseImportance map[string]Importance `json:"-"`
	}
)

func (t Track) importanceOf(code string) Importance {
	if imp, ok := t.CourseImportance[code]; ok {
		return imp
	}
	return ImportanceImportant
}

func (t Track) targetPoint() float64 {
	if t.TargetPoint > 0 {
		return t.TargetPoint
	}
	return DefaultTargetPoint
}

// Suggestion is the computed fit of one track, never stored.
type Suggestion struct {
	Track               Track                     `json:"track"`
	MatchPercent        int                       `json:"match_percent"`
	KeyCoursesCompleted []grading.CompletedCourse `json:"key_courses_completed"`
	WhyGoodFit          []string                  `json:"why_good_fit"`
	WhyNotYet           []string                  `json:"why_not_yet"`
	GradeLabel          string                    `json:"grade_label"`
}

// CourseStatus of a key course on a roadmap.
type CourseStatus string

const (
	StatusCompleted CourseStatus = "completed"
	StatusRemaining CourseStatus = "remaining"
)

// Priority of a study tip.
type Priority string

const (
	PriorityUrgent    Priority = "urgent"
	PriorityImportant Priority = "important"
)

type (
	// CourseTarget compares a key course's actual grade against the track
	// target. Remaining courses carry the same target with zero actuals.
	CourseTarget struct {
		Code        string       `json:"code"`
		Name        string       `json:"name"`
		Status      CourseStatus `json:"status"`
		Importance  Importance   `json:"importance"`
		TargetPoint float64      `json:"target_point"`
		TargetGrade string       `json:"target_grade"`
		ActualPoint float64      `json:"actual_point"`
		ActualGrade string       `json:"actual_grade"`
		MeetsTarget bool         `json:"meets_target"`
	}

	PlanCourse struct {
		Code    string  `json:"code"`
		Name    string  `json:"name"`
		Credits float64 `json:"credits"`
	}

	// PlanTrimester is one future trimester of the roadmap. A trimester where
	// no course could be legally placed is emitted empty with a Note rather
	// than dropped.
	PlanTrimester struct {
		Number    int          `json:"number"`
		Courses   []PlanCourse `json:"courses"`
		Credits   float64      `json:"credits"`
		TargetGPA float64      `json:"target_gpa"`
		Note      string       `json:"note,omitempty"`
	}

	StudyTip struct {
		Code     string   `json:"code"`
		Priority Priority `json:"priority"`
		Tip      string   `json:"tip"`
	}

	// Roadmap is the full advisor output for one track, never stored.
	Roadmap struct {
		Track            Track           `json:"track"`
		OverallReadiness int             `json:"overall_readiness"`
		CurrentAvgInKey  float64         `json:"current_avg_in_key"`
		TargetCGPA       float64         `json:"target_cgpa"`
		ActionItems      []string        `json:"action_items"`
		CourseTargets    []CourseTarget  `json:"course_targets"`
		TrimesterPlan    []PlanTrimester `json:"trimester_plan"`
		StudyTips        []StudyTip      `json:"study_tips"`
	}
)
