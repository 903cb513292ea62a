package course

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/campuskit/backend/core"
)

var (
	ErrNotFound   = errors.New("course not found")
	ErrCodeExists = errors.New("a course with this code already exists")
)

type (
	Repository interface {
		CheckCodeUniqueness(ctx context.Context, code string, excluded ...Course) error
		CreateCourse(ctx context.Context, crs Course) (Course, error)
		QueryAllCourses(ctx context.Context) ([]Course, error)
		GetCourseByID(ctx context.Context, id string) (Course, error)
		GetCourseByCode(ctx context.Context, code string) (Course, error)
		// FilterCourses applies AND operation on available QueryFilter fields.
		FilterCourses(ctx context.Context, filter QueryFilter) ([]Course, error)
		UpdateCourse(ctx context.Context, crs Course) (Course, error)
		DeleteCoursesByID(ctx context.Context, ids ...string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) checkUniqueness(ctx context.Context, code string, excl ...Course) error {
	if err := svc.repo.CheckCodeUniqueness(ctx, code, excl...); err != nil {
		if errors.Is(err, ErrCodeExists) {
			return core.NewValidationError(err, core.FieldError{Field: "code", Error: err.Error()})
		}
		return err
	}
	return nil
}

func (svc *Service) Create(ctx context.Context, nc NewCourse) (Course, error) {
	code := core.CleanCode(nc.Code)
	if err := svc.checkUniqueness(ctx, code); err != nil {
		return Course{}, err
	}

	now := time.Now().UTC()
	crs := Course{
		ID:            uuid.New().String(),
		Code:          code,
		Title:         core.CleanString(nc.Title),
		Credits:       nc.Credits,
		Department:    core.CleanString(nc.Department),
		Description:   core.CleanString(nc.Description),
		Prerequisites: cleanCodes(nc.Prerequisites),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return svc.repo.CreateCourse(ctx, crs)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Course, error) {
	return svc.repo.QueryAllCourses(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Course, error) {
	return svc.repo.GetCourseByID(ctx, id)
}

func (svc *Service) GetByCode(ctx context.Context, code string) (Course, error) {
	return svc.repo.GetCourseByCode(ctx, core.CleanCode(code))
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Course, error) {
	if filter.Search == "" && filter.Department == "" {
		return svc.repo.QueryAllCourses(ctx)
	}
	return svc.repo.FilterCourses(ctx, filter)
}

func (svc *Service) Update(ctx context.Context, id string, uc UpdateCourse) (Course, error) {
	crs, err := svc.repo.GetCourseByID(ctx, id)
	if err != nil {
		return Course{}, err
	}

	crs.Title = core.CleanString(uc.Title)
	crs.Credits = uc.Credits
	crs.Department = core.CleanString(uc.Department)
	crs.Description = core.CleanString(uc.Description)
	crs.Prerequisites = cleanCodes(uc.Prerequisites)
	crs.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateCourse(ctx, crs)
}

func (svc *Service) Delete(ctx context.Context, ids ...string) error {
	return svc.repo.DeleteCoursesByID(ctx, ids...)
}

// PrerequisiteIndex maps each course code to its prerequisites; the planner
// check consumes it.
func (svc *Service) PrerequisiteIndex(ctx context.Context) (map[string][]string, error) {
	courses, err := svc.repo.QueryAllCourses(ctx)
	if err != nil {
		return nil, err
	}
	idx := make(map[string][]string, len(courses))
	for _, c := range courses {
		idx[c.Code] = c.Prerequisites
	}
	return idx, nil
}

// CreditIndex maps each course code to its credit hours.
func (svc *Service) CreditIndex(ctx context.Context) (map[string]float64, error) {
	courses, err := svc.repo.QueryAllCourses(ctx)
	if err != nil {
		return nil, err
	}
	idx := make(map[string]float64, len(courses))
	for _, c := range courses {
		idx[c.Code] = c.Credits
	}
	return idx, nil
}

func cleanCodes(codes []string) []string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if code := core.CleanCode(c); code != "" {
			out = append(out, code)
		}
	}
	return out
}
