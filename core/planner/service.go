package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campuskit/backend/core"
)

var (
	ErrNotFound        = errors.New("dataset not found")
	ErrTrimesterExists = errors.New("a dataset for this trimester already exists")
)

// HeavyLoadCredits is the warning threshold for one trimester's enrollment;
// the career roadmap caps planned trimesters at the same figure.
const HeavyLoadCredits = 15.0

type (
	Repository interface {
		CheckTrimesterUniqueness(ctx context.Context, trimester string) error
		CreateDataset(ctx context.Context, ds Dataset) (Dataset, error)
		QueryAllDatasets(ctx context.Context) ([]Dataset, error)
		GetDatasetByID(ctx context.Context, id string) (Dataset, error)
		GetDatasetByTrimester(ctx context.Context, trimester string) (Dataset, error)
		DeleteDatasetsByID(ctx context.Context, ids ...string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) checkUniqueness(ctx context.Context, trimester string) error {
	if err := svc.repo.CheckTrimesterUniqueness(ctx, trimester); err != nil {
		if errors.Is(err, ErrTrimesterExists) {
			return core.NewValidationError(err, core.FieldError{Field: "trimester", Error: err.Error()})
		}
		return err
	}
	return nil
}

func (svc *Service) Create(ctx context.Context, nd NewDataset) (Dataset, error) {
	trimester := core.CleanString(nd.Trimester)
	if err := svc.checkUniqueness(ctx, trimester); err != nil {
		return Dataset{}, err
	}

	ds := Dataset{
		ID:        uuid.New().String(),
		Trimester: trimester,
		Sections:  newSections(nd.Sections),
		CreatedAt: time.Now().UTC(),
	}
	return svc.repo.CreateDataset(ctx, ds)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Dataset, error) {
	return svc.repo.QueryAllDatasets(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Dataset, error) {
	return svc.repo.GetDatasetByID(ctx, id)
}

func (svc *Service) GetByTrimester(ctx context.Context, trimester string) (Dataset, error) {
	return svc.repo.GetDatasetByTrimester(ctx, core.CleanString(trimester))
}

func (svc *Service) Delete(ctx context.Context, ids ...string) error {
	return svc.repo.DeleteDatasetsByID(ctx, ids...)
}

func newSections(in []NewSection) []Section {
	sections := make([]Section, 0, len(in))
	for _, s := range in {
		sections = append(sections, Section{
			CourseCode: core.CleanCode(s.CourseCode),
			Section:    core.CleanString(s.Section),
			Faculty:    core.CleanString(s.Faculty),
			Days:       s.Days,
			StartMin:   s.StartMin,
			EndMin:     s.EndMin,
			Room:       core.CleanString(s.Room),
			Capacity:   s.Capacity,
		})
	}
	return sections
}

// Check runs every planner warning over a tentative selection.
// courseCredits and prereqs come from the course catalog; completedCodes from
// the student's trimester history. All lookups degrade to zero values for
// unknown codes.
func Check(selected []Section, courseCredits map[string]float64, prereqs map[string][]string, completedCodes []string) CheckResult {
	res := CheckResult{
		Clashes: FindClashes(selected),
		Unmet:   CheckPrerequisites(selected, prereqs, completedCodes),
	}
	for _, s := range selected {
		res.TotalCredits += courseCredits[s.CourseCode]
	}
	res.HeavyLoad = res.TotalCredits > HeavyLoadCredits
	return res
}

// FindClashes reports every pair of sections that meet on a shared day at
// overlapping times.
func FindClashes(selected []Section) []Clash {
	clashes := make([]Clash, 0)
	for i := 0; i < len(selected); i++ {
		for j := i + 1; j < len(selected); j++ {
			a, b := selected[i], selected[j]
			day, shared := sharedDay(a.Days, b.Days)
			if !shared {
				continue
			}
			if a.StartMin < b.EndMin && b.StartMin < a.EndMin {
				clashes = append(clashes, Clash{
					First:  sectionLabel(a),
					Second: sectionLabel(b),
					Day:    day,
				})
			}
		}
	}
	return clashes
}

// CheckPrerequisites flags selected courses whose prerequisites are neither
// completed nor part of the same selection (co-enrollment is allowed by the
// registrar for retake terms, so selection counts).
func CheckPrerequisites(selected []Section, prereqs map[string][]string, completedCodes []string) []UnmetPrerequisite {
	have := make(map[string]bool, len(completedCodes)+len(selected))
	for _, code := range completedCodes {
		have[core.CleanCode(code)] = true
	}
	for _, s := range selected {
		have[s.CourseCode] = true
	}

	unmet := make([]UnmetPrerequisite, 0)
	seen := make(map[string]bool)
	for _, s := range selected {
		if seen[s.CourseCode] {
			continue
		}
		seen[s.CourseCode] = true
		for _, pre := range prereqs[s.CourseCode] {
			if !have[core.CleanCode(pre)] {
				unmet = append(unmet, UnmetPrerequisite{CourseCode: s.CourseCode, Prerequisite: core.CleanCode(pre)})
			}
		}
	}
	return unmet
}

func sharedDay(a, b []string) (string, bool) {
	for _, da := range a {
		for _, db := range b {
			if da == db {
				return da, true
			}
		}
	}
	return "", false
}

func sectionLabel(s Section) string {
	return fmt.Sprintf("%s [%s]", s.CourseCode, s.Section)
}
