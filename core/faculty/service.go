package faculty

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"github.com/campuskit/backend/core"
)

var (
	ErrNotFound        = errors.New("faculty not found")
	ErrRequestNotFound = errors.New("faculty request not found")
	ErrInitialsExist   = errors.New("a faculty member with these initials already exists")
	ErrAlreadyDecided  = errors.New("request has already been decided")
)

type (
	Repository interface {
		CheckInitialsUniqueness(ctx context.Context, initials string, excluded ...Faculty) error
		CreateFaculty(ctx context.Context, fac Faculty) (Faculty, error)
		QueryAllFaculty(ctx context.Context) ([]Faculty, error)
		GetFacultyByID(ctx context.Context, id string) (Faculty, error)
		GetFacultyByInitials(ctx context.Context, initials string) (Faculty, error)
		// FilterFaculty applies AND operation on available QueryFilter fields.
		FilterFaculty(ctx context.Context, filter QueryFilter) ([]Faculty, error)
		DeleteFacultyByID(ctx context.Context, ids ...string) error

		CreateReview(ctx context.Context, rev Review) (Review, error)
		QueryReviewsByFaculty(ctx context.Context, facultyID string) ([]Review, error)

		CreateRequest(ctx context.Context, req Request) (Request, error)
		QueryRequests(ctx context.Context, status string) ([]Request, error)
		GetRequestByID(ctx context.Context, id string) (Request, error)
		UpdateRequest(ctx context.Context, req Request) (Request, error)
		// ApproveRequest persists the decided request and the new directory
		// entry atomically.
		ApproveRequest(ctx context.Context, req Request, fac Faculty) (Request, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) checkUniqueness(ctx context.Context, initials string, excl ...Faculty) error {
	if err := svc.repo.CheckInitialsUniqueness(ctx, initials, excl...); err != nil {
		if errors.Is(err, ErrInitialsExist) {
			return core.NewValidationError(err, core.FieldError{Field: "initials", Error: err.Error()})
		}
		return err
	}
	return nil
}

func (svc *Service) Create(ctx context.Context, nf NewFaculty) (Faculty, error) {
	initials := core.CleanCode(nf.Initials)
	if err := svc.checkUniqueness(ctx, initials); err != nil {
		return Faculty{}, err
	}

	fac := Faculty{
		ID:         uuid.New().String(),
		Initials:   initials,
		Name:       core.CleanString(nf.Name),
		Email:      null.NewString(core.CleanString(nf.Email, true), nf.Email != ""),
		Department: core.CleanString(nf.Department),
		CreatedAt:  time.Now().UTC(),
	}
	return svc.repo.CreateFaculty(ctx, fac)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Faculty, error) {
	return svc.repo.QueryAllFaculty(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Faculty, error) {
	return svc.repo.GetFacultyByID(ctx, id)
}

func (svc *Service) GetByInitials(ctx context.Context, initials string) (Faculty, error) {
	return svc.repo.GetFacultyByInitials(ctx, core.CleanCode(initials))
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Faculty, error) {
	if filter.Search == "" && filter.Department == "" {
		return svc.repo.QueryAllFaculty(ctx)
	}
	return svc.repo.FilterFaculty(ctx, filter)
}

func (svc *Service) Delete(ctx context.Context, ids ...string) error {
	return svc.repo.DeleteFacultyByID(ctx, ids...)
}

// Reviews

func (svc *Service) AddReview(ctx context.Context, facultyID string, nr NewReview) (Review, error) {
	if _, err := svc.repo.GetFacultyByID(ctx, facultyID); err != nil {
		return Review{}, err
	}

	comment := core.CleanString(nr.Comment)
	rev := Review{
		ID:             uuid.New().String(),
		FacultyID:      facultyID,
		CourseCode:     core.CleanCode(nr.CourseCode),
		Rating:         nr.Rating,
		Difficulty:     nr.Difficulty,
		WouldTakeAgain: nr.WouldTakeAgain,
		Comment:        null.NewString(comment, comment != ""),
		CreatedAt:      time.Now().UTC(),
	}
	return svc.repo.CreateReview(ctx, rev)
}

func (svc *Service) Reviews(ctx context.Context, facultyID string) ([]Review, error) {
	return svc.repo.QueryReviewsByFaculty(ctx, facultyID)
}

// Summarize folds reviews into the directory card aggregates. Zero reviews
// yield a zero summary, never NaN.
func Summarize(reviews []Review) RatingSummary {
	sum := RatingSummary{Count: len(reviews)}
	if sum.Count == 0 {
		return sum
	}

	var rating, difficulty, again float64
	for _, r := range reviews {
		rating += float64(r.Rating)
		difficulty += float64(r.Difficulty)
		if r.WouldTakeAgain {
			again++
		}
	}
	n := float64(sum.Count)
	sum.AvgRating = round2(rating / n)
	sum.AvgDifficulty = round2(difficulty / n)
	sum.WouldTakeAgainPct = round2(again / n * 100)
	return sum
}

// Requests

func (svc *Service) SubmitRequest(ctx context.Context, nr NewRequest) (Request, error) {
	req := Request{
		ID:         uuid.New().String(),
		Initials:   core.CleanCode(nr.Initials),
		Name:       core.CleanString(nr.Name),
		Department: core.CleanString(nr.Department),
		Status:     StatusPending,
		CreatedAt:  time.Now().UTC(),
	}
	return svc.repo.CreateRequest(ctx, req)
}

func (svc *Service) QueryRequests(ctx context.Context, status string) ([]Request, error) {
	return svc.repo.QueryRequests(ctx, status)
}

// Decide approves or rejects a pending request. Approval creates the faculty
// entry; deciding an already-decided request is a validation error.
func (svc *Service) Decide(ctx context.Context, requestID string, approve bool) (Request, error) {
	req, err := svc.repo.GetRequestByID(ctx, requestID)
	if err != nil {
		return Request{}, err
	}
	if req.Status != StatusPending {
		return Request{}, core.NewValidationError(ErrAlreadyDecided)
	}

	req.DecidedAt = null.TimeFrom(time.Now().UTC())

	if !approve {
		req.Status = StatusRejected
		return svc.repo.UpdateRequest(ctx, req)
	}

	if err = svc.checkUniqueness(ctx, req.Initials); err != nil {
		return Request{}, err
	}
	req.Status = StatusApproved
	fac := Faculty{
		ID:         uuid.New().String(),
		Initials:   req.Initials,
		Name:       req.Name,
		Department: req.Department,
		CreatedAt:  time.Now().UTC(),
	}
	return svc.repo.ApproveRequest(ctx, req, fac)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
