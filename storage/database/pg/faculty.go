package pgrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/campuskit/backend/core/faculty"
)

type facultyRepository struct {
	db *sqlx.DB
}

func NewFacultyRepository(db *sqlx.DB) faculty.Repository {
	return &facultyRepository{db: db}
}

func (repo *facultyRepository) CheckInitialsUniqueness(ctx context.Context, initials string, excluded ...faculty.Faculty) error {
	exclIDs := make([]string, 0, len(excluded))
	for _, fac := range excluded {
		exclIDs = append(exclIDs, fac.ID)
	}

	var exists bool
	q := `SELECT EXISTS (SELECT 1 FROM faculty WHERE initials = $1 AND id != ALL($2))`
	if err := repo.db.GetContext(ctx, &exists, q, initials, pq.Array(exclIDs)); err != nil {
		return errors.Wrap(err, "checking faculty initials")
	}
	if exists {
		return faculty.ErrInitialsExist
	}
	return nil
}

func (repo *facultyRepository) CreateFaculty(ctx context.Context, fac faculty.Faculty) (faculty.Faculty, error) {
	q := `INSERT INTO faculty (id, initials, name, email, department, created_at)
	      VALUES (:id, :initials, :name, :email, :department, :created_at)`
	if _, err := repo.db.NamedExecContext(ctx, q, fac); err != nil {
		return faculty.Faculty{}, errors.Wrap(err, "inserting faculty")
	}
	return fac, nil
}

func (repo *facultyRepository) QueryAllFaculty(ctx context.Context) ([]faculty.Faculty, error) {
	fcs := make([]faculty.Faculty, 0)
	q := `SELECT * FROM faculty ORDER BY initials`
	if err := repo.db.SelectContext(ctx, &fcs, q); err != nil {
		return nil, errors.Wrap(err, "querying faculty")
	}
	return fcs, nil
}

func (repo *facultyRepository) GetFacultyByID(ctx context.Context, id string) (faculty.Faculty, error) {
	var fac faculty.Faculty
	q := `SELECT * FROM faculty WHERE id = $1`
	if err := repo.db.GetContext(ctx, &fac, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return faculty.Faculty{}, faculty.ErrNotFound
		}
		return faculty.Faculty{}, errors.Wrap(err, "getting faculty")
	}
	return fac, nil
}

func (repo *facultyRepository) GetFacultyByInitials(ctx context.Context, initials string) (faculty.Faculty, error) {
	var fac faculty.Faculty
	q := `SELECT * FROM faculty WHERE initials = $1`
	if err := repo.db.GetContext(ctx, &fac, q, initials); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return faculty.Faculty{}, faculty.ErrNotFound
		}
		return faculty.Faculty{}, errors.Wrap(err, "getting faculty by initials")
	}
	return fac, nil
}

func (repo *facultyRepository) FilterFaculty(ctx context.Context, filter faculty.QueryFilter) ([]faculty.Faculty, error) {
	q := `SELECT * FROM faculty WHERE true`
	args := make([]interface{}, 0, 2)
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		q += ` AND (initials ILIKE $1 OR name ILIKE $1)`
	}
	if filter.Department != "" {
		args = append(args, filter.Department)
		if len(args) == 1 {
			q += ` AND department = $1`
		} else {
			q += ` AND department = $2`
		}
	}
	q += ` ORDER BY initials`

	fcs := make([]faculty.Faculty, 0)
	if err := repo.db.SelectContext(ctx, &fcs, q, args...); err != nil {
		return nil, errors.Wrap(err, "filtering faculty")
	}
	return fcs, nil
}

func (repo *facultyRepository) DeleteFacultyByID(ctx context.Context, ids ...string) error {
	q := `DELETE FROM faculty WHERE id = ANY($1)`
	if _, err := repo.db.ExecContext(ctx, q, pq.Array(ids)); err != nil {
		return errors.Wrap(err, "deleting faculty")
	}
	return nil
}

// Reviews

func (repo *facultyRepository) CreateReview(ctx context.Context, rev faculty.Review) (faculty.Review, error) {
	q := `INSERT INTO review (id, faculty_id, course_code, rating, difficulty, would_take_again, comment, created_at)
	      VALUES (:id, :faculty_id, :course_code, :rating, :difficulty, :would_take_again, :comment, :created_at)`
	if _, err := repo.db.NamedExecContext(ctx, q, rev); err != nil {
		return faculty.Review{}, errors.Wrap(err, "inserting review")
	}
	return rev, nil
}

func (repo *facultyRepository) QueryReviewsByFaculty(ctx context.Context, facultyID string) ([]faculty.Review, error) {
	revs := make([]faculty.Review, 0)
	q := `SELECT * FROM review WHERE faculty_id = $1 ORDER BY created_at DESC`
	if err := repo.db.SelectContext(ctx, &revs, q, facultyID); err != nil {
		return nil, errors.Wrap(err, "querying reviews")
	}
	return revs, nil
}

// Requests

func (repo *facultyRepository) CreateRequest(ctx context.Context, req faculty.Request) (faculty.Request, error) {
	q := `INSERT INTO faculty_request (id, initials, name, department, status, created_at, decided_at)
	      VALUES (:id, :initials, :name, :department, :status, :created_at, :decided_at)`
	if _, err := repo.db.NamedExecContext(ctx, q, req); err != nil {
		return faculty.Request{}, errors.Wrap(err, "inserting faculty request")
	}
	return req, nil
}

func (repo *facultyRepository) QueryRequests(ctx context.Context, status string) ([]faculty.Request, error) {
	reqs := make([]faculty.Request, 0)
	q := `SELECT * FROM faculty_request`
	args := make([]interface{}, 0, 1)
	if status != "" {
		q += ` WHERE status = $1`
		args = append(args, status)
	}
	q += ` ORDER BY created_at DESC`
	if err := repo.db.SelectContext(ctx, &reqs, q, args...); err != nil {
		return nil, errors.Wrap(err, "querying faculty requests")
	}
	return reqs, nil
}

func (repo *facultyRepository) GetRequestByID(ctx context.Context, id string) (faculty.Request, error) {
	var req faculty.Request
	q := `SELECT * FROM faculty_request WHERE id = $1`
	if err := repo.db.GetContext(ctx, &req, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return faculty.Request{}, faculty.ErrRequestNotFound
		}
		return faculty.Request{}, errors.Wrap(err, "getting faculty request")
	}
	return req, nil
}

func (repo *facultyRepository) UpdateRequest(ctx context.Context, req faculty.Request) (faculty.Request, error) {
	q := `UPDATE faculty_request SET status = :status, decided_at = :decided_at WHERE id = :id`
	res, err := repo.db.NamedExecContext(ctx, q, req)
	if err != nil {
		return faculty.Request{}, errors.Wrap(err, "updating faculty request")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return faculty.Request{}, faculty.ErrRequestNotFound
	}
	return req, nil
}

func (repo *facultyRepository) ApproveRequest(ctx context.Context, req faculty.Request, fac faculty.Faculty) (faculty.Request, error) {
	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return faculty.Request{}, errors.Wrap(err, "beginning tx")
	}
	defer func() { _ = tx.Rollback() }()

	fq := `INSERT INTO faculty (id, initials, name, email, department, created_at)
	       VALUES (:id, :initials, :name, :email, :department, :created_at)`
	if _, err = tx.NamedExecContext(ctx, fq, fac); err != nil {
		return faculty.Request{}, errors.Wrap(err, "inserting faculty")
	}

	rq := `UPDATE faculty_request SET status = :status, decided_at = :decided_at WHERE id = :id`
	res, err := tx.NamedExecContext(ctx, rq, req)
	if err != nil {
		return faculty.Request{}, errors.Wrap(err, "updating faculty request")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return faculty.Request{}, faculty.ErrRequestNotFound
	}

	if err = tx.Commit(); err != nil {
		return faculty.Request{}, errors.Wrap(err, "committing tx")
	}
	return req, nil
}
