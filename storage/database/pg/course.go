// Package pgrepos implements the domain repositories over postgres via sqlx.
package pgrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/campuskit/backend/core/course"
)

type courseRepository struct {
	db *sqlx.DB
}

func NewCourseRepository(db *sqlx.DB) course.Repository {
	return &courseRepository{db: db}
}

func (repo *courseRepository) CheckCodeUniqueness(ctx context.Context, code string, excluded ...course.Course) error {
	exclIDs := make([]string, 0, len(excluded))
	for _, crs := range excluded {
		exclIDs = append(exclIDs, crs.ID)
	}

	var exists bool
	q := `SELECT EXISTS (SELECT 1 FROM course WHERE code = $1 AND id != ALL($2))`
	if err := repo.db.GetContext(ctx, &exists, q, code, pq.Array(exclIDs)); err != nil {
		return errors.Wrap(err, "checking course code")
	}
	if exists {
		return course.ErrCodeExists
	}
	return nil
}

func (repo *courseRepository) CreateCourse(ctx context.Context, crs course.Course) (course.Course, error) {
	q := `INSERT INTO course (id, code, title, credits, department, description, prerequisites, created_at, updated_at)
	      VALUES (:id, :code, :title, :credits, :department, :description, :prerequisites, :created_at, :updated_at)`
	if _, err := repo.db.NamedExecContext(ctx, q, crs); err != nil {
		return course.Course{}, errors.Wrap(err, "inserting course")
	}
	return crs, nil
}

func (repo *courseRepository) QueryAllCourses(ctx context.Context) ([]course.Course, error) {
	courses := make([]course.Course, 0)
	q := `SELECT * FROM course ORDER BY code`
	if err := repo.db.SelectContext(ctx, &courses, q); err != nil {
		return nil, errors.Wrap(err, "querying courses")
	}
	return courses, nil
}

func (repo *courseRepository) GetCourseByID(ctx context.Context, id string) (course.Course, error) {
	var crs course.Course
	q := `SELECT * FROM course WHERE id = $1`
	if err := repo.db.GetContext(ctx, &crs, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return course.Course{}, course.ErrNotFound
		}
		return course.Course{}, errors.Wrap(err, "getting course")
	}
	return crs, nil
}

func (repo *courseRepository) GetCourseByCode(ctx context.Context, code string) (course.Course, error) {
	var crs course.Course
	q := `SELECT * FROM course WHERE code = $1`
	if err := repo.db.GetContext(ctx, &crs, q, code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return course.Course{}, course.ErrNotFound
		}
		return course.Course{}, errors.Wrap(err, "getting course by code")
	}
	return crs, nil
}

func (repo *courseRepository) FilterCourses(ctx context.Context, filter course.QueryFilter) ([]course.Course, error) {
	q := `SELECT * FROM course WHERE true`
	args := make([]interface{}, 0, 2)
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		q += ` AND (code ILIKE $1 OR title ILIKE $1)`
	}
	if filter.Department != "" {
		args = append(args, filter.Department)
		if len(args) == 1 {
			q += ` AND department = $1`
		} else {
			q += ` AND department = $2`
		}
	}
	q += ` ORDER BY code`

	courses := make([]course.Course, 0)
	if err := repo.db.SelectContext(ctx, &courses, q, args...); err != nil {
		return nil, errors.Wrap(err, "filtering courses")
	}
	return courses, nil
}

func (repo *courseRepository) UpdateCourse(ctx context.Context, crs course.Course) (course.Course, error) {
	q := `UPDATE course
	      SET title = :title, credits = :credits, department = :department,
	          description = :description, prerequisites = :prerequisites, updated_at = :updated_at
	      WHERE id = :id`
	res, err := repo.db.NamedExecContext(ctx, q, crs)
	if err != nil {
		return course.Course{}, errors.Wrap(err, "updating course")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return course.Course{}, course.ErrNotFound
	}
	return crs, nil
}

func (repo *courseRepository) DeleteCoursesByID(ctx context.Context, ids ...string) error {
	q := `DELETE FROM course WHERE id = ANY($1)`
	if _, err := repo.db.ExecContext(ctx, q, pq.Array(ids)); err != nil {
		return errors.Wrap(err, "deleting courses")
	}
	return nil
}
