package pgrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/campuskit/backend/core/planner"
)

type plannerRepository struct {
	db *sqlx.DB
}

func NewPlannerRepository(db *sqlx.DB) planner.Repository {
	return &plannerRepository{db: db}
}

// sectionRow adapts planner.Section to the section table (Days as text[]).
type sectionRow struct {
	DatasetID  string         `db:"dataset_id"`
	CourseCode string         `db:"course_code"`
	Section    string         `db:"section"`
	Faculty    string         `db:"faculty"`
	Days       pq.StringArray `db:"days"`
	StartMin   int            `db:"start_min"`
	EndMin     int            `db:"end_min"`
	Room       string         `db:"room"`
	Capacity   int            `db:"capacity"`
}

func (r sectionRow) section() planner.Section {
	return planner.Section{
		CourseCode: r.CourseCode,
		Section:    r.Section,
		Faculty:    r.Faculty,
		Days:       r.Days,
		StartMin:   r.StartMin,
		EndMin:     r.EndMin,
		Room:       r.Room,
		Capacity:   r.Capacity,
	}
}

func (repo *plannerRepository) CheckTrimesterUniqueness(ctx context.Context, trimester string) error {
	var exists bool
	q := `SELECT EXISTS (SELECT 1 FROM section_dataset WHERE trimester = $1)`
	if err := repo.db.GetContext(ctx, &exists, q, trimester); err != nil {
		return errors.Wrap(err, "checking dataset trimester")
	}
	if exists {
		return planner.ErrTrimesterExists
	}
	return nil
}

func (repo *plannerRepository) CreateDataset(ctx context.Context, ds planner.Dataset) (planner.Dataset, error) {
	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return planner.Dataset{}, errors.Wrap(err, "beginning tx")
	}
	defer func() { _ = tx.Rollback() }()

	q := `INSERT INTO section_dataset (id, trimester, created_at) VALUES (:id, :trimester, :created_at)`
	if _, err = tx.NamedExecContext(ctx, q, ds); err != nil {
		return planner.Dataset{}, errors.Wrap(err, "inserting dataset")
	}

	sq := `INSERT INTO section (dataset_id, course_code, section, faculty, days, start_min, end_min, room, capacity)
	       VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for _, s := range ds.Sections {
		if _, err = tx.ExecContext(ctx, sq,
			ds.ID, s.CourseCode, s.Section, s.Faculty, pq.Array(s.Days), s.StartMin, s.EndMin, s.Room, s.Capacity,
		); err != nil {
			return planner.Dataset{}, errors.Wrap(err, "inserting section")
		}
	}

	if err = tx.Commit(); err != nil {
		return planner.Dataset{}, errors.Wrap(err, "committing tx")
	}
	return ds, nil
}

func (repo *plannerRepository) QueryAllDatasets(ctx context.Context) ([]planner.Dataset, error) {
	dss := make([]planner.Dataset, 0)
	q := `SELECT id, trimester, created_at FROM section_dataset ORDER BY created_at DESC`
	if err := repo.db.SelectContext(ctx, &dss, q); err != nil {
		return nil, errors.Wrap(err, "querying datasets")
	}
	for i := range dss {
		sections, err := repo.querySections(ctx, dss[i].ID)
		if err != nil {
			return nil, err
		}
		dss[i].Sections = sections
	}
	return dss, nil
}

func (repo *plannerRepository) GetDatasetByID(ctx context.Context, id string) (planner.Dataset, error) {
	var ds planner.Dataset
	q := `SELECT id, trimester, created_at FROM section_dataset WHERE id = $1`
	if err := repo.db.GetContext(ctx, &ds, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return planner.Dataset{}, planner.ErrNotFound
		}
		return planner.Dataset{}, errors.Wrap(err, "getting dataset")
	}
	return repo.withSections(ctx, ds)
}

func (repo *plannerRepository) GetDatasetByTrimester(ctx context.Context, trimester string) (planner.Dataset, error) {
	var ds planner.Dataset
	q := `SELECT id, trimester, created_at FROM section_dataset WHERE trimester = $1`
	if err := repo.db.GetContext(ctx, &ds, q, trimester); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return planner.Dataset{}, planner.ErrNotFound
		}
		return planner.Dataset{}, errors.Wrap(err, "getting dataset by trimester")
	}
	return repo.withSections(ctx, ds)
}

func (repo *plannerRepository) DeleteDatasetsByID(ctx context.Context, ids ...string) error {
	q := `DELETE FROM section_dataset WHERE id = ANY($1)`
	if _, err := repo.db.ExecContext(ctx, q, pq.Array(ids)); err != nil {
		return errors.Wrap(err, "deleting datasets")
	}
	return nil
}

func (repo *plannerRepository) withSections(ctx context.Context, ds planner.Dataset) (planner.Dataset, error) {
	sections, err := repo.querySections(ctx, ds.ID)
	if err != nil {
		return planner.Dataset{}, err
	}
	ds.Sections = sections
	return ds, nil
}

func (repo *plannerRepository) querySections(ctx context.Context, datasetID string) ([]planner.Section, error) {
	rows := make([]sectionRow, 0)
	q := `SELECT * FROM section WHERE dataset_id = $1 ORDER BY course_code, section`
	if err := repo.db.SelectContext(ctx, &rows, q, datasetID); err != nil {
		return nil, errors.Wrap(err, "querying sections")
	}
	sections := make([]planner.Section, 0, len(rows))
	for _, r := range rows {
		sections = append(sections, r.section())
	}
	return sections, nil
}
