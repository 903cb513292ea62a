package pgrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/campuskit/backend/core/calendar"
)

type calendarRepository struct {
	db *sqlx.DB
}

func NewCalendarRepository(db *sqlx.DB) calendar.Repository {
	return &calendarRepository{db: db}
}

func (repo *calendarRepository) CreateCalendar(ctx context.Context, cal calendar.Calendar) (calendar.Calendar, error) {
	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return calendar.Calendar{}, errors.Wrap(err, "beginning tx")
	}
	defer func() { _ = tx.Rollback() }()

	q := `INSERT INTO calendar (id, trimester, year, published, created_at, updated_at)
	      VALUES (:id, :trimester, :year, :published, :created_at, :updated_at)`
	if _, err = tx.NamedExecContext(ctx, q, cal); err != nil {
		return calendar.Calendar{}, errors.Wrap(err, "inserting calendar")
	}
	if err = insertEvents(ctx, tx, cal.ID, cal.Events); err != nil {
		return calendar.Calendar{}, err
	}

	if err = tx.Commit(); err != nil {
		return calendar.Calendar{}, errors.Wrap(err, "committing tx")
	}
	return cal, nil
}

func (repo *calendarRepository) QueryAllCalendars(ctx context.Context) ([]calendar.Calendar, error) {
	cals := make([]calendar.Calendar, 0)
	q := `SELECT id, trimester, year, published, created_at, updated_at FROM calendar
	      ORDER BY year DESC, updated_at DESC`
	if err := repo.db.SelectContext(ctx, &cals, q); err != nil {
		return nil, errors.Wrap(err, "querying calendars")
	}
	for i := range cals {
		events, err := repo.queryEvents(ctx, cals[i].ID)
		if err != nil {
			return nil, err
		}
		cals[i].Events = events
	}
	return cals, nil
}

func (repo *calendarRepository) GetCalendarByID(ctx context.Context, id string) (calendar.Calendar, error) {
	var cal calendar.Calendar
	q := `SELECT id, trimester, year, published, created_at, updated_at FROM calendar WHERE id = $1`
	if err := repo.db.GetContext(ctx, &cal, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return calendar.Calendar{}, calendar.ErrNotFound
		}
		return calendar.Calendar{}, errors.Wrap(err, "getting calendar")
	}

	events, err := repo.queryEvents(ctx, cal.ID)
	if err != nil {
		return calendar.Calendar{}, err
	}
	cal.Events = events
	return cal, nil
}

func (repo *calendarRepository) UpdateCalendar(ctx context.Context, cal calendar.Calendar) (calendar.Calendar, error) {
	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return calendar.Calendar{}, errors.Wrap(err, "beginning tx")
	}
	defer func() { _ = tx.Rollback() }()

	q := `UPDATE calendar
	      SET trimester = :trimester, year = :year, published = :published, updated_at = :updated_at
	      WHERE id = :id`
	res, err := tx.NamedExecContext(ctx, q, cal)
	if err != nil {
		return calendar.Calendar{}, errors.Wrap(err, "updating calendar")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return calendar.Calendar{}, calendar.ErrNotFound
	}

	// events are replaced wholesale; the admin form always submits the full list
	if _, err = tx.ExecContext(ctx, `DELETE FROM calendar_event WHERE calendar_id = $1`, cal.ID); err != nil {
		return calendar.Calendar{}, errors.Wrap(err, "clearing calendar events")
	}
	if err = insertEvents(ctx, tx, cal.ID, cal.Events); err != nil {
		return calendar.Calendar{}, err
	}

	if err = tx.Commit(); err != nil {
		return calendar.Calendar{}, errors.Wrap(err, "committing tx")
	}
	return cal, nil
}

func (repo *calendarRepository) DeleteCalendarsByID(ctx context.Context, ids ...string) error {
	q := `DELETE FROM calendar WHERE id = ANY($1)`
	if _, err := repo.db.ExecContext(ctx, q, pq.Array(ids)); err != nil {
		return errors.Wrap(err, "deleting calendars")
	}
	return nil
}

func (repo *calendarRepository) queryEvents(ctx context.Context, calendarID string) ([]calendar.Event, error) {
	events := make([]calendar.Event, 0)
	q := `SELECT date, title, category FROM calendar_event WHERE calendar_id = $1 ORDER BY date`
	if err := repo.db.SelectContext(ctx, &events, q, calendarID); err != nil {
		return nil, errors.Wrap(err, "querying calendar events")
	}
	return events, nil
}

func insertEvents(ctx context.Context, tx *sqlx.Tx, calendarID string, events []calendar.Event) error {
	q := `INSERT INTO calendar_event (calendar_id, date, title, category) VALUES ($1, $2, $3, $4)`
	for _, e := range events {
		if _, err := tx.ExecContext(ctx, q, calendarID, e.Date, e.Title, e.Category); err != nil {
			return errors.Wrap(err, "inserting calendar event")
		}
	}
	return nil
}
