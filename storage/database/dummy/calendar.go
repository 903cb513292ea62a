package dummydb

import (
	"context"
	"sort"

	"github.com/campuskit/backend/core/calendar"
)

type calendarRepository struct {
	db *calendarTable
}

func NewCalendarRepository(db *DB) calendar.Repository {
	return &calendarRepository{db: db.calendar}
}

func (repo *calendarRepository) CreateCalendar(_ context.Context, cal calendar.Calendar) (calendar.Calendar, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.table[cal.ID] = &cal
	return cal, nil
}

func (repo *calendarRepository) QueryAllCalendars(_ context.Context) ([]calendar.Calendar, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	cals := make([]calendar.Calendar, 0, len(repo.db.table))
	for _, cal := range repo.db.table {
		cals = append(cals, *cal)
	}
	sort.Slice(cals, func(i, j int) bool {
		if cals[i].Year != cals[j].Year {
			return cals[i].Year > cals[j].Year
		}
		return cals[i].UpdatedAt.After(cals[j].UpdatedAt)
	})
	return cals, nil
}

func (repo *calendarRepository) GetCalendarByID(_ context.Context, id string) (calendar.Calendar, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if cal, ok := repo.db.table[id]; ok {
		return *cal, nil
	}
	return calendar.Calendar{}, calendar.ErrNotFound
}

func (repo *calendarRepository) UpdateCalendar(_ context.Context, cal calendar.Calendar) (calendar.Calendar, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[cal.ID]; !ok {
		return calendar.Calendar{}, calendar.ErrNotFound
	}
	repo.db.table[cal.ID] = &cal
	return cal, nil
}

func (repo *calendarRepository) DeleteCalendarsByID(_ context.Context, ids ...string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, id := range ids {
		delete(repo.db.table, id)
	}
	return nil
}
