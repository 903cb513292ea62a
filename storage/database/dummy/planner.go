package dummydb

import (
	"context"
	"sort"

	"github.com/campuskit/backend/core/planner"
)

type plannerRepository struct {
	db *plannerTable
}

func NewPlannerRepository(db *DB) planner.Repository {
	return &plannerRepository{db: db.planner}
}

func (repo *plannerRepository) CheckTrimesterUniqueness(_ context.Context, trimester string) error {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, ds := range repo.db.table {
		if ds.Trimester == trimester {
			return planner.ErrTrimesterExists
		}
	}
	return nil
}

func (repo *plannerRepository) CreateDataset(_ context.Context, ds planner.Dataset) (planner.Dataset, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.table[ds.ID] = &ds
	return ds, nil
}

func (repo *plannerRepository) QueryAllDatasets(_ context.Context) ([]planner.Dataset, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	dss := make([]planner.Dataset, 0, len(repo.db.table))
	for _, ds := range repo.db.table {
		dss = append(dss, *ds)
	}
	sort.Slice(dss, func(i, j int) bool { return dss[i].CreatedAt.After(dss[j].CreatedAt) })
	return dss, nil
}

func (repo *plannerRepository) GetDatasetByID(_ context.Context, id string) (planner.Dataset, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if ds, ok := repo.db.table[id]; ok {
		return *ds, nil
	}
	return planner.Dataset{}, planner.ErrNotFound
}

func (repo *plannerRepository) GetDatasetByTrimester(_ context.Context, trimester string) (planner.Dataset, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, ds := range repo.db.table {
		if ds.Trimester == trimester {
			return *ds, nil
		}
	}
	return planner.Dataset{}, planner.ErrNotFound
}

func (repo *plannerRepository) DeleteDatasetsByID(_ context.Context, ids ...string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, id := range ids {
		delete(repo.db.table, id)
	}
	return nil
}
