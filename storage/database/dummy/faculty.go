package dummydb

import (
	"context"
	"sort"
	"strings"

	"github.com/campuskit/backend/core/faculty"
)

type facultyRepository struct {
	db *facultyTable
}

func NewFacultyRepository(db *DB) faculty.Repository {
	return &facultyRepository{db: db.faculty}
}

func (repo *facultyRepository) query() []faculty.Faculty {
	fcs := make([]faculty.Faculty, 0, len(repo.db.table))
	for _, f := range repo.db.table {
		fcs = append(fcs, *f)
	}
	sort.Slice(fcs, func(i, j int) bool { return fcs[i].Initials < fcs[j].Initials })
	return fcs
}

func (repo *facultyRepository) CheckInitialsUniqueness(_ context.Context, initials string, excluded ...faculty.Faculty) error {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, fac := range repo.db.table {
		if fac.Initials == initials && !isExcludedFaculty(*fac, excluded) {
			return faculty.ErrInitialsExist
		}
	}
	return nil
}

func (repo *facultyRepository) CreateFaculty(_ context.Context, fac faculty.Faculty) (faculty.Faculty, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.table[fac.ID] = &fac
	return fac, nil
}

func (repo *facultyRepository) QueryAllFaculty(_ context.Context) ([]faculty.Faculty, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *facultyRepository) GetFacultyByID(_ context.Context, id string) (faculty.Faculty, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if fac, ok := repo.db.table[id]; ok {
		return *fac, nil
	}
	return faculty.Faculty{}, faculty.ErrNotFound
}

func (repo *facultyRepository) GetFacultyByInitials(_ context.Context, initials string) (faculty.Faculty, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, fac := range repo.db.table {
		if fac.Initials == initials {
			return *fac, nil
		}
	}
	return faculty.Faculty{}, faculty.ErrNotFound
}

func (repo *facultyRepository) FilterFaculty(_ context.Context, filter faculty.QueryFilter) ([]faculty.Faculty, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	search := strings.ToLower(filter.Search)
	matches := make([]faculty.Faculty, 0)
	for _, fac := range repo.query() {
		if search != "" &&
			!strings.Contains(strings.ToLower(fac.Initials), search) &&
			!strings.Contains(strings.ToLower(fac.Name), search) {
			continue
		}
		if filter.Department != "" && fac.Department != filter.Department {
			continue
		}
		matches = append(matches, fac)
	}
	return matches, nil
}

func (repo *facultyRepository) DeleteFacultyByID(_ context.Context, ids ...string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, id := range ids {
		delete(repo.db.table, id)
		delete(repo.db.reviews, id)
	}
	return nil
}

// Reviews

func (repo *facultyRepository) CreateReview(_ context.Context, rev faculty.Review) (faculty.Review, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.reviews[rev.FacultyID] = append(repo.db.reviews[rev.FacultyID], rev)
	return rev, nil
}

func (repo *facultyRepository) QueryReviewsByFaculty(_ context.Context, facultyID string) ([]faculty.Review, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	revs := make([]faculty.Review, len(repo.db.reviews[facultyID]))
	copy(revs, repo.db.reviews[facultyID])
	sort.SliceStable(revs, func(i, j int) bool { return revs[i].CreatedAt.After(revs[j].CreatedAt) })
	return revs, nil
}

// Requests

func (repo *facultyRepository) CreateRequest(_ context.Context, req faculty.Request) (faculty.Request, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.requests[req.ID] = &req
	return req, nil
}

func (repo *facultyRepository) QueryRequests(_ context.Context, status string) ([]faculty.Request, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	reqs := make([]faculty.Request, 0, len(repo.db.requests))
	for _, req := range repo.db.requests {
		if status != "" && req.Status != status {
			continue
		}
		reqs = append(reqs, *req)
	}
	sort.SliceStable(reqs, func(i, j int) bool { return reqs[i].CreatedAt.After(reqs[j].CreatedAt) })
	return reqs, nil
}

func (repo *facultyRepository) GetRequestByID(_ context.Context, id string) (faculty.Request, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if req, ok := repo.db.requests[id]; ok {
		return *req, nil
	}
	return faculty.Request{}, faculty.ErrRequestNotFound
}

func (repo *facultyRepository) UpdateRequest(_ context.Context, req faculty.Request) (faculty.Request, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.requests[req.ID]; !ok {
		return faculty.Request{}, faculty.ErrRequestNotFound
	}
	repo.db.requests[req.ID] = &req
	return req, nil
}

func (repo *facultyRepository) ApproveRequest(_ context.Context, req faculty.Request, fac faculty.Faculty) (faculty.Request, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.requests[req.ID]; !ok {
		return faculty.Request{}, faculty.ErrRequestNotFound
	}
	repo.db.table[fac.ID] = &fac
	repo.db.requests[req.ID] = &req
	return req, nil
}

func isExcludedFaculty(fac faculty.Faculty, excluded []faculty.Faculty) bool {
	for _, excl := range excluded {
		if fac.ID == excl.ID {
			return true
		}
	}
	return false
}
