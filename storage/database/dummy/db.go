// Package dummydb is an in-memory implementation of the domain repositories,
// used by tests and local runs without a postgres instance.
package dummydb

import (
	"sync"

	"github.com/campuskit/backend/core/calendar"
	"github.com/campuskit/backend/core/course"
	"github.com/campuskit/backend/core/faculty"
	"github.com/campuskit/backend/core/planner"
)

type (
	DB struct {
		course   *courseTable
		calendar *calendarTable
		faculty  *facultyTable
		planner  *plannerTable
	}

	courseTable struct {
		mutex sync.RWMutex
		table map[string]*course.Course
	}

	calendarTable struct {
		mutex sync.RWMutex
		table map[string]*calendar.Calendar
	}

	facultyTable struct {
		mutex    sync.RWMutex
		table    map[string]*faculty.Faculty
		reviews  map[string][]faculty.Review // facultyID -> reviews
		requests map[string]*faculty.Request
	}

	plannerTable struct {
		mutex sync.RWMutex
		table map[string]*planner.Dataset
	}
)

func Open() (*DB, error) {
	db := &DB{
		course:   &courseTable{table: make(map[string]*course.Course)},
		calendar: &calendarTable{table: make(map[string]*calendar.Calendar)},
		faculty: &facultyTable{
			table:    make(map[string]*faculty.Faculty),
			reviews:  make(map[string][]faculty.Review),
			requests: make(map[string]*faculty.Request),
		},
		planner: &plannerTable{table: make(map[string]*planner.Dataset)},
	}
	return db, nil
}
