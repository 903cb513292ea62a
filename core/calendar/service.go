package calendar

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/campuskit/backend/core"
)

var ErrNotFound = errors.New("calendar not found")

type (
	Repository interface {
		CreateCalendar(ctx context.Context, cal Calendar) (Calendar, error)
		QueryAllCalendars(ctx context.Context) ([]Calendar, error)
		GetCalendarByID(ctx context.Context, id string) (Calendar, error)
		UpdateCalendar(ctx context.Context, cal Calendar) (Calendar, error)
		DeleteCalendarsByID(ctx context.Context, ids ...string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nc NewCalendar) (Calendar, error) {
	now := time.Now().UTC()
	cal := Calendar{
		ID:        uuid.New().String(),
		Trimester: core.CleanString(nc.Trimester),
		Year:      nc.Year,
		Published: nc.Published,
		Events:    newEvents(nc.Events),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return svc.repo.CreateCalendar(ctx, cal)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Calendar, error) {
	return svc.repo.QueryAllCalendars(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Calendar, error) {
	return svc.repo.GetCalendarByID(ctx, id)
}

// Current returns the most recently updated published calendar.
func (svc *Service) Current(ctx context.Context) (Calendar, error) {
	cals, err := svc.repo.QueryAllCalendars(ctx)
	if err != nil {
		return Calendar{}, err
	}
	published := cals[:0:0]
	for _, cal := range cals {
		if cal.Published {
			published = append(published, cal)
		}
	}
	if len(published) == 0 {
		return Calendar{}, ErrNotFound
	}
	sort.Slice(published, func(i, j int) bool {
		return published[i].UpdatedAt.After(published[j].UpdatedAt)
	})
	return published[0], nil
}

func (svc *Service) Update(ctx context.Context, id string, uc UpdateCalendar) (Calendar, error) {
	cal, err := svc.repo.GetCalendarByID(ctx, id)
	if err != nil {
		return Calendar{}, err
	}

	cal.Trimester = core.CleanString(uc.Trimester)
	cal.Year = uc.Year
	if uc.Published != nil {
		cal.Published = *uc.Published
	}
	cal.Events = newEvents(uc.Events)
	cal.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateCalendar(ctx, cal)
}

func (svc *Service) Delete(ctx context.Context, ids ...string) error {
	return svc.repo.DeleteCalendarsByID(ctx, ids...)
}

func newEvents(in []NewEvent) []Event {
	events := make([]Event, 0, len(in))
	for _, e := range in {
		events = append(events, Event{
			Date:     e.Date.UTC(),
			Title:    core.CleanString(e.Title),
			Category: e.Category,
		})
	}
	// chronological; the UI renders the list as-is
	sort.SliceStable(events, func(i, j int) bool { return events[i].Date.Before(events[j].Date) })
	return events
}
