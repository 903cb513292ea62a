package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campuskit/backend/core/calendar"
)

type calendarApi struct {
	svc      *calendar.Service
	validate *validator.Validate
}

func registerCalendarAPI(g *echo.Group, svc *calendar.Service, validate *validator.Validate) {
	api := calendarApi{svc: svc, validate: validate}

	cg := g.Group("/calendars")
	cg.GET("", api.query)
	cg.POST("", api.create)
	cg.GET("/current", api.current)

	dg := cg.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
}

// Handlers

func (api *calendarApi) create(ctx echo.Context) error {
	var data calendar.NewCalendar
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewCalendar")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	cal, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating calendar")
	}
	return ctx.JSON(http.StatusCreated, cal)
}

func (api *calendarApi) query(ctx echo.Context) error {
	cals, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying calendars")
	}
	return ctx.JSON(http.StatusOK, cals)
}

func (api *calendarApi) current(ctx echo.Context) error {
	cal, err := api.svc.Current(ctx.Request().Context())
	if err != nil {
		if errors.Cause(err) == calendar.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "getting current calendar")
	}
	return ctx.JSON(http.StatusOK, cal)
}

func (api *calendarApi) retrieve(ctx echo.Context) error {
	cal, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == calendar.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "getting calendar")
	}
	return ctx.JSON(http.StatusOK, cal)
}

func (api *calendarApi) update(ctx echo.Context) error {
	var data calendar.UpdateCalendar
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateCalendar")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	cal, err := api.svc.Update(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		if errors.Cause(err) == calendar.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "updating calendar")
	}
	return ctx.JSON(http.StatusOK, cal)
}

func (api *calendarApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting calendar")
	}
	return ctx.NoContent(http.StatusNoContent)
}
