package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campuskit/backend/core/faculty"
)

type facultyApi struct {
	svc      *faculty.Service
	validate *validator.Validate
}

func registerFacultyAPI(g *echo.Group, svc *faculty.Service, validate *validator.Validate) {
	api := facultyApi{svc: svc, validate: validate}

	fg := g.Group("/faculty")
	fg.GET("", api.query)
	fg.POST("", api.create)

	dg := fg.Group("/:id")
	dg.GET("", api.retrieve)
	dg.DELETE("", api.destroy)
	dg.GET("/reviews", api.queryReviews)
	dg.POST("/reviews", api.createReview)

	rg := g.Group("/faculty-requests")
	rg.GET("", api.queryRequests)
	rg.POST("", api.submitRequest)
	rg.PUT("/:id", api.decideRequest)
}

// FacultyDetail is the directory card: the entry plus its review aggregates.
type FacultyDetail struct {
	faculty.Faculty
	Summary faculty.RatingSummary `json:"summary"`
}

// Handlers

func (api *facultyApi) create(ctx echo.Context) error {
	var data faculty.NewFaculty
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewFaculty")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	fac, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating faculty")
	}
	return ctx.JSON(http.StatusCreated, fac)
}

func (api *facultyApi) query(ctx echo.Context) error {
	filter := faculty.QueryFilter{
		Search:     ctx.QueryParam("search"),
		Department: ctx.QueryParam("department"),
	}
	fcs, err := api.svc.Filter(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "querying faculty")
	}
	return ctx.JSON(http.StatusOK, fcs)
}

func (api *facultyApi) retrieve(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	fac, err := api.svc.GetByID(reqCtx, ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == faculty.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "getting faculty")
	}

	reviews, err := api.svc.Reviews(reqCtx, fac.ID)
	if err != nil {
		return errors.Wrap(err, "getting faculty reviews")
	}
	return ctx.JSON(http.StatusOK, FacultyDetail{Faculty: fac, Summary: faculty.Summarize(reviews)})
}

func (api *facultyApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting faculty")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Reviews

func (api *facultyApi) createReview(ctx echo.Context) error {
	var data faculty.NewReview
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewReview")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	rev, err := api.svc.AddReview(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		if errors.Cause(err) == faculty.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "creating review")
	}
	return ctx.JSON(http.StatusCreated, rev)
}

func (api *facultyApi) queryReviews(ctx echo.Context) error {
	reviews, err := api.svc.Reviews(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "querying reviews")
	}
	return ctx.JSON(http.StatusOK, reviews)
}

// Requests

func (api *facultyApi) submitRequest(ctx echo.Context) error {
	var data faculty.NewRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	req, err := api.svc.SubmitRequest(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "submitting faculty request")
	}
	return ctx.JSON(http.StatusCreated, req)
}

func (api *facultyApi) queryRequests(ctx echo.Context) error {
	reqs, err := api.svc.QueryRequests(ctx.Request().Context(), ctx.QueryParam("status"))
	if err != nil {
		return errors.Wrap(err, "querying faculty requests")
	}
	return ctx.JSON(http.StatusOK, reqs)
}

func (api *facultyApi) decideRequest(ctx echo.Context) error {
	var data faculty.DecideRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to DecideRequest")
	}

	req, err := api.svc.Decide(ctx.Request().Context(), ctx.Param("id"), data.Approve)
	if err != nil {
		if errors.Cause(err) == faculty.ErrRequestNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "deciding faculty request")
	}
	return ctx.JSON(http.StatusOK, req)
}
