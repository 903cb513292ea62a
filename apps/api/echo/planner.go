package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campuskit/backend/core"
	"github.com/campuskit/backend/core/course"
	"github.com/campuskit/backend/core/planner"
)

type plannerApi struct {
	svc       *planner.Service
	courseSvc *course.Service
	validate  *validator.Validate
}

func registerPlannerAPI(g *echo.Group, svc *planner.Service, courseSvc *course.Service, validate *validator.Validate) {
	api := plannerApi{svc: svc, courseSvc: courseSvc, validate: validate}

	pg := g.Group("/planner")
	pg.POST("/check", api.check)

	dg := pg.Group("/datasets")
	dg.GET("", api.query)
	dg.POST("", api.create)
	dg.GET("/:id", api.retrieve)
	dg.DELETE("/:id", api.destroy)
}

// CheckSelectionRequest carries a tentative enrollment to validate. Completed
// course codes come from the student's trimester history on the client.
type CheckSelectionRequest struct {
	Selected       []planner.NewSection `json:"selected" validate:"required,min=1,dive"`
	CompletedCodes []string             `json:"completed_codes"`
}

func (r *CheckSelectionRequest) Validate(validate *validator.Validate) error {
	for i := range r.Selected {
		r.Selected[i].CourseCode = core.CleanCode(r.Selected[i].CourseCode)
	}
	return validate.Struct(r)
}

// Handlers

func (api *plannerApi) create(ctx echo.Context) error {
	var data planner.NewDataset
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewDataset")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	ds, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating dataset")
	}
	return ctx.JSON(http.StatusCreated, ds)
}

func (api *plannerApi) query(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	if trimester := ctx.QueryParam("trimester"); trimester != "" {
		ds, err := api.svc.GetByTrimester(reqCtx, trimester)
		if err != nil {
			if errors.Cause(err) == planner.ErrNotFound {
				return errHttpNotFound
			}
			return errors.Wrap(err, "getting dataset by trimester")
		}
		return ctx.JSON(http.StatusOK, []planner.Dataset{ds})
	}

	dss, err := api.svc.QueryAll(reqCtx)
	if err != nil {
		return errors.Wrap(err, "querying datasets")
	}
	return ctx.JSON(http.StatusOK, dss)
}

func (api *plannerApi) retrieve(ctx echo.Context) error {
	ds, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == planner.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "getting dataset")
	}
	return ctx.JSON(http.StatusOK, ds)
}

func (api *plannerApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting dataset")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *plannerApi) check(ctx echo.Context) error {
	var data CheckSelectionRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to CheckSelectionRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	reqCtx := ctx.Request().Context()

	credits, err := api.courseSvc.CreditIndex(reqCtx)
	if err != nil {
		return errors.Wrap(err, "building credit index")
	}
	prereqs, err := api.courseSvc.PrerequisiteIndex(reqCtx)
	if err != nil {
		return errors.Wrap(err, "building prerequisite index")
	}

	selected := make([]planner.Section, 0, len(data.Selected))
	for _, s := range data.Selected {
		selected = append(selected, planner.Section{
			CourseCode: s.CourseCode,
			Section:    core.CleanString(s.Section),
			Faculty:    core.CleanString(s.Faculty),
			Days:       s.Days,
			StartMin:   s.StartMin,
			EndMin:     s.EndMin,
			Room:       core.CleanString(s.Room),
			Capacity:   s.Capacity,
		})
	}
	return ctx.JSON(http.StatusOK, planner.Check(selected, credits, prereqs, data.CompletedCodes))
}
