package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campuskit/backend/core/career"
	"github.com/campuskit/backend/core/grading"
)

type careersApi struct {
	validate *validator.Validate
}

func registerCareersAPI(g *echo.Group, validate *validator.Validate) {
	api := careersApi{validate: validate}

	cg := g.Group("/careers")
	cg.GET("/programs", api.programs)
	cg.GET("/tracks", api.tracks)
	cg.POST("/suggest", api.suggest)
	cg.POST("/roadmap", api.roadmap)
}

type (
	SuggestRequest struct {
		ProgramID  string                   `json:"program_id" validate:"required"`
		Trimesters []grading.TrimesterInput `json:"trimesters" validate:"required,min=1,dive"`
	}

	RoadmapRequest struct {
		ProgramID    string                   `json:"program_id" validate:"required"`
		TrackID      string                   `json:"track_id" validate:"required"`
		Trimesters   []grading.TrimesterInput `json:"trimesters" validate:"required,min=1,dive"`
		PriorCredits float64                  `json:"prior_credits" validate:"gte=0"`
		PriorCGPA    float64                  `json:"prior_cgpa" validate:"gte=0,lte=4"`
		TargetCGPA   float64                  `json:"target_cgpa" validate:"omitempty,gt=0,lte=4"`
	}
)

// Handlers

func (api *careersApi) programs(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, career.Programs())
}

func (api *careersApi) tracks(ctx echo.Context) error {
	programID := ctx.QueryParam("program")
	// unknown program ids degrade to an empty list; the UI stays renderable
	return ctx.JSON(http.StatusOK, career.TracksForProgram(programID))
}

func (api *careersApi) suggest(ctx echo.Context) error {
	var data SuggestRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SuggestRequest")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}

	program, ok := career.ProgramByID(data.ProgramID)
	if !ok {
		return ctx.JSON(http.StatusOK, []career.Suggestion{})
	}

	completed := grading.CompletedCourses(data.Trimesters)
	return ctx.JSON(http.StatusOK, career.SuggestCareers(program, completed))
}

func (api *careersApi) roadmap(ctx echo.Context) error {
	var data RoadmapRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to RoadmapRequest")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}

	// current standing comes from the aggregator's last cumulative row
	var currentCGPA, completedCredits float64 = data.PriorCGPA, data.PriorCredits
	results := grading.CalculateCGPA(data.Trimesters, data.PriorCredits, data.PriorCGPA)
	if len(results) > 0 {
		last := results[len(results)-1]
		currentCGPA = last.CGPA
		completedCredits = last.EarnedCredits
	}

	program, _ := career.ProgramByID(data.ProgramID) // zero Program degrades to a zeroed roadmap
	completed := grading.CompletedCourses(data.Trimesters)
	rm := career.BuildRoadmap(program, completed, data.TrackID, currentCGPA, completedCredits, data.TargetCGPA)
	return ctx.JSON(http.StatusOK, rm)
}
