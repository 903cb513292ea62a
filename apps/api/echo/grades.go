package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campuskit/backend/core"
	"github.com/campuskit/backend/core/grading"
)

type gradesApi struct {
	validate *validator.Validate
}

func registerGradesAPI(g *echo.Group, validate *validator.Validate) {
	api := gradesApi{validate: validate}

	gg := g.Group("/grades")
	gg.GET("/scale", api.scale)
	gg.POST("/cgpa", api.calculate)
}

type (
	CGPARequest struct {
		PriorCredits float64                  `json:"prior_credits" validate:"gte=0"`
		PriorCGPA    float64                  `json:"prior_cgpa" validate:"gte=0,lte=4"`
		Trimesters   []grading.TrimesterInput `json:"trimesters" validate:"required,min=1,dive"`
	}

	CGPAResponse struct {
		Results          []grading.CGPAResult      `json:"results"`
		CompletedCourses []grading.CompletedCourse `json:"completed_courses"`
	}
)

// Validate enforces what the aggregator assumes: pre-validated rows and at
// least one gradable course.
func (r *CGPARequest) Validate(validate *validator.Validate) error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	for _, tri := range r.Trimesters {
		for _, c := range tri.Courses {
			if core.CleanString(c.Grade) != "" && c.Credit > 0 {
				return nil
			}
		}
	}
	return core.NewValidationError(errors.New("at least one course with a grade and credits is required"))
}

// Handlers

func (api *gradesApi) scale(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, grading.Table)
}

func (api *gradesApi) calculate(ctx echo.Context) error {
	var data CGPARequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to CGPARequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, CGPAResponse{
		Results:          grading.CalculateCGPA(data.Trimesters, data.PriorCredits, data.PriorCGPA),
		CompletedCourses: grading.CompletedCourses(data.Trimesters),
	})
}
