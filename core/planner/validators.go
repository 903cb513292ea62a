package planner

import (
	"github.com/go-playground/validator/v10"

	"github.com/campuskit/backend/core"
)

func (nd *NewDataset) Validate(validate *validator.Validate) error {
	nd.Trimester = core.CleanString(nd.Trimester)
	for i := range nd.Sections {
		nd.Sections[i].CourseCode = core.CleanCode(nd.Sections[i].CourseCode)
	}
	return validate.Struct(nd)
}
