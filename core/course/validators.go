package course

import (
	"github.com/go-playground/validator/v10"

	"github.com/campuskit/backend/core"
)

func (nc *NewCourse) Validate(validate *validator.Validate) error {
	nc.Code = core.CleanCode(nc.Code)
	nc.Title = core.CleanString(nc.Title)
	nc.Department = core.CleanString(nc.Department)
	return validate.Struct(nc)
}

func (uc *UpdateCourse) Validate(validate *validator.Validate) error {
	uc.Title = core.CleanString(uc.Title)
	uc.Department = core.CleanString(uc.Department)
	return validate.Struct(uc)
}
