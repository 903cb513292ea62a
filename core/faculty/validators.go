package faculty

import (
	"github.com/go-playground/validator/v10"

	"github.com/campuskit/backend/core"
)

func (nf *NewFaculty) Validate(validate *validator.Validate) error {
	nf.Initials = core.CleanCode(nf.Initials)
	nf.Name = core.CleanString(nf.Name)
	nf.Department = core.CleanString(nf.Department)
	return validate.Struct(nf)
}

func (nr *NewReview) Validate(validate *validator.Validate) error {
	nr.CourseCode = core.CleanCode(nr.CourseCode)
	nr.Comment = core.CleanString(nr.Comment)
	return validate.Struct(nr)
}

func (nr *NewRequest) Validate(validate *validator.Validate) error {
	nr.Initials = core.CleanCode(nr.Initials)
	nr.Name = core.CleanString(nr.Name)
	nr.Department = core.CleanString(nr.Department)
	return validate.Struct(nr)
}
