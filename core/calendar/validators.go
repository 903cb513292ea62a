package calendar

import (
	"github.com/go-playground/validator/v10"

	"github.com/campuskit/backend/core"
)

func (nc *NewCalendar) Validate(validate *validator.Validate) error {
	nc.Trimester = core.CleanString(nc.Trimester)
	return validate.Struct(nc)
}

func (uc *UpdateCalendar) Validate(validate *validator.Validate) error {
	uc.Trimester = core.CleanString(uc.Trimester)
	return validate.Struct(uc)
}
