package grading

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/campuskit/backend/core"
)

var (
	validGradeTag  = "validgrade"
	validGradeText = "unknown letter grade"

	prevGradeTag  = "prevgrade"
	prevGradeText = "previous grade is required on a retake"
)

// InitValidators registers the grading validations. Validation happens at the
// API boundary; the aggregator itself assumes validated input.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	validate.RegisterStructValidation(courseInputStructValidation, CourseInput{})
	core.RegisterCustomTranslation(validate, translator, validGradeTag, validGradeText)
	core.RegisterCustomTranslation(validate, translator, prevGradeTag, prevGradeText)
}

func courseInputStructValidation(sl validator.StructLevel) {
	in := sl.Current().Interface().(CourseInput)

	grade := core.CleanString(in.Grade)
	if grade != "" && !IsValidGrade(grade) {
		sl.ReportError(in.Grade, "grade", "Grade", validGradeTag, "")
	}
	if in.IsRetake && grade != "" && core.CleanString(in.PreviousGrade) == "" {
		sl.ReportError(in.PreviousGrade, "previous_grade", "PreviousGrade", prevGradeTag, "")
	}
	if prev := core.CleanString(in.PreviousGrade); prev != "" && !IsValidGrade(prev) {
		sl.ReportError(in.PreviousGrade, "previous_grade", "PreviousGrade", validGradeTag, "")
	}
}
