package class

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/escola/core"
)

var (
	endAfterStartTag  = "endafterstart"
	endAfterStartText = "{0} must be later than start_time"

	timeRangeTag  = "timerange"
	timeRangeText = "{0} is required when the other end of the schedule is set"
)

// InitValidators registers the Class struct level validations.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	validate.RegisterStructValidation(classStructValidation, Class{})
	core.RegisterCustomTranslation(validate, translator, endAfterStartTag, endAfterStartText)
	core.RegisterCustomTranslation(validate, translator, timeRangeTag, timeRangeText)
}

// classStructValidation checks that the schedule is either empty or a well ordered range.
func classStructValidation(sl validator.StructLevel) {
	cls, ok := sl.Current().Interface().(Class)
	if !ok {
		return
	}

	switch {
	case cls.StartTime == "" && cls.EndTime == "":
		return
	case cls.StartTime == "":
		sl.ReportError(cls.StartTime, "start_time", "StartTime", timeRangeTag, "")
	case cls.EndTime == "":
		sl.ReportError(cls.EndTime, "end_time", "EndTime", timeRangeTag, "")
	case core.IsTimeOfDay(cls.StartTime) && core.IsTimeOfDay(cls.EndTime) && cls.EndTime <= cls.StartTime:
		// "HH:MM" strings sort chronologically
		sl.ReportError(cls.EndTime, "end_time", "EndTime", endAfterStartTag, "")
	}
}
