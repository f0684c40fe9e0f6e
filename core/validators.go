package core

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	// custom validation tags & texts
	statusTag  = "status"
	statusText = "{0} must be one of: Ativo, Inativo"

	shiftTag  = "shift"
	shiftText = "{0} must be one of: Manhã, Tarde"

	weekdayTag  = "weekday"
	weekdayText = "{0} must be a weekday name (Segunda ... Domingo)"

	timeOfDayTag   = "hhmm"
	timeOfDayText  = "{0} must be a time of day formatted as HH:MM"
	timeOfDayRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

	requiredTag  = "required"
	requiredText = "this field is required"
)

// NewTranslator returns the english translator used for validation messages.
func NewTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

// InitValidators instantiates the validator for use.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// register custom validators
	_ = validate.RegisterValidation(statusTag, statusValidation)
	RegisterCustomTranslation(validate, translator, statusTag, statusText)

	_ = validate.RegisterValidation(shiftTag, shiftValidation)
	RegisterCustomTranslation(validate, translator, shiftTag, shiftText)

	_ = validate.RegisterValidation(weekdayTag, weekdayValidation)
	RegisterCustomTranslation(validate, translator, weekdayTag, weekdayText)

	_ = validate.RegisterValidation(timeOfDayTag, timeOfDayValidation)
	RegisterCustomTranslation(validate, translator, timeOfDayTag, timeOfDayText)

	RegisterCustomTranslation(validate, translator, requiredTag, requiredText, true)
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
func RegisterCustomTranslation(validate *validator.Validate, translator ut.Translator, tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// IsTimeOfDay reports whether s is a valid "HH:MM" time.
func IsTimeOfDay(s string) bool {
	return timeOfDayRegex.MatchString(s)
}

// Custom Global Validators

func statusValidation(fl validator.FieldLevel) bool {
	return IsKnownStatus(Status(fl.Field().String()))
}

func shiftValidation(fl validator.FieldLevel) bool {
	return IsKnownShift(Shift(fl.Field().String()))
}

func weekdayValidation(fl validator.FieldLevel) bool {
	return IsWeekday(fl.Field().String())
}

func timeOfDayValidation(fl validator.FieldLevel) bool {
	return IsTimeOfDay(fl.Field().String())
}
