package handler

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/nexplant/production-manager/backend/internal/shiftwindow"
)

// registerTimeOfDayValidation adds the "timeofday" tag for HH:MM[:SS] fields.
func registerTimeOfDayValidation(validate *validator.Validate, trans ut.Translator) error {
	err := validate.RegisterValidation("timeofday", func(fl validator.FieldLevel) bool {
		_, err := shiftwindow.ParseTimeOfDay(fl.Field().String())
		return err == nil
	})
	if err != nil {
		return err
	}

	return validate.RegisterTranslation(
		"timeofday",
		trans,
		func(ut ut.Translator) error {
			return ut.Add("timeofday", "{0} must be a time in HH:MM format", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T("timeofday", fe.Field())
			return t
		},
	)
}
