package api

import (
	"time"

	"github.com/circulo-sport/courtdesk/booking"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var hhmmValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)

	if !ok {
		return false
	}

	_, err := booking.ParseMinutes(value)

	return err == nil
}

var ymdValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)

	if !ok {
		return false
	}

	_, err := time.Parse(time.DateOnly, value)

	return err == nil
}

// RegisterValidators adds the "hhmm" and "ymd" binding tags.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("hhmm", hhmmValidatorFunc)
		v.RegisterValidation("ymd", ymdValidatorFunc)
	}
}
