package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var bindingPeriodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// registerCustomValidators installs binding-level validations on gin's
// validator engine. Services re-validate authoritatively; this only gives
// malformed requests a fast 400.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("period", func(fl validator.FieldLevel) bool {
			return bindingPeriodPattern.MatchString(fl.Field().String())
		})
	}
}
