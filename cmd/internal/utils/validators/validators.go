package validators

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

// New returns a validator with every custom tag of the service registered.
func New() *validator.Validate {
	validate := validator.New()
	Register(validate)
	return validate
}

func Register(validate *validator.Validate) {
	if err := validate.RegisterValidation("notblank", NotBlank); err != nil {
		log.Fatalf("failed to register 'notblank' validator: %v", err)
	}
}

// NotBlank rejects strings made only of whitespace.
func NotBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		log.Warnf("validator 'notblank' applied to non-string type: %s", field.Kind().String())
		return false
	}
	return strings.TrimSpace(field.String()) != ""
}
