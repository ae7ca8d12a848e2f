package api

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rpupo63/portfolio-backend/errs"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report field names as the client sent them.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationError converts the first validator failure into an ApiErr the
// Responder knows how to shape.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		if fe.Tag() == "required" {
			return errs.NewMissingRequiredFieldError(fe.Field())
		}
		reason := "failed on the '" + fe.Tag() + "' rule"
		if fe.Param() != "" {
			reason += " (" + fe.Param() + ")"
		}
		return errs.NewInvalidFieldError(fe.Field(), reason)
	}
	return errs.NewBadRequestError("invalid payload")
}
