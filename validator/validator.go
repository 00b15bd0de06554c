package validator

import (
	stderrors "errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vortex-fintech/go-addressbook/errors"
)

var v *validator.Validate

func init() {
	v = validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	registerContactRules(v)
}

// Check validates a struct and returns an errors.ErrorResponse listing every
// violation in field order, or nil when valid.
func Check(i any) error {
	err := v.Struct(i)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if stderrors.As(err, &errs) {
		return errors.FromPlayground(errs, tagMap)
	}
	return errors.InvalidArgument().WithReason("validation_failed")
}

// Var checks a single value against tag. On failure it returns an
// errors.InvariantError carrying field, the code of the first failed tag and reason.
func Var(field string, value any, tag, reason string) error {
	err := v.Var(value, tag)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if stderrors.As(err, &errs) && len(errs) > 0 {
		return errors.InvalidFieldCode(field, mapTagToCode(errs[0].Tag()), reason)
	}
	return errors.InvalidFieldCode(field, "validation_failed", reason)
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}
