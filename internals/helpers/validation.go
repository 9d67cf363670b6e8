// file: internals/helpers/validation.go
package helper

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/guipadovan/library-manager/internals/helpers/apperror"
	"github.com/guipadovan/library-manager/internals/helpers/dbtime"
)

var (
	phoneBRRe    = regexp.MustCompile(`^\(\d{2}\) \d{4,5}-\d{4}$`)
	isbnDigitsRe = regexp.MustCompile(`^\d{13}$`)
)

// Validate is the shared validator; field names in errors follow the json tags.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("phone_br", func(fl validator.FieldLevel) bool {
		return phoneBRRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("isbn_digits", func(fl validator.FieldLevel) bool {
		return isbnDigitsRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("ymd", func(fl validator.FieldLevel) bool {
		_, err := dbtime.ParseDate(fl.Field().String())
		return err == nil
	})
	return v
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if fe.Kind() == reflect.String {
			return "must not be blank"
		}
		return "must not be null"
	case "email":
		return "must be a well-formed email address"
	case "phone_br":
		return "must match (DD) DDDD-DDDD or (DD) DDDDD-DDDD"
	case "isbn_digits":
		return "must be exactly 13 digits"
	case "ymd":
		return "must be a date in YYYY-MM-DD format"
	case "max":
		return "size must be at most " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}

// FieldMessages flattens validator errors into field → message (first error per field).
func FieldMessages(errs validator.ValidationErrors) map[string]string {
	out := apperror.FieldErrors{}
	for _, fe := range errs {
		out.Add(fe.Field(), tagMessage(fe))
	}
	return out
}

// ValidateStruct runs the tag rules on s and returns a *apperror.ValidationError or nil.
// extra carries rules the tags cannot express; they are merged after the tag messages.
func ValidateStruct(s any, extra apperror.FieldErrors) error {
	fields := apperror.FieldErrors{}
	if err := Validate.Struct(s); err != nil {
		var vv validator.ValidationErrors
		if !errors.As(err, &vv) {
			return err
		}
		fields.Merge(FieldMessages(vv))
	}
	fields.Merge(extra)
	return fields.Err()
}
