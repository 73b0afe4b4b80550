package helper

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"hrms_backend/internals/constants"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator; field names in errors follow the json tags.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
		validate = v
	})
	return validate
}

// FieldError is returned by ValidateStruct; the error handler renders it as 422.
type FieldError struct {
	Fields map[string][]string
}

func (e *FieldError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for f, tags := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(tags, ",")))
	}
	return constants.ErrValidationFailed + ": " + strings.Join(parts, "; ")
}

// NewFieldError builds a single-field validation error.
func NewFieldError(field, tag string) *FieldError {
	return &FieldError{Fields: map[string][]string{field: {tag}}}
}

// ValidateStruct runs validator tags on v and converts failures to *FieldError.
func ValidateStruct(v any) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	fields := make(map[string][]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = append(fields[fe.Field()], fe.Tag())
	}
	return &FieldError{Fields: fields}
}

// ✅ Khusus error validasi (validator.v10 / FieldError)
func ValidationError(c *fiber.Ctx, err error) error {
	var fe *FieldError
	if errors.As(err, &fe) {
		return JsonValidationError(c, constants.ErrValidationFailed, fe.Fields)
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make(map[string][]string, len(ve))
		for _, e := range ve {
			fields[e.Field()] = append(fields[e.Field()], e.Tag())
		}
		return JsonValidationError(c, constants.ErrValidationFailed, fields)
	}
	return JsonValidationError(c, err.Error(), nil)
}
