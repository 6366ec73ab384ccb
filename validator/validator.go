package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator checks request payloads before they leave the process. It
// satisfies echo's Validator interface.
type Validator struct {
	Validator *validator.Validate
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, err := range v {
		msgs = append(msgs, err.Message)
	}

	return strings.Join(msgs, "; ")
}

// Fields returns the offending field names in report order.
func (v ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(v))
	for _, err := range v {
		fields = append(fields, err.Field)
	}

	return fields
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		const maxSplits = 2
		name := strings.SplitN(fld.Tag.Get("json"), ",", maxSplits)[0]

		if name == "-" {
			return ""
		}

		return name
	})

	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{}, decimal.NullDecimal{})

	_ = v.RegisterValidation("notblank", notBlank)

	return &Validator{Validator: v}
}

// decimalValue lets numeric tags (gt, gte, lte) run against decimals. An unset
// NullDecimal reads as nil so omitempty skips it.
func decimalValue(field reflect.Value) any {
	switch val := field.Interface().(type) {
	case decimal.Decimal:
		f, _ := val.Float64()

		return f
	case decimal.NullDecimal:
		if !val.Valid {
			return nil
		}

		f, _ := val.Decimal.Float64()

		return f
	default:
		return nil
	}
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()

	switch field.Kind() { //nolint:exhaustive
	case reflect.String:
		return strings.TrimSpace(field.String()) != ""
	case reflect.Pointer:
		if field.IsNil() {
			return false
		}

		return field.Elem().Kind() != reflect.String || strings.TrimSpace(field.Elem().String()) != ""
	default:
		return !field.IsZero()
	}
}

func (v *Validator) Validate(i any) error {
	if err := v.Validator.Struct(i); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.formatValidationErrors(validationErrs)
		}

		return err //nolint:wrapcheck
	}

	return nil
}

func (v *Validator) formatValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	validationErrs := make(ValidationErrors, 0, len(errs))

	for _, err := range errs {
		field := err.Field()
		if field == "" {
			field = err.StructField()
		}

		validationErrs = append(validationErrs, ValidationError{
			Field:   field,
			Tag:     err.Tag(),
			Value:   fmt.Sprintf("%v", err.Value()),
			Message: message(field, err),
		})
	}

	return validationErrs
}

func message(field string, err validator.FieldError) string {
	param := err.Param()

	switch err.Tag() {
	case "required", "notblank":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "url":
		return field + " must be a valid URL"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lt":
		return fmt.Sprintf("%s must be less than %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	case "datetime":
		return fmt.Sprintf("%s must be a date in the form %s", field, param)
	default:
		return fmt.Sprintf("%s failed validation on '%s'", field, err.Tag())
	}
}

func (v *Validator) RegisterCustomTypeFunc(fn validator.CustomTypeFunc, types ...any) {
	v.Validator.RegisterCustomTypeFunc(fn, types...)
}

func (v *Validator) RegisterStructValidation(fn validator.StructLevelFunc, types ...any) {
	v.Validator.RegisterStructValidation(fn, types...)
}
