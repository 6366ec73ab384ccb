// Package form turns raw user input into optional typed values.
//
// Every parser trims its input and returns the "absent" value (nil pointer or
// an invalid decimal.NullDecimal) for empty or unparseable text. Nothing here
// yields NaN or a silent zero.
package form

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

var ErrInvalidValue = errors.New("form: invalid value")

func String(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

func Int(raw string) *int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil
	}

	return &value
}

func Int64(raw string) *int64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	value, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return nil
	}

	return &value
}

func Decimal(raw string) decimal.NullDecimal {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.NullDecimal{} //nolint:exhaustruct
	}

	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.NullDecimal{} //nolint:exhaustruct
	}

	return decimal.NewNullDecimal(value)
}

func Float(raw string) *float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil
	}

	return &value
}

func Date(raw string) *time.Time {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	value, err := time.Parse(DateLayout, trimmed)
	if err != nil {
		return nil
	}

	return &value
}

// OneOf returns raw when it matches one of allowed exactly; otherwise nil.
func OneOf(raw string, allowed ...string) *string {
	value := String(raw)
	if value == nil {
		return nil
	}

	for _, candidate := range allowed {
		if *value == candidate {
			return value
		}
	}

	return nil
}

// RequireInt64 is the strict variant of Int64 for identifiers: empty or
// unparseable input is an error rather than an absent value.
func RequireInt64(name, raw string) (int64, error) {
	value := Int64(raw)
	if value == nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidValue, name, raw)
	}

	return *value, nil
}
