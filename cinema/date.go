package cinema

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

const DateLayout = "2006-01-02"

// Date is a calendar day as the backend exchanges it ("2006-01-02"). Longer
// timestamps are accepted on input and truncated to the day.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(raw string) (Date, error) {
	if len(raw) > len(DateLayout) {
		raw = raw[:len(DateLayout)]
	}

	parsed, err := time.Parse(DateLayout, raw)
	if err != nil {
		return Date{}, fmt.Errorf("cinema: invalid date %q: %w", raw, err)
	}

	return Date{Time: parsed}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}

	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return []byte(strconv.Quote(d.String())), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}

		return nil
	}

	raw, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("cinema: date must be a JSON string: %w", err)
	}

	if raw == "" {
		*d = Date{}

		return nil
	}

	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Date{}

		return nil
	}

	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}
