// Package query builds the query string of an outbound request.
//
// Params keeps insertion order and never holds a key whose value is absent:
// nil, a nil pointer, the empty string, an invalid decimal.NullDecimal or a zero
// time.Time are all dropped at Set time, so an unset filter never reaches the
// wire as "field=" or "field=null".
package query

import (
	"fmt"
	"maps"
	"math"
	"net/url"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

type Params struct {
	keys   []string
	values map[string]string
}

func New() *Params {
	return &Params{
		keys:   nil,
		values: make(map[string]string),
	}
}

// FromMap builds Params from m. Keys are added in sorted order so the encoded
// form is deterministic.
func FromMap(m map[string]any) *Params {
	params := New()

	for _, key := range slices.Sorted(maps.Keys(m)) {
		params.Set(key, m[key])
	}

	return params
}

// Set stores value under key. Absent values remove any previous entry for key.
// Re-setting an existing key keeps its original position.
func (p *Params) Set(key string, value any) *Params {
	if p.values == nil {
		p.values = make(map[string]string)
	}

	formatted, ok := Format(value)
	if !ok || key == "" {
		p.Del(key)

		return p
	}

	if _, exists := p.values[key]; !exists {
		p.keys = append(p.keys, key)
	}

	p.values[key] = formatted

	return p
}

func (p *Params) Del(key string) {
	if _, exists := p.values[key]; !exists {
		return
	}

	delete(p.values, key)
	p.keys = slices.DeleteFunc(p.keys, func(k string) bool { return k == key })
}

func (p *Params) Get(key string) (string, bool) {
	if p == nil {
		return "", false
	}

	value, ok := p.values[key]

	return value, ok
}

func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}

	return slices.Clone(p.keys)
}

func (p *Params) Len() int {
	if p == nil {
		return 0
	}

	return len(p.keys)
}

// Merge copies every entry of other into p, in other's order.
func (p *Params) Merge(other *Params) *Params {
	if other == nil {
		return p
	}

	for _, key := range other.keys {
		p.Set(key, other.values[key])
	}

	return p
}

// Encode renders the params as a query string in insertion order, without the
// leading '?'.
func (p *Params) Encode() string {
	if p.Len() == 0 {
		return ""
	}

	var builder strings.Builder

	for idx, key := range p.keys {
		if idx > 0 {
			builder.WriteByte('&')
		}

		builder.WriteString(url.QueryEscape(key))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(p.values[key]))
	}

	return builder.String()
}

func (p *Params) Values() url.Values {
	values := url.Values{}

	if p == nil {
		return values
	}

	for _, key := range p.keys {
		values.Set(key, p.values[key])
	}

	return values
}

// Format renders a scalar the way it is sent on the wire. ok is false for
// absent values.
//
//nolint:cyclop
func Format(value any) (string, bool) {
	switch val := value.(type) {
	case nil:
		return "", false
	case string:
		return val, val != ""
	case bool:
		return strconv.FormatBool(val), true
	case int:
		return strconv.Itoa(val), true
	case int32:
		return strconv.FormatInt(int64(val), 10), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case uint:
		return strconv.FormatUint(uint64(val), 10), true
	case uint64:
		return strconv.FormatUint(val, 10), true
	case float32:
		return formatFloat(float64(val), 32)
	case float64:
		return formatFloat(val, 64)
	case decimal.Decimal:
		return val.String(), true
	case decimal.NullDecimal:
		if !val.Valid {
			return "", false
		}

		return val.Decimal.String(), true
	case time.Time:
		if val.IsZero() {
			return "", false
		}

		return val.Format(DateLayout), true
	case *time.Time:
		if val == nil {
			return "", false
		}

		return Format(*val)
	case *decimal.NullDecimal:
		if val == nil {
			return "", false
		}

		return Format(*val)
	case fmt.Stringer:
		if isNilPointer(value) {
			return "", false
		}

		return Format(val.String())
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", false
		}

		return Format(rv.Elem().Interface())
	}

	formatted := fmt.Sprint(value)

	return formatted, formatted != ""
}

func formatFloat(val float64, bitSize int) (string, bool) {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return "", false
	}

	return strconv.FormatFloat(val, 'f', -1, bitSize), true
}

func isNilPointer(value any) bool {
	rv := reflect.ValueOf(value)

	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
