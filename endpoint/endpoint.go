// Package endpoint holds the immutable catalog of backend resource paths.
//
// A Template is a path with zero or more "{name}" placeholders. Placeholders are
// substituted positionally by Resolve, so "/api/movies/{id}/details" expanded
// with 7 yields "/api/movies/7/details".
package endpoint

import (
	"errors"
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/andyle182810/cinemadash/query"
)

var (
	ErrUnknownEndpoint  = errors.New("endpoint: unknown endpoint")
	ErrMissingPathParam = errors.New("endpoint: missing path parameter")
	ErrExtraPathParam   = errors.New("endpoint: too many path parameters")
	ErrInvalidTemplate  = errors.New("endpoint: invalid template")
	ErrEmptyPathParam   = errors.New("endpoint: empty path parameter")
)

type Template string

type Catalog struct {
	templates map[string]Template
}

// NewCatalog copies templates into a new Catalog. Later changes to the input map
// are not observed by the catalog.
func NewCatalog(templates map[string]string) (Catalog, error) {
	copied := make(map[string]Template, len(templates))

	for name, raw := range templates {
		if name == "" {
			return Catalog{}, fmt.Errorf("%w: empty name", ErrInvalidTemplate)
		}

		tmpl := Template(raw)
		if err := tmpl.validate(); err != nil {
			return Catalog{}, fmt.Errorf("%w: %s", err, name)
		}

		copied[name] = tmpl
	}

	return Catalog{templates: copied}, nil
}

func MustCatalog(templates map[string]string) Catalog {
	catalog, err := NewCatalog(templates)
	if err != nil {
		panic(err)
	}

	return catalog
}

func (c Catalog) Template(name string) (Template, bool) {
	tmpl, ok := c.templates[name]

	return tmpl, ok
}

func (c Catalog) Has(name string) bool {
	_, ok := c.templates[name]

	return ok
}

func (c Catalog) Names() []string {
	return slices.Sorted(maps.Keys(c.templates))
}

func (c Catalog) Len() int {
	return len(c.templates)
}

// Resolve looks up name and substitutes ids into its placeholders in order.
func (c Catalog) Resolve(name string, ids ...any) (string, error) {
	tmpl, ok := c.templates[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEndpoint, name)
	}

	return tmpl.Expand(ids...)
}

// With returns a copy of the catalog with extra or replaced templates.
func (c Catalog) With(templates map[string]string) (Catalog, error) {
	merged := make(map[string]string, len(c.templates)+len(templates))

	for name, tmpl := range c.templates {
		merged[name] = string(tmpl)
	}

	maps.Copy(merged, templates)

	return NewCatalog(merged)
}

func (t Template) Placeholders() int {
	return strings.Count(string(t), "{")
}

func (t Template) Expand(ids ...any) (string, error) {
	want := t.Placeholders()

	switch {
	case len(ids) < want:
		return "", fmt.Errorf("%w: %s needs %d, got %d", ErrMissingPathParam, t, want, len(ids))
	case len(ids) > want:
		return "", fmt.Errorf("%w: %s needs %d, got %d", ErrExtraPathParam, t, want, len(ids))
	}

	var builder strings.Builder

	rest := string(t)

	for _, id := range ids {
		start := strings.IndexByte(rest, '{')
		end := strings.IndexByte(rest, '}')

		value, ok := query.Format(id)
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrEmptyPathParam, t)
		}

		builder.WriteString(rest[:start])
		builder.WriteString(url.PathEscape(value))

		rest = rest[end+1:]
	}

	builder.WriteString(rest)

	return builder.String(), nil
}

func (t Template) String() string {
	return string(t)
}

func (t Template) validate() error {
	raw := string(t)
	if !strings.HasPrefix(raw, "/") {
		return fmt.Errorf("%w: must start with '/'", ErrInvalidTemplate)
	}

	depth := 0

	for _, r := range raw {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
		}

		if depth < 0 || depth > 1 {
			return fmt.Errorf("%w: unbalanced braces in %s", ErrInvalidTemplate, raw)
		}
	}

	if depth != 0 {
		return fmt.Errorf("%w: unbalanced braces in %s", ErrInvalidTemplate, raw)
	}

	return nil
}
