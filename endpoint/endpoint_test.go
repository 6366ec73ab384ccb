package endpoint_test

import (
	"testing"

	"github.com/andyle182810/cinemadash/endpoint"
	"github.com/stretchr/testify/require"
)

func TestCatalog_ResolvesStaticPath(t *testing.T) {
	t.Parallel()

	path, err := endpoint.Cinema().Resolve(endpoint.Movies)

	require.NoError(t, err)
	require.Equal(t, "/api/movies", path)
}

func TestCatalog_SubstitutesIDPlaceholder(t *testing.T) {
	t.Parallel()

	path, err := endpoint.Cinema().Resolve(endpoint.MovieDetails, 42)

	require.NoError(t, err)
	require.Equal(t, "/api/movies/42/details", path)
}

func TestCatalog_EscapesPathParameters(t *testing.T) {
	t.Parallel()

	path, err := endpoint.Cinema().Resolve(endpoint.Movie, "a b/c")

	require.NoError(t, err)
	require.Equal(t, "/api/movies/a%20b%2Fc", path)
}

func TestCatalog_UnknownEndpoint(t *testing.T) {
	t.Parallel()

	_, err := endpoint.Cinema().Resolve("nope")

	require.ErrorIs(t, err, endpoint.ErrUnknownEndpoint)
}

func TestCatalog_MissingPathParameter(t *testing.T) {
	t.Parallel()

	_, err := endpoint.Cinema().Resolve(endpoint.Movie)

	require.ErrorIs(t, err, endpoint.ErrMissingPathParam)
}

func TestCatalog_ExtraPathParameter(t *testing.T) {
	t.Parallel()

	_, err := endpoint.Cinema().Resolve(endpoint.Movies, 1)

	require.ErrorIs(t, err, endpoint.ErrExtraPathParam)
}

func TestCatalog_EmptyPathParameter(t *testing.T) {
	t.Parallel()

	_, err := endpoint.Cinema().Resolve(endpoint.Movie, "")

	require.ErrorIs(t, err, endpoint.ErrEmptyPathParam)
}

func TestCatalog_NilPathParameter(t *testing.T) {
	t.Parallel()

	var missing *int64

	tests := []struct {
		name string
		id   any
	}{
		{name: "nil", id: nil},
		{name: "nil pointer", id: missing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path, err := endpoint.Cinema().Resolve(endpoint.Movie, tt.id)

			require.ErrorIs(t, err, endpoint.ErrEmptyPathParam)
			require.Empty(t, path)
		})
	}
}

func TestCatalog_PointerPathParameter(t *testing.T) {
	t.Parallel()

	id := int64(7)

	path, err := endpoint.Cinema().Resolve(endpoint.MovieDetails, &id)

	require.NoError(t, err)
	require.Equal(t, "/api/movies/7/details", path)
}

func TestNewCatalog_RejectsInvalidTemplates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		templates map[string]string
	}{
		{name: "relative path", templates: map[string]string{"a": "api/a"}},
		{name: "unbalanced open", templates: map[string]string{"a": "/api/{id"}},
		{name: "unbalanced close", templates: map[string]string{"a": "/api/id}"}},
		{name: "nested", templates: map[string]string{"a": "/api/{{id}}"}},
		{name: "empty name", templates: map[string]string{"": "/api"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := endpoint.NewCatalog(tt.templates)

			require.ErrorIs(t, err, endpoint.ErrInvalidTemplate)
		})
	}
}

func TestNewCatalog_IsIsolatedFromInputMap(t *testing.T) {
	t.Parallel()

	input := map[string]string{"items": "/api/items"}

	catalog, err := endpoint.NewCatalog(input)
	require.NoError(t, err)

	input["items"] = "/api/changed"
	input["extra"] = "/api/extra"

	path, err := catalog.Resolve("items")
	require.NoError(t, err)
	require.Equal(t, "/api/items", path)
	require.False(t, catalog.Has("extra"))
}

func TestCatalog_WithReturnsIndependentCopy(t *testing.T) {
	t.Parallel()

	base := endpoint.Cinema()

	extended, err := base.With(map[string]string{"movies": "/v2/movies"})
	require.NoError(t, err)

	basePath, _ := base.Resolve(endpoint.Movies)
	extendedPath, _ := extended.Resolve(endpoint.Movies)

	require.Equal(t, "/api/movies", basePath)
	require.Equal(t, "/v2/movies", extendedPath)
	require.Equal(t, base.Len(), extended.Len())
}

func TestCatalog_NamesAreSorted(t *testing.T) {
	t.Parallel()

	catalog := endpoint.MustCatalog(map[string]string{"b": "/b", "a": "/a", "c": "/c"})

	require.Equal(t, []string{"a", "b", "c"}, catalog.Names())
}

func TestTemplate_Placeholders(t *testing.T) {
	t.Parallel()

	tmpl, ok := endpoint.Cinema().Template(endpoint.MovieProfit)

	require.True(t, ok)
	require.Equal(t, 1, tmpl.Placeholders())
	require.Equal(t, "/api/movies/{id}/profit-analysis", tmpl.String())
}
