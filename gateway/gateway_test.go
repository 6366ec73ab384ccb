package gateway_test

import (
	"net/http"
	"testing"

	"github.com/andyle182810/cinemadash/cinema"
	"github.com/andyle182810/cinemadash/dashboard"
	"github.com/andyle182810/cinemadash/gateway"
	"github.com/andyle182810/cinemadash/httpclient"
	"github.com/andyle182810/cinemadash/httpserver"
	"github.com/andyle182810/cinemadash/middleware"
	"github.com/andyle182810/cinemadash/testutil"
	"github.com/labstack/echo/v5"
	echomiddleware "github.com/labstack/echo/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const (
	actorsBody = `[
		{"actor_id":1,"name":"Aamir Khan","gender":"Male"},
		{"actor_id":2,"name":"Alia Bhatt","gender":"Female"},
		{"actor_id":3,"name":"Amitabh Bachchan","gender":"Male"}
	]`
	crewBody = `[
		{"crew_id":1,"name":"S. S. Rajamouli","role":"Director"},
		{"crew_id":2,"name":"A. R. Rahman","role":"Music Director"},
		{"crew_id":3,"name":"Rajiv Menon","role":"Cinematographer"}
	]`
)

func newGateway(t *testing.T, backend *testutil.Backend) *echo.Echo {
	t.Helper()

	client := cinema.Dial(backend.URL(),
		httpclient.WithLogger(zerolog.Nop()),
		httpclient.WithRequestIDKey(middleware.RequestIDKey),
	)

	e := testutil.NewEcho()
	handler := gateway.New(client, dashboard.New(client, dashboard.WithLogger(zerolog.Nop())))
	handler.Register(e.Group(""), echomiddleware.DefaultSkipper)

	return e
}

func TestGateway_Health(t *testing.T) {
	t.Parallel()

	rec := testutil.Serve(t, newGateway(t, testutil.NewBackend(t)), http.MethodGet, "/health", nil)

	testutil.AssertSuccessResponse(t, rec)

	var body httpserver.APIResponse[gateway.HealthCheckResponse]
	testutil.AssertJSONResponse(t, rec, &body)
	require.Equal(t, "healthy", body.Data.Status)
}

func TestGateway_ListMoviesForwardsFilters(t *testing.T) {
	t.Parallel()

	backend := testutil.NewBackend(t).
		JSON(http.MethodGet, "/api/movies", http.StatusOK, `[{"movie_id":2,"title":"RRR","language_id":2}]`)

	rec := testutil.Serve(t, newGateway(t, backend), http.MethodGet,
		"/v1/movies?title=RRR&language_id=2&producer_id=abc&limit=500", nil)

	testutil.AssertStatusCode(t, rec, http.StatusOK)
	testutil.AssertHeaderExists(t, rec, middleware.HeaderXRequestID)

	var body httpserver.APIResponse[[]cinema.Movie]
	testutil.AssertJSONResponse(t, rec, &body)

	require.Len(t, body.Data, 1)
	require.Equal(t, "RRR", body.Data[0].Title)
	require.Equal(t, &httpserver.Pagination{Page: 1, Skip: 0, Limit: 500, Count: 1}, body.Pagination)
	require.Equal(t, "title=RRR&language_id=2&limit=500",
		backend.LastRequest(t, http.MethodGet, "/api/movies").RawQuery)
}

func TestGateway_ListMoviesLeavesWindowToBackend(t *testing.T) {
	t.Parallel()

	backend := testutil.NewBackend(t).
		JSON(http.MethodGet, "/api/movies", http.StatusOK, `[{"movie_id":1,"title":"Lagaan"},{"movie_id":2,"title":"RRR"}]`)

	rec := testutil.Serve(t, newGateway(t, backend), http.MethodGet, "/v1/movies", nil)

	testutil.AssertStatusCode(t, rec, http.StatusOK)

	var body httpserver.APIResponse[[]cinema.Movie]
	testutil.AssertJSONResponse(t, rec, &body)

	require.Len(t, body.Data, 2)
	require.Equal(t, &httpserver.Pagination{Page: 1, Skip: 0, Limit: 0, Count: 2}, body.Pagination)
	require.Empty(t, backend.LastRequest(t, http.MethodGet, "/api/movies").RawQuery)
}

func TestGateway_PropagatesRequestID(t *testing.T) {
	t.Parallel()

	const requestID = "3bf74527-8097-4217-8485-ffe05d16f82e"

	backend := testutil.NewBackend(t).
		JSON(http.MethodGet, "/api/movies", http.StatusOK, `[]`)

	rec := testutil.Serve(t, newGateway(t, backend), http.MethodGet, "/v1/movies",
		map[string]string{middleware.HeaderXRequestID: requestID})

	testutil.AssertStatusCode(t, rec, http.StatusOK)

	var body httpserver.APIResponse[[]cinema.Movie]
	testutil.AssertJSONResponse(t, rec, &body)

	require.Equal(t, requestID, body.RequestID)
	require.NotNil(t, body.Data)
	require.Equal(t, requestID, backend.LastRequest(t, http.MethodGet, "/api/movies").RequestID)
}

func TestGateway_BackendStatusPassesThrough(t *testing.T) {
	t.Parallel()

	backend := testutil.NewBackend(t).
		JSON(http.MethodGet, "/api/movies", http.StatusUnprocessableEntity, `{"detail":"limit must be positive"}`)

	rec := testutil.Serve(t, newGateway(t, backend), http.MethodGet, "/v1/movies", nil)

	testutil.AssertErrorResponse(t, rec, http.StatusUnprocessableEntity, "limit must be positive")
}

func TestGateway_MovieOverview(t *testing.T) {
	t.Parallel()

	backend := testutil.NewBackend(t).
		JSON(http.MethodGet, "/api/movies/1/details", http.StatusOK,
			`{"movie":{"movie_id":1,"title":"Lagaan","budget":"250000000"},"cast":[],"crew":[]}`).
		JSON(http.MethodGet, "/api/movies/1/profit-analysis", http.StatusOK,
			`{"movie_id":1,"title":"Lagaan","total_collection":"650000000"}`)

	rec := testutil.Serve(t, newGateway(t, backend), http.MethodGet, "/v1/movies/1/overview", nil)

	testutil.AssertStatusCode(t, rec, http.StatusOK)

	var body httpserver.APIResponse[dashboard.MovieOverview]
	testutil.AssertJSONResponse(t, rec, &body)

	require.Equal(t, "Lagaan", body.Data.Details.Movie.Title)
	require.Equal(t, "160", body.Data.ProfitPercentage.String())
	require.Equal(t, cinema.TierHit, body.Data.Tier)
}

func TestGateway_MovieOverviewRejectsBadID(t *testing.T) {
	t.Parallel()

	backend := testutil.NewBackend(t)

	rec := testutil.Serve(t, newGateway(t, backend), http.MethodGet, "/v1/movies/lagaan/overview", nil)

	testutil.AssertStatusCode(t, rec, http.StatusBadRequest)
	testutil.AssertResponseContains(t, rec, "Invalid movie id")
	require.Empty(t, backend.Requests())
}

func TestGateway_MovieOverviewNotFound(t *testing.T) {
	t.Parallel()

	rec := testutil.Serve(t, newGateway(t, testutil.NewBackend(t)), http.MethodGet, "/v1/movies/9/overview", nil)

	testutil.AssertStatusCode(t, rec, http.StatusNotFound)
	testutil.AssertResponseContains(t, rec, "Not Found")
}

func TestGateway_TopMoviesDefaultsLimit(t *testing.T) {
	t.Parallel()

	backend := testutil.NewBackend(t).
		JSON(http.MethodGet, "/api/analytics/top-movies", http.StatusOK,
			`[{"title":"RRR","total_collection":"12000000000"}]`)

	rec := testutil.Serve(t, newGateway(t, backend), http.MethodGet, "/v1/analytics/top-movies", nil)

	testutil.AssertStatusCode(t, rec, http.StatusOK)

	var body httpserver.APIResponse[[]cinema.TopMovie]
	testutil.AssertJSONResponse(t, rec, &body)

	require.Len(t, body.Data, 1)
	require.Equal(t, "RRR", body.Data[0].Title)
	require.Equal(t, "limit=10", backend.LastRequest(t, http.MethodGet, "/api/analytics/top-movies").RawQuery)
	require.Zero(t, backend.Count(http.MethodGet, "/api/analytics/profit-analysis"))
}

func TestGateway_AnalyticsLimitValidated(t *testing.T) {
	t.Parallel()

	backend := testutil.NewBackend(t)

	rec := testutil.Serve(t, newGateway(t, backend), http.MethodGet, "/v1/analytics/profit-analysis?limit=101", nil)

	testutil.AssertErrorResponse(t, rec, http.StatusBadRequest, "limit must be at most 100")
	require.Empty(t, backend.Requests())
}

func TestGateway_ListActorsFiltersLocally(t *testing.T) {
	t.Parallel()

	backend := testutil.NewBackend(t).
		JSON(http.MethodGet, "/api/actors", http.StatusOK, actorsBody)

	tests := []struct {
		name     string
		target   string
		expected []string
	}{
		{name: "no filter", target: "/v1/actors", expected: []string{"Aamir Khan", "Alia Bhatt", "Amitabh Bachchan"}},
		{name: "name is case insensitive", target: "/v1/actors?name=KHAN", expected: []string{"Aamir Khan"}},
		{name: "gender", target: "/v1/actors?gender=Female", expected: []string{"Alia Bhatt"}},
		{name: "unknown gender ignored", target: "/v1/actors?name=am&gender=robot", expected: []string{"Aamir Khan", "Amitabh Bachchan"}},
		{name: "no match", target: "/v1/actors?name=zzz", expected: []string{}},
	}

	e := newGateway(t, backend)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := testutil.Serve(t, e, http.MethodGet, tt.target, nil)

			testutil.AssertStatusCode(t, rec, http.StatusOK)

			var body httpserver.APIResponse[[]cinema.Actor]
			testutil.AssertJSONResponse(t, rec, &body)

			names := make([]string, 0, len(body.Data))
			for _, actor := range body.Data {
				names = append(names, actor.Name)
			}

			require.Equal(t, tt.expected, names)
		})
	}
}

func TestGateway_ListCrewFiltersByRole(t *testing.T) {
	t.Parallel()

	backend := testutil.NewBackend(t).
		JSON(http.MethodGet, "/api/crew", http.StatusOK, crewBody)

	rec := testutil.Serve(t, newGateway(t, backend), http.MethodGet, "/v1/crew?role=Music+Director&name=rahman", nil)

	testutil.AssertStatusCode(t, rec, http.StatusOK)

	var body httpserver.APIResponse[[]cinema.CrewMember]
	testutil.AssertJSONResponse(t, rec, &body)

	require.Len(t, body.Data, 1)
	require.Equal(t, cinema.CrewMusicDirector, body.Data[0].Role)
	require.Empty(t, backend.LastRequest(t, http.MethodGet, "/api/crew").RawQuery)
}

func TestGateway_Dashboard(t *testing.T) {
	t.Parallel()

	backend := testutil.NewBackend(t).
		JSON(http.MethodGet, "/api/movies", http.StatusOK, `[{"movie_id":1,"title":"Lagaan","language_id":1,"imdb_rating":8.1}]`).
		JSON(http.MethodGet, "/api/producers", http.StatusOK, `[]`).
		JSON(http.MethodGet, "/api/box-office", http.StatusOK, `[{"box_id":1,"movie_id":1,"total_collection":"650000000"}]`).
		JSON(http.MethodGet, "/api/languages", http.StatusOK, `[{"language_id":1,"language_name":"Hindi"}]`).
		JSON(http.MethodGet, "/api/analytics/top-movies", http.StatusOK, `[]`).
		JSON(http.MethodGet, "/api/analytics/profit-analysis", http.StatusOK, `[]`)

	rec := testutil.Serve(t, newGateway(t, backend), http.MethodGet, "/v1/dashboard?limit=3", nil)

	testutil.AssertStatusCode(t, rec, http.StatusOK)

	var body httpserver.APIResponse[dashboard.Snapshot]
	testutil.AssertJSONResponse(t, rec, &body)

	require.Equal(t, 1, body.Data.Statistics.TotalMovies)
	require.Equal(t, "₹65.00 Cr", body.Data.Statistics.CollectionLabel)
	require.Len(t, body.Data.Languages, 1)
	require.Equal(t, "Hindi", body.Data.Languages[0].LanguageName)
	require.Equal(t, "limit=3", backend.LastRequest(t, http.MethodGet, "/api/analytics/profit-analysis").RawQuery)
}

func TestGateway_StatisticsFailureKeepsFirstStatus(t *testing.T) {
	t.Parallel()

	backend := testutil.NewBackend(t).
		JSON(http.MethodGet, "/api/movies", http.StatusOK, `[]`).
		JSON(http.MethodGet, "/api/producers", http.StatusServiceUnavailable, `{"detail":"db down"}`).
		JSON(http.MethodGet, "/api/box-office", http.StatusOK, `[]`)

	rec := testutil.Serve(t, newGateway(t, backend), http.MethodGet, "/v1/dashboard/statistics", nil)

	testutil.AssertStatusCode(t, rec, http.StatusServiceUnavailable)
	testutil.AssertResponseContains(t, rec, "db down")
}
