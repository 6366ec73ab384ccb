package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertJSONResponse(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()

	require.Contains(t, rec.Header().Get("Content-Type"), "application/json",
		"Response Content-Type should be application/json")

	err := json.Unmarshal(rec.Body.Bytes(), target)
	require.NoError(t, err, "Response body should be valid JSON")
}

func AssertStatusCode(t *testing.T, rec *httptest.ResponseRecorder, expectedStatus int) {
	t.Helper()
	assert.Equal(t, expectedStatus, rec.Code, "Response status code mismatch")
}

func AssertHeaderExists(t *testing.T, rec *httptest.ResponseRecorder, header string) {
	t.Helper()
	assert.NotEmpty(t, rec.Header().Get(header), "Header %s should exist", header)
}

func AssertResponseContains(t *testing.T, rec *httptest.ResponseRecorder, substring string) {
	t.Helper()
	assert.Contains(t, rec.Body.String(), substring, "Response body should contain substring")
}

// AssertErrorResponse checks the status and the {"message": ...} body the
// gateway's error handler writes.
func AssertErrorResponse(t *testing.T, rec *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	t.Helper()

	AssertStatusCode(t, rec, expectedStatus)

	var body struct {
		Message string `json:"message"`
	}

	AssertJSONResponse(t, rec, &body)
	assert.Equal(t, expectedMessage, body.Message)
}

func AssertSuccessResponse(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	assert.GreaterOrEqual(t, rec.Code, http.StatusOK, "Response should be successful")
	assert.Less(t, rec.Code, http.StatusMultipleChoices, "Response should be successful")
}
