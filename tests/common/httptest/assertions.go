//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

// ErrorBody mirrors httperr.Response as seen by a client.
type ErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail map[string]any `json:"detail"`
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) ErrorBody {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	var errorResponse ErrorBody
	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))

	if expectedErrorMsg != "" {
		assert.Contains(t, errorResponse.Error.Message, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
	return errorResponse
}

// RedirectBody mirrors respond.RedirectBody as seen by a client.
type RedirectBody struct {
	RedirectTo string `json:"redirect_to"`
	Reason     string `json:"reason"`
	Message    string `json:"message"`
}

// AssertRedirect checks a 302 to location and returns the decoded body.
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) RedirectBody {
	t.Helper()

	assert.Equal(t, http.StatusFound, w.Code,
		fmt.Sprintf("Expected redirect, got %d. Response: %s", w.Code, w.Body.String()))
	assert.Equal(t, location, w.Header().Get("Location"))

	var body RedirectBody
	err := json.Unmarshal(w.Body.Bytes(), &body)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode redirect JSON: %s", w.Body.String()))
	assert.Equal(t, location, body.RedirectTo)
	return body
}
