//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
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

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d", expectedStatus, w.Code))

	var errorResponse struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))

	if expectedErrorMsg != "" {
		assert.Contains(t, errorResponse.Error.Message, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
}

// AssertErrorRedirect checks an error response that also tells the client
// where to navigate.
func AssertErrorRedirect(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg, expectedRedirect string) {
	t.Helper()

	AssertErrorResponse(t, w, expectedStatus, expectedErrorMsg)

	var body struct {
		Detail struct {
			Redirect string `json:"redirect"`
		} `json:"detail"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &body)
	assert.NoError(t, err)
	assert.Equal(t, expectedRedirect, body.Detail.Redirect)
}

// AssertNotice checks a success toast.
func AssertNotice(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg, expectedRedirect string) {
	t.Helper()

	var notice struct {
		Message  string `json:"message"`
		Redirect string `json:"redirect"`
	}
	AssertSuccessResponse(t, w, expectedStatus, &notice)
	assert.Equal(t, expectedMsg, notice.Message)
	assert.Equal(t, expectedRedirect, notice.Redirect)
}
