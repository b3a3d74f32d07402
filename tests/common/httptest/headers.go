//go:build unit || e2e

package httptest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// PerformRequestWithHeaders sends a bodyless request carrying headers such
// as Origin or X-Forwarded-For.
func PerformRequestWithHeaders(t *testing.T, router *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertHeaderList checks that a comma separated header such as
// Access-Control-Expose-Headers names every header in want, in any case.
func AssertHeaderList(t *testing.T, w *httptest.ResponseRecorder, key string, want ...string) {
	t.Helper()

	got := make(map[string]bool)
	for _, name := range strings.Split(w.Header().Get(key), ",") {
		got[http.CanonicalHeaderKey(strings.TrimSpace(name))] = true
	}
	for _, name := range want {
		assert.True(t, got[http.CanonicalHeaderKey(name)], "%s does not list %s: %q", key, name, w.Header().Get(key))
	}
}
