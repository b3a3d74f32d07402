//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"sarmiento-f5/internal/handler/middleware"
	"sarmiento-f5/internal/pkg/clock"
	"sarmiento-f5/internal/pkg/config"
	"sarmiento-f5/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(rl *middleware.RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/waitlist", rl.Limit(), func(c *gin.Context) { c.Status(http.StatusCreated) })
	return r
}

func TestRateLimiter(t *testing.T) {
	start := time.Date(2025, time.October, 3, 21, 0, 0, 0, time.UTC)
	cfg := config.RateLimitConfig{Enabled: true, RequestsPerSecond: 1, Burst: 2, IdleTTL: 10 * time.Minute}

	t.Run("burst is allowed then 429", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		router := newLimitedRouter(middleware.NewRateLimiter(cfg, clk))

		assert.Equal(t, http.StatusCreated, httptest.PerformRequest(t, router, http.MethodPost, "/waitlist", nil).Code)
		assert.Equal(t, http.StatusCreated, httptest.PerformRequest(t, router, http.MethodPost, "/waitlist", nil).Code)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/waitlist", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Demasiadas solicitudes")
		httptest.AssertHeaders(t, rec, map[string]string{"Retry-After": "1"})
	})

	t.Run("tokens refill as time passes", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		router := newLimitedRouter(middleware.NewRateLimiter(cfg, clk))

		for range 2 {
			httptest.PerformRequest(t, router, http.MethodPost, "/waitlist", nil)
		}
		clk.Add(time.Second)
		assert.Equal(t, http.StatusCreated, httptest.PerformRequest(t, router, http.MethodPost, "/waitlist", nil).Code)
	})

	t.Run("idle visitors are swept", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		rl := middleware.NewRateLimiter(cfg, clk)
		router := newLimitedRouter(rl)

		httptest.PerformRequest(t, router, http.MethodPost, "/waitlist", nil)
		assert.Equal(t, 1, rl.Visitors())

		clk.Add(11 * time.Minute)
		httptest.PerformRequest(t, router, http.MethodPost, "/waitlist", nil)
		// the old bucket was dropped and the same IP got a fresh one
		assert.Equal(t, 1, rl.Visitors())
	})
}
