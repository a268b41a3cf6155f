// internal/middleware/rate_limit_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/config"
)

func newPingRouter(limiter gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(limiter)
	r.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	r := newPingRouter(NewRateLimiter(rate.Every(time.Minute), 1).Middleware())

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	// Rejections use the standard response envelope
	assert.Contains(t, second.Body.String(), `"success":false`)
	assert.Contains(t, second.Body.String(), "RATE_LIMITED")
}

func TestRateLimitersFromConfig(t *testing.T) {
	limiters := NewRateLimiters(config.RateLimitConfig{
		Enabled:          true,
		GeneralPerSecond: 10,
		GeneralBurst:     1,
		AuthPerMinute:    1,
		UploadPerMinute:  1,
	})

	r := newPingRouter(limiters.Auth)

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestRateLimitersDisabled(t *testing.T) {
	limiters := NewRateLimiters(config.RateLimitConfig{Enabled: false})
	r := newPingRouter(limiters.General)

	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
