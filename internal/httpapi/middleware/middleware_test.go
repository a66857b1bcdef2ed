package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"booklibrary/internal/httpapi/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw)
	r.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequestID(t *testing.T) {
	r := newRouter(middleware.RequestID())

	t.Run("AssignsWhenMissing", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("EchoesWhenPresent", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "my-request")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "my-request", w.Header().Get(middleware.RequestIDHeader))
	})
}

func TestRateLimit(t *testing.T) {
	// Bucket of 2 with no refill to speak of inside the test window.
	r := newRouter(middleware.RateLimit(0.001, 2))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
