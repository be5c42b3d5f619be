//go:build unit

package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gin-order-service/internal/handler/httperr"
	"gin-order-service/internal/handler/middleware"
	"gin-order-service/internal/pkg/config"
	"gin-order-service/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body httperr.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error.Message
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())

	r.GET("/domain", func(c *gin.Context) { _ = c.Error(errs.Wrap(errs.ErrCapacityExceeded, "reserve")) })
	r.GET("/unknown", func(c *gin.Context) { _ = c.Error(errs.New("disk on fire")) })
	r.GET("/written", func(c *gin.Context) {
		_ = c.Error(errs.ErrOrderNotFound)
		c.JSON(http.StatusTeapot, gin.H{"ok": true})
	})
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	r.GET("/clean", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	tests := []struct {
		name    string
		path    string
		status  int
		message string
	}{
		{name: "success: untouched response", path: "/clean", status: http.StatusNoContent},
		{name: "error: unwritten domain error uses the sentinel table", path: "/domain", status: http.StatusConflict, message: "Timeslot is full"},
		{name: "error: unknown error hides its cause", path: "/unknown", status: http.StatusInternalServerError, message: "Internal server error"},
		{name: "error: handler response wins", path: "/written", status: http.StatusTeapot},
		{name: "error: panic becomes 500", path: "/panic", status: http.StatusInternalServerError, message: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.status, w.Code)
			if tt.message != "" {
				assert.Equal(t, tt.message, errorMessage(t, w))
			}
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(config.CORSConfig{
		AllowOrigins:  []string{"http://shop.test"},
		AllowMethods:  []string{"GET", "POST"},
		AllowHeaders:  []string{"Origin"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        time.Hour,
	}))
	r.POST("/api/orders", func(c *gin.Context) { c.Status(http.StatusCreated) })

	t.Run("success: preflight allows the idempotency key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/orders", nil)
		req.Header.Set("Origin", "http://shop.test")
		req.Header.Set("Access-Control-Request-Method", "POST")
		req.Header.Set("Access-Control-Request-Headers", "Idempotency-Key")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Idempotency-Key")
	})

	t.Run("success: replay marker is exposed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/orders", nil)
		req.Header.Set("Origin", "http://shop.test")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "Idempotent-Replayed")
	})
}
