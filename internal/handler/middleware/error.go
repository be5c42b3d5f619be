package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"gin-order-service/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors a handler pushed with c.Error but never wrote.
// Public errors carry their httperr.Response; anything else goes through the
// sentinel table so domain errors still get their status.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		last := c.Errors.Last()
		if resp, ok := last.Meta.(httperr.Response); ok && last.IsType(gin.ErrorTypePublic) {
			c.JSON(resp.Status, resp)
			return
		}

		status, msg := httperr.StatusOf(last.Err)
		resp := httperr.Response{Status: status}
		resp.Error.Message = msg
		c.JSON(status, resp)
	}
}

// CustomRecovery turns a panic into a 500 and logs the stack with the request id.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			slog.Error("recovered from panic",
				"error", rec,
				"request_id", GetRequestID(c),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"stack", string(debug.Stack()))

			resp := httperr.Response{Status: http.StatusInternalServerError}
			resp.Error.Message = "Internal server error"
			c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
		}()
		c.Next()
	}
}
