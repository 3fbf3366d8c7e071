package middleware

import (
	"log/slog"
	"net/http"

	"nagoyameshi/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last public error when a handler aborted without writing a body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if c.Writer.Written() {
			return
		}

		if last := c.Errors.ByType(gin.ErrorTypePublic).Last(); last != nil {
			if resp, ok := last.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Writer.WriteHeaderNow()
			return
		}
		writeInternal(c)
	}
}

// Recovery turns a panic into the same 500 body every other failure uses.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("recovered from panic", "error", recovered, "request_id", GetRequestID(c), "path", c.Request.URL.Path)
		writeInternal(c)
		c.Abort()
	})
}

func writeInternal(c *gin.Context) {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	c.JSON(resp.Status, resp)
}
