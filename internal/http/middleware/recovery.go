package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into a 500 whose body names the request id, so a caller's
// report can be matched to the logged stack.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}

			slog.ErrorContext(c.Request.Context(), "handler panicked",
				"panic", fmt.Sprint(recovered),
				"route", c.FullPath(),
				"stack", string(debug.Stack()),
			)

			body := gin.H{"error": "internal server error"}
			if id := RequestIDFrom(c); id != "" {
				body["request_id"] = id
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, body)
		}()
		c.Next()
	}
}
