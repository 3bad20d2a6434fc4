package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"basegraph.app/growthplan/common/logger"
)

const maxRequestIDLength = 128

// RequestID takes the caller's id from header, or mints a uuid, echoes it on the response
// and puts it in the request's log fields so every later log line carries it.
func RequestID(header string) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(header)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
		}
		c.Header(header, requestID)

		ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{
			RequestID: &requestID,
			Component: "growthplan.http",
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequestIDFrom returns the id set by RequestID, or "" outside that middleware.
func RequestIDFrom(c *gin.Context) string {
	if id := logger.GetLogFields(c.Request.Context()).RequestID; id != nil {
		return *id
	}
	return ""
}
