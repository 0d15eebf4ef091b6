package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/yungbote/bacprep-backend/internal/platform/ctxutil"
)

const (
	headerTraceID   = "X-Trace-Id"
	headerRequestID = "X-Request-Id"
	// set by API Gateway when the app runs behind the Lambda entry point
	headerAmznTraceID = "X-Amzn-Trace-Id"

	maxCallerIDLen = 128
)

// AttachTraceContext assigns request and trace ids, preferring caller-supplied
// values that look safe to log and echo back.
func AttachTraceContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := callerID(c.GetHeader(headerRequestID))
		if reqID == "" {
			reqID = uuid.New().String()
		}
		traceID := ""
		if spanCtx := trace.SpanContextFromContext(c.Request.Context()); spanCtx.HasTraceID() {
			traceID = spanCtx.TraceID().String()
		}
		if traceID == "" {
			traceID = callerID(c.GetHeader(headerTraceID))
		}
		if traceID == "" {
			traceID = callerID(c.GetHeader(headerAmznTraceID))
		}
		if traceID == "" {
			traceID = uuid.New().String()
		}
		ctx := ctxutil.WithTraceData(c.Request.Context(), &ctxutil.TraceData{
			TraceID:   traceID,
			RequestID: reqID,
		})
		c.Request = c.Request.WithContext(ctx)
		c.Set("trace_id", traceID)
		c.Set("request_id", reqID)
		c.Writer.Header().Set(headerTraceID, traceID)
		c.Writer.Header().Set(headerRequestID, reqID)
		c.Next()
	}
}

// callerID returns v trimmed, or "" when it is too long or carries anything
// outside [A-Za-z0-9._:=;-].
func callerID(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || len(v) > maxCallerIDLen {
		return ""
	}
	for _, r := range v {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune("._:=;-", r):
		default:
			return ""
		}
	}
	return v
}
