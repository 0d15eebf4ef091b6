package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/bacprep-backend/internal/observability"
)

// unobserved paths are scraped or polled by infrastructure, not students.
var unobserved = map[string]bool{
	"/metrics":     true,
	"/healthcheck": true,
}

// Metrics records per-route request counts and latency. Unmatched paths share
// one label so probes for random URLs cannot grow the series count.
func Metrics(m *observability.Metrics) gin.HandlerFunc {
	if m == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		if unobserved[c.Request.URL.Path] {
			c.Next()
			return
		}
		start := time.Now()
		m.ApiInflightInc()
		defer m.ApiInflightDec()

		c.Next()

		route := c.FullPath()
		method := c.Request.Method
		switch {
		case method == http.MethodOptions:
			route = "preflight"
		case route == "":
			route = "unmatched"
		}
		if !knownMethod(method) {
			method = "OTHER"
		}
		m.ObserveAPI(method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}

func knownMethod(m string) bool {
	switch m {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
		http.MethodDelete, http.MethodOptions, http.MethodHead:
		return true
	}
	return false
}
