package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCORSPreflightIsPermissive(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	for _, path := range []string{
		"/functions/v1/generate-quiz",
		"/functions/v1/generate-summary",
		"/functions/v1/submit-quiz",
	} {
		path := path
		t.Run(path, func(t *testing.T) {
			t.Parallel()
			r := gin.New()
			r.Use(CORS())
			r.POST(path, func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodOptions, path, nil)
			req.Header.Set("Origin", "https://bacprep.example")
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			req.Header.Set("Access-Control-Request-Headers", "authorization, content-type")

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != http.StatusNoContent {
				t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusNoContent)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
				t.Fatalf("unexpected allow-origin header: got=%q", got)
			}
			allowed := strings.ToLower(rec.Header().Get("Access-Control-Allow-Headers"))
			for _, h := range []string{"authorization", "x-client-info", "apikey", "content-type"} {
				if !strings.Contains(allowed, h) {
					t.Fatalf("allow-headers %q missing %q", allowed, h)
				}
			}
		})
	}
}
