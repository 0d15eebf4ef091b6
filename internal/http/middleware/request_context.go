package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/bacprep-backend/internal/platform/ctxutil"
)

// AttachRequestContext installs an empty RequestData that the auth middleware
// fills in, so outer middleware can read the caller after c.Next().
func AttachRequestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := ctxutil.WithRequestData(c.Request.Context(), &ctxutil.RequestData{})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
