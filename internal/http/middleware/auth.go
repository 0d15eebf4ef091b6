package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/bacprep-backend/internal/http/response"
	"github.com/yungbote/bacprep-backend/internal/platform/apierr"
	"github.com/yungbote/bacprep-backend/internal/platform/ctxutil"
	"github.com/yungbote/bacprep-backend/internal/platform/logger"
	"github.com/yungbote/bacprep-backend/internal/services"
)

const studentKey = "student"

type AuthMiddleware struct {
	log      *logger.Logger
	identity services.IdentityService
}

func NewAuthMiddleware(log *logger.Logger, identity services.IdentityService) *AuthMiddleware {
	return &AuthMiddleware{log: log.With("middleware", "AuthMiddleware"), identity: identity}
}

// RequireIdentity verifies the bearer token only. Used by onboarding, where
// no student profile exists yet.
func (am *AuthMiddleware) RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := am.verify(c); !ok {
			return
		}
		c.Next()
	}
}

// RequireStudent verifies the bearer token and resolves the caller's student
// profile. Token failures abort before any database access.
func (am *AuthMiddleware) RequireStudent() gin.HandlerFunc {
	return func(c *gin.Context) {
		rd, ok := am.verify(c)
		if !ok {
			return
		}
		student, err := am.identity.ResolveStudent(c.Request.Context(), rd.UserID)
		if err != nil {
			response.RespondError(c, err)
			return
		}
		rd.StudentID = student.ID
		c.Set(studentKey, student)
		c.Next()
	}
}

func (am *AuthMiddleware) verify(c *gin.Context) (*ctxutil.RequestData, bool) {
	token, ok := bearerToken(c.GetHeader("Authorization"))
	if !ok {
		response.RespondError(c, apierr.Unauthenticated("No authorization header"))
		return nil, false
	}
	userID, err := am.identity.VerifyToken(token)
	if err != nil {
		response.RespondError(c, err)
		return nil, false
	}

	ctx := c.Request.Context()
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil {
		rd = &ctxutil.RequestData{}
		ctx = ctxutil.WithRequestData(ctx, rd)
		c.Request = c.Request.WithContext(ctx)
	}
	rd.UserID = userID
	return rd, true
}

func bearerToken(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if len(header) <= 7 || !strings.EqualFold(header[:7], "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(header[7:])
	return token, token != ""
}
