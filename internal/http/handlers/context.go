package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/yungbote/bacprep-backend/internal/domain"
	"github.com/yungbote/bacprep-backend/internal/platform/apierr"
	"github.com/yungbote/bacprep-backend/internal/platform/ctxutil"
)

// currentStudent returns the profile resolved by AuthMiddleware.RequireStudent.
func currentStudent(c *gin.Context) (*types.Student, error) {
	if v, ok := c.Get("student"); ok {
		if s, ok := v.(*types.Student); ok && s != nil {
			return s, nil
		}
	}
	return nil, apierr.Unauthenticated("Invalid token")
}

func currentUserID(c *gin.Context) (uuid.UUID, error) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		return uuid.Nil, apierr.Unauthenticated("Invalid token")
	}
	return rd.UserID, nil
}

func pathID(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apierr.InvalidRequest(err)
	}
	return id, nil
}

func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return apierr.InvalidRequest(err)
	}
	return nil
}
