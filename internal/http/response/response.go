package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/bacprep-backend/internal/platform/apierr"
)

// ErrorBody is the failure envelope shared by every endpoint.
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// RespondError writes err as an ErrorBody. Anything that is not an
// *apierr.Error is reported as a generic 500 so driver and parser messages
// never reach the client.
func RespondError(c *gin.Context, err error) {
	e := apierr.From(err)
	if e == nil {
		e = apierr.New(http.StatusInternalServerError, apierr.CodeInternal, nil)
	}
	msg := "Internal server error"
	if e.Code != apierr.CodeInternal && e.Err != nil {
		msg = e.Error()
	}
	if err != nil && e.Status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(e.Status, ErrorBody{Error: msg, Code: e.Code})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
