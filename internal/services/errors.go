package services

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/yungbote/bacprep-backend/internal/platform/apierr"
	"github.com/yungbote/bacprep-backend/internal/platform/llm"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// completionError maps a gateway failure onto the error taxonomy.
func completionError(err error) *apierr.Error {
	var se *llm.UpstreamStatusError
	if errors.As(err, &se) {
		return apierr.UpstreamError(se.Status)
	}
	if errors.Is(err, llm.ErrEmptyCompletion) {
		return apierr.MalformedGeneration(err)
	}
	// transport failures, timeouts and anything unrecognised
	return apierr.UpstreamUnavailable(err)
}

// validationError turns validator output into a 400 with a readable message.
func validationError(err error) *apierr.Error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return apierr.InvalidRequest(&fieldError{field: fe.Field(), tag: fe.Tag(), param: fe.Param()})
	}
	return apierr.InvalidRequest(err)
}

type fieldError struct {
	field string
	tag   string
	param string
}

func (e *fieldError) Error() string {
	switch e.tag {
	case "required":
		return e.field + " is required"
	case "oneof":
		return e.field + " must be one of: " + e.param
	case "min":
		return e.field + " must be at least " + e.param
	case "max":
		return e.field + " must be at most " + e.param
	default:
		return e.field + " is invalid (" + e.tag + ")"
	}
}
