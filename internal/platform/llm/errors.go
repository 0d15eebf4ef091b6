package llm

import (
	"errors"
	"fmt"
)

// ErrEmptyCompletion means the API answered successfully but carried no text.
var ErrEmptyCompletion = errors.New("completion API returned no content")

// UpstreamUnavailableError covers transport failures and timeouts: the API
// never produced a response.
type UpstreamUnavailableError struct {
	Err error
}

func (e *UpstreamUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("completion API unavailable: %v", e.Err)
	}
	return "completion API unavailable"
}

func (e *UpstreamUnavailableError) Unwrap() error { return e.Err }

// UpstreamStatusError is a non-success HTTP status from the API. Body is for
// logs only.
type UpstreamStatusError struct {
	Status int
	Body   string
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("completion API returned status %d", e.Status)
}

func (e *UpstreamStatusError) HTTPStatusCode() int { return e.Status }
