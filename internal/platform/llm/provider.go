package llm

import "context"

// Provider is the boundary to an external text-completion API. One call is
// one upstream request: no retries, no streaming.
type Provider interface {
	Complete(ctx context.Context, req Request) (*Response, error)
	// Name identifies the backing API ("openai", "anthropic", ...).
	Name() string
	// ModelID is the model used when Request.Model is empty.
	ModelID() string
}

// Request is a single-turn chat completion: a system role plus one user prompt.
type Request struct {
	System      string
	Prompt      string
	Model       string
	MaxTokens   int
	Temperature float64
}

type Response struct {
	Text  string
	Model string
	Usage Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
}

func modelFor(req Request, def string) string {
	if req.Model != "" {
		return req.Model
	}
	return def
}
