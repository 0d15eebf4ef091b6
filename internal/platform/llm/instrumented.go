package llm

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/yungbote/bacprep-backend/internal/observability"
	"github.com/yungbote/bacprep-backend/internal/platform/logger"
)

type instrumented struct {
	inner Provider
	log   *logger.Logger
}

// WithInstrumentation wraps p with structured logging, prometheus counters and
// a trace span per call.
func WithInstrumentation(p Provider, log *logger.Logger) Provider {
	if log == nil {
		log = logger.Nop()
	}
	return &instrumented{inner: p, log: log.With("provider", p.Name())}
}

func (i *instrumented) Name() string    { return i.inner.Name() }
func (i *instrumented) ModelID() string { return i.inner.ModelID() }

func (i *instrumented) Complete(ctx context.Context, req Request) (*Response, error) {
	model := modelFor(req, i.inner.ModelID())
	ctx, span := observability.StartSpan(ctx, "llm.complete",
		attribute.String("llm.provider", i.inner.Name()),
		attribute.String("llm.model", model),
		attribute.Int("llm.max_tokens", req.MaxTokens),
	)
	defer span.End()

	start := time.Now()
	resp, err := i.inner.Complete(ctx, req)
	dur := time.Since(start)

	outcome := outcomeOf(err)
	var in, out int
	if resp != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	observability.Current().ObserveLLMRequest(i.inner.Name(), model, outcome, dur, in, out)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		fields := []interface{}{"model", model, "outcome", outcome, "duration_ms", dur.Milliseconds(), "error", err}
		var se *UpstreamStatusError
		if errors.As(err, &se) {
			fields = append(fields, "status", se.Status, "body", se.Body)
		}
		i.log.Warn("completion failed", fields...)
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("llm.input_tokens", in),
		attribute.Int("llm.output_tokens", out),
	)
	i.log.Debug("completion ok", "model", model, "duration_ms", dur.Milliseconds(), "input_tokens", in, "output_tokens", out)
	return resp, nil
}

func outcomeOf(err error) string {
	if err == nil {
		return "ok"
	}
	var se *UpstreamStatusError
	if errors.As(err, &se) {
		return "status_error"
	}
	if errors.Is(err, ErrEmptyCompletion) {
		return "empty"
	}
	return "unavailable"
}
