package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/yungbote/bacprep-backend/internal/platform/logger"
)

func TestMockProvider_FIFOAndEmptyQueue(t *testing.T) {
	m := NewMockProvider(MockResponse{Text: "one"}, MockResponse{Text: "two"})

	for _, want := range []string{"one", "two"} {
		resp, err := m.Complete(context.Background(), Request{Prompt: want})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != want {
			t.Fatalf("expected %q, got %q", want, resp.Text)
		}
	}

	_, err := m.Complete(context.Background(), Request{Prompt: "three"})
	var ue *UpstreamUnavailableError
	if !errors.As(err, &ue) {
		t.Fatalf("expected unavailable on empty queue, got %v", err)
	}
	if m.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", m.CallCount())
	}
	last, ok := m.LastCall()
	if !ok || last.Prompt != "three" {
		t.Fatalf("unexpected last call %+v", last)
	}
}

func TestInstrumentedPassesThroughErrors(t *testing.T) {
	m := NewMockProvider(MockResponse{Err: &UpstreamStatusError{Status: 500, Body: "boom"}})
	p := WithInstrumentation(m, logger.Nop())

	_, err := p.Complete(context.Background(), Request{Prompt: "x"})
	var se *UpstreamStatusError
	if !errors.As(err, &se) || se.Status != 500 {
		t.Fatalf("expected status error to pass through, got %v", err)
	}
	if p.Name() != "mock" || p.ModelID() != "mock" {
		t.Fatalf("wrapper should report inner identity")
	}
	if outcomeOf(err) != "status_error" || outcomeOf(ErrEmptyCompletion) != "empty" || outcomeOf(nil) != "ok" {
		t.Fatalf("unexpected outcome mapping")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Fatalf("openai without key should fail validation")
	}
	cfg.OpenAI.APIKey = "sk-test"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.Provider = "mock"
	cfg.OpenAI.APIKey = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("mock needs no key: %v", err)
	}
	cfg.Provider = "nope"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("unknown provider should fail")
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "k")
	t.Setenv("LLM_TIMEOUT", "15s")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" || cfg.Anthropic.APIKey != "k" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Timeout.Seconds() != 15 {
		t.Fatalf("unexpected timeout %v", cfg.Timeout)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Fatalf("default model lost: %q", cfg.OpenAI.Model)
	}
}

func TestNewProviderMock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	p, err := NewProvider(context.Background(), cfg, logger.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != "mock" {
		t.Fatalf("unexpected provider %q", p.Name())
	}
}
