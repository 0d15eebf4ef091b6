package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/genai"
)

func newTestGeminiProvider(t *testing.T, handler http.HandlerFunc) *GeminiProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      "test-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  server.Client(),
		HTTPOptions: genai.HTTPOptions{BaseURL: server.URL},
	})
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	return &GeminiProvider{client: client, model: "gemini-2.0-flash"}
}

func TestGeminiProvider_HappyPath(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	p := newTestGeminiProvider(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"role":  "model",
					"parts": []map[string]any{{"text": "## Optics"}},
				},
				"finishReason": "STOP",
			}},
			"usageMetadata": map[string]any{"promptTokenCount": 12, "candidatesTokenCount": 7},
		})
	})

	resp, err := p.Complete(context.Background(), Request{
		System:      "You are an expert BAC exam tutor.",
		Prompt:      "Summarize optics.",
		MaxTokens:   2000,
		Temperature: 0.6,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "## Optics" {
		t.Fatalf("unexpected text %q", resp.Text)
	}
	if resp.Model != "gemini-2.0-flash" {
		t.Fatalf("unexpected model %q", resp.Model)
	}
	if resp.Usage.InputTokens != 12 || resp.Usage.OutputTokens != 7 {
		t.Fatalf("unexpected usage %+v", resp.Usage)
	}
	if !strings.HasSuffix(gotPath, "models/gemini-2.0-flash:generateContent") {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if _, ok := gotBody["systemInstruction"]; !ok {
		t.Fatalf("system instruction not sent: %v", gotBody)
	}
}

func TestGeminiProvider_StatusError(t *testing.T) {
	p := newTestGeminiProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": 403, "message": "API key not valid", "status": "PERMISSION_DENIED"},
		})
	})

	_, err := p.Complete(context.Background(), Request{Prompt: "x", MaxTokens: 10})
	var se *UpstreamStatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected UpstreamStatusError, got %T: %v", err, err)
	}
	if se.Status != http.StatusForbidden {
		t.Fatalf("unexpected status %d", se.Status)
	}
}

func TestGeminiProvider_EmptyCandidate(t *testing.T) {
	p := newTestGeminiProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"  "}]}}]}`))
	})

	_, err := p.Complete(context.Background(), Request{Prompt: "x"})
	if !errors.Is(err, ErrEmptyCompletion) {
		t.Fatalf("expected ErrEmptyCompletion, got %v", err)
	}
}
