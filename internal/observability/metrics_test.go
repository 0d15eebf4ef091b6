package observability

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestMetricsHandlerExposesObservations(t *testing.T) {
	m := NewMetrics()
	m.ObserveAPI("POST", "/functions/v1/submit-quiz", "200", 20*time.Millisecond)
	m.ObserveLLMRequest("openai", "gpt-4o-mini", "ok", time.Second, 120, 800)
	m.ObserveSummaryLookup("db", true)
	m.ObserveQuizGraded(80)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	body := string(raw)

	for _, want := range []string{
		`bacprep_api_requests_total{method="POST",route="/functions/v1/submit-quiz",status="200"} 1`,
		`bacprep_llm_tokens_total{direction="output",model="gpt-4o-mini",provider="openai"} 800`,
		`bacprep_summary_cache_lookups_total{layer="db",result="hit"} 1`,
		`bacprep_quizzes_graded_total 1`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("missing %q in scrape output", want)
		}
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	m.ObserveAPI("GET", "/", "200", time.Millisecond)
	m.ObserveLLMRequest("mock", "mock", "ok", time.Millisecond, 1, 1)
	m.ObserveSummaryLookup("redis", false)
	m.ObserveQuizGraded(0)
	m.ApiInflightInc()
	m.ApiInflightDec()
}
