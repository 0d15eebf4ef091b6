package redis

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/bacprep-backend/internal/platform/logger"
)

func TestSummaryKeyIsStablePerChapter(t *testing.T) {
	id := uuid.MustParse("9b2f7a0e-4a7d-4d7c-9f53-3b1f2f5b8f10")
	a := SummaryKey(id, "Functions")
	b := SummaryKey(id, "Functions")
	c := SummaryKey(id, "Limits and continuity")
	if a != b {
		t.Fatalf("same chapter should map to the same key")
	}
	if a == c {
		t.Fatalf("different chapters should not collide")
	}
	if !strings.HasPrefix(a, "bacprep:summary:"+id.String()+":") {
		t.Fatalf("unexpected key %q", a)
	}
}

func TestNoopSummaryCacheAlwaysMisses(t *testing.T) {
	var c SummaryCache = NoopSummaryCache{}
	id := uuid.New()
	if err := c.Set(context.Background(), id, "x", &CachedSummary{Content: "y"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := c.Get(context.Background(), id, "x")
	if err != nil || got != nil {
		t.Fatalf("expected miss, got %+v err=%v", got, err)
	}
}

func TestNewSummaryCacheRequiresAddr(t *testing.T) {
	if _, err := NewSummaryCache(logger.Nop(), "", time.Hour); err == nil {
		t.Fatalf("expected error for empty addr")
	}
	if _, err := NewSummaryCache(nil, "localhost:6379", time.Hour); err == nil {
		t.Fatalf("expected error for nil logger")
	}
}

// Runs only against a live redis (REDIS_TEST_ADDR).
func TestSummaryCacheRoundTripLive(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	c, err := NewSummaryCache(logger.Nop(), addr, time.Minute)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	subject := uuid.New()
	first := &CachedSummary{SummaryID: uuid.New(), Content: "first", CreatedAt: time.Now().UTC()}
	second := &CachedSummary{SummaryID: uuid.New(), Content: "second", CreatedAt: time.Now().UTC()}

	if err := c.Set(ctx, subject, "Functions", first); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := c.Set(ctx, subject, "Functions", second); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := c.Get(ctx, subject, "Functions")
	if err != nil || got == nil {
		t.Fatalf("get: %+v %v", got, err)
	}
	if got.Content != "first" || got.SummaryID != first.SummaryID {
		t.Fatalf("first writer should win, got %+v", got)
	}
}
