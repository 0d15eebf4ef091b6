package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/bacprep-backend/internal/platform/logger"
)

// CachedSummary is the shared study guide for one (subject, chapter) pair.
type CachedSummary struct {
	SummaryID uuid.UUID `json:"summary_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// SummaryCache sits in front of the cached summary row. A miss is (nil, nil).
type SummaryCache interface {
	Get(ctx context.Context, subjectID uuid.UUID, chapter string) (*CachedSummary, error)
	Set(ctx context.Context, subjectID uuid.UUID, chapter string, s *CachedSummary) error
	Close() error
}

type summaryCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

func NewSummaryCache(log *logger.Logger, addr string, ttl time.Duration) (SummaryCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &summaryCache{
		log: log.With("client", "RedisSummaryCache"),
		rdb: rdb,
		ttl: ttl,
	}, nil
}

func (c *summaryCache) Get(ctx context.Context, subjectID uuid.UUID, chapter string) (*CachedSummary, error) {
	raw, err := c.rdb.Get(ctx, SummaryKey(subjectID, chapter)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get summary: %w", err)
	}
	var out CachedSummary
	if err := json.Unmarshal(raw, &out); err != nil {
		c.log.Warn("dropping undecodable cached summary", "subject_id", subjectID, "error", err)
		_ = c.rdb.Del(ctx, SummaryKey(subjectID, chapter)).Err()
		return nil, nil
	}
	return &out, nil
}

func (c *summaryCache) Set(ctx context.Context, subjectID uuid.UUID, chapter string, s *CachedSummary) error {
	if s == nil {
		return nil
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	// NX: the first writer wins, matching the row-level insert-if-absent.
	if err := c.rdb.SetNX(ctx, SummaryKey(subjectID, chapter), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set summary: %w", err)
	}
	return nil
}

func (c *summaryCache) Close() error {
	return c.rdb.Close()
}

// SummaryKey hashes the chapter so arbitrary titles make safe keys.
func SummaryKey(subjectID uuid.UUID, chapter string) string {
	sum := sha256.Sum256([]byte(chapter))
	return "bacprep:summary:" + subjectID.String() + ":" + hex.EncodeToString(sum[:8])
}

// NoopSummaryCache always misses. Used when REDIS_ADDR is unset.
type NoopSummaryCache struct{}

func (NoopSummaryCache) Get(context.Context, uuid.UUID, string) (*CachedSummary, error) {
	return nil, nil
}
func (NoopSummaryCache) Set(context.Context, uuid.UUID, string, *CachedSummary) error { return nil }
func (NoopSummaryCache) Close() error                                                 { return nil }
