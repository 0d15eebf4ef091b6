package app

import (
	"context"
	"fmt"

	rediscache "github.com/yungbote/bacprep-backend/internal/clients/redis"
	"github.com/yungbote/bacprep-backend/internal/platform/llm"
	"github.com/yungbote/bacprep-backend/internal/platform/logger"
)

type Clients struct {
	Completions  llm.Provider
	SummaryCache rediscache.SummaryCache
}

func wireClients(ctx context.Context, log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	completions, err := llm.NewProvider(ctx, cfg.LLM, log)
	if err != nil {
		return Clients{}, fmt.Errorf("init completion provider: %w", err)
	}

	// Redis is optional; without it the cached summary row is the only cache.
	var cache rediscache.SummaryCache = rediscache.NoopSummaryCache{}
	if cfg.RedisAddr != "" {
		c, err := rediscache.NewSummaryCache(log, cfg.RedisAddr, cfg.RedisSummaryTTL)
		if err != nil {
			return Clients{}, fmt.Errorf("init redis summary cache: %w", err)
		}
		cache = c
	}

	return Clients{Completions: completions, SummaryCache: cache}, nil
}

func (c Clients) Close() {
	if c.SummaryCache != nil {
		_ = c.SummaryCache.Close()
	}
}
