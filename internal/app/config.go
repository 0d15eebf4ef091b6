package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/yungbote/bacprep-backend/internal/data/db"
	"github.com/yungbote/bacprep-backend/internal/platform/envutil"
	"github.com/yungbote/bacprep-backend/internal/platform/llm"
	"github.com/yungbote/bacprep-backend/internal/platform/logger"
	"github.com/yungbote/bacprep-backend/internal/services"
)

type Config struct {
	Port        string
	ServiceName string
	Environment string
	Version     string

	Identity   services.IdentityConfig
	DB         db.Config
	LLM        llm.Config
	Generation services.GenerationConfig

	RedisAddr       string
	RedisSummaryTTL time.Duration
}

func LoadConfig(log *logger.Logger) (Config, error) {
	cfg := Config{
		Port:        envutil.String("PORT", "8080"),
		ServiceName: envutil.String("OTEL_SERVICE_NAME", "bacprep-backend"),
		Environment: envutil.String("APP_ENV", "development"),
		Version:     envutil.String("APP_VERSION", "dev"),
		Identity: services.IdentityConfig{
			Secret:   envutil.String("JWT_SECRET", ""),
			Audience: envutil.String("JWT_AUDIENCE", "authenticated"),
			Issuer:   envutil.String("JWT_ISSUER", ""),
		},
		DB:              db.ConfigFromEnv(),
		LLM:             llm.ConfigFromEnv(),
		Generation:      services.DefaultGenerationConfig(),
		RedisAddr:       strings.TrimSpace(envutil.String("REDIS_ADDR", "")),
		RedisSummaryTTL: envutil.Duration("REDIS_SUMMARY_TTL", 7*24*time.Hour),
	}

	if path := strings.TrimSpace(envutil.String("GENERATION_CONFIG", "")); path != "" {
		gen, err := services.LoadGenerationConfig(path)
		if err != nil {
			return Config{}, fmt.Errorf("load generation config: %w", err)
		}
		cfg.Generation = gen
		log.Info("loaded generation profiles", "path", path)
	}
	return cfg, nil
}
