package llm

import (
	"fmt"
	"time"

	"github.com/yungbote/bacprep-backend/internal/platform/envutil"
)

// Config selects and configures the completion provider.
type Config struct {
	// Provider is one of "openai", "anthropic", "gemini", "mock".
	Provider string
	// Timeout bounds a single completion call.
	Timeout time.Duration

	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig
	Gemini    GeminiConfig
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // optional, for OpenAI-compatible gateways
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

func DefaultConfig() Config {
	return Config{
		Provider:  "openai",
		Timeout:   60 * time.Second,
		OpenAI:    OpenAIConfig{Model: "gpt-4o-mini"},
		Anthropic: AnthropicConfig{Model: "claude-haiku"},
		Gemini:    GeminiConfig{Model: "gemini-flash"},
	}
}

func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	cfg.Provider = envutil.String("LLM_PROVIDER", cfg.Provider)
	cfg.Timeout = envutil.Duration("LLM_TIMEOUT", cfg.Timeout)

	cfg.OpenAI.APIKey = envutil.String("OPENAI_API_KEY", "")
	cfg.OpenAI.Model = envutil.String("OPENAI_MODEL", cfg.OpenAI.Model)
	cfg.OpenAI.BaseURL = envutil.String("OPENAI_BASE_URL", "")

	cfg.Anthropic.APIKey = envutil.String("ANTHROPIC_API_KEY", "")
	cfg.Anthropic.Model = envutil.String("ANTHROPIC_MODEL", cfg.Anthropic.Model)

	cfg.Gemini.APIKey = envutil.String("GEMINI_API_KEY", "")
	cfg.Gemini.Model = envutil.String("GEMINI_MODEL", cfg.Gemini.Model)
	return cfg
}

// Validate checks that the selected provider has its API key.
func (c Config) Validate() error {
	switch c.Provider {
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OpenAI API key not configured (OPENAI_API_KEY)")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("Anthropic API key not configured (ANTHROPIC_API_KEY)")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("Gemini API key not configured (GEMINI_API_KEY)")
		}
	case "mock":
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
