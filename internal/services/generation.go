package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	types "github.com/yungbote/bacprep-backend/internal/domain"
)

// GenerationProfile holds the completion parameters for one use case. An
// empty Model means the provider's configured model.
type GenerationProfile struct {
	Model       string  `yaml:"model"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
}

type GenerationConfig struct {
	Quiz    GenerationProfile `yaml:"quiz"`
	Summary GenerationProfile `yaml:"summary"`
}

func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Quiz:    GenerationProfile{MaxTokens: 2000, Temperature: 0.7},
		Summary: GenerationProfile{MaxTokens: 2000, Temperature: 0.6},
	}
}

// LoadGenerationConfig overlays the YAML file at path onto the defaults.
// An empty path returns the defaults.
func LoadGenerationConfig(path string) (GenerationConfig, error) {
	cfg := DefaultGenerationConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read generation config: %w", err)
	}
	var override GenerationConfig
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return cfg, fmt.Errorf("parse generation config: %w", err)
	}
	cfg.Quiz = mergeProfile(cfg.Quiz, override.Quiz)
	cfg.Summary = mergeProfile(cfg.Summary, override.Summary)
	return cfg, nil
}

func mergeProfile(base, over GenerationProfile) GenerationProfile {
	if over.Model != "" {
		base.Model = over.Model
	}
	if over.MaxTokens > 0 {
		base.MaxTokens = over.MaxTokens
	}
	if over.Temperature > 0 {
		base.Temperature = over.Temperature
	}
	return base
}

const questionSetSchemaURL = "schema://question-set.json"

const questionSetSchema = `{
  "type": "object",
  "required": ["questions"],
  "properties": {
    "questions": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["question", "options", "correct_answer"],
        "properties": {
          "question": {"type": "string", "minLength": 1},
          "options": {
            "type": "array",
            "minItems": 4,
            "maxItems": 4,
            "items": {"type": "string"}
          },
          "correct_answer": {"type": "string", "enum": ["A", "B", "C", "D"]},
          "explanation": {"type": "string"}
        }
      }
    }
  }
}`

var (
	compileOnce      sync.Once
	compiledQuestion *jsonschema.Schema
	compileErr       error
)

func questionSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var doc any
		if err := json.Unmarshal([]byte(questionSetSchema), &doc); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(questionSetSchemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledQuestion, compileErr = c.Compile(questionSetSchemaURL)
	})
	return compiledQuestion, compileErr
}

var errQuestionCount = errors.New("question count mismatch")

// ParseQuestionSet parses completion text as {"questions": [...]} and checks
// its shape: want questions, each with 4 options and an A-D answer label.
func ParseQuestionSet(raw string, want int) ([]types.Question, error) {
	text := stripCodeFence(raw)

	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	schema, err := questionSchema()
	if err != nil {
		return nil, fmt.Errorf("compile question schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var set types.QuestionSet
	if err := json.Unmarshal([]byte(text), &set); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	if want > 0 && len(set.Questions) != want {
		return nil, fmt.Errorf("%w: want %d, got %d", errQuestionCount, want, len(set.Questions))
	}
	return set.Questions, nil
}

// stripCodeFence removes a surrounding ``` or ```json fence.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
