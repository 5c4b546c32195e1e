package llm

import (
	"os"
	"strconv"

	"github.com/syedhassan0709/ai-nutrition-training-plan-generator/internal/domain"
)

// Backend identifies which generation backend the client talks to.
type Backend string

const (
	// BackendOpenRouter uses the OpenRouter chat-completions API.
	BackendOpenRouter Backend = "openrouter"

	// BackendLocal uses a local Ollama instance for offline generation.
	BackendLocal Backend = "local"
)

// TaskConfig holds per-content-type generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
}

// Config holds all configuration for the generation subsystem.
type Config struct {
	Backend Backend

	// OpenRouter settings.
	APIKey string
	APIURL string
	Model  string

	// Local (Ollama) settings.
	LocalEndpoint string
	LocalModel    string

	TimeoutMs  int
	MaxRetries int
	Tasks      map[domain.ContentType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults: OpenRouter backend,
// a single attempt per request, and a 30 second bound per call.
func DefaultConfig() Config {
	return Config{
		Backend:       BackendOpenRouter,
		APIURL:        "https://openrouter.ai/api/v1/chat/completions",
		Model:         "anthropic/claude-3-haiku",
		LocalEndpoint: "http://localhost:11434",
		LocalModel:    "llama3.2",
		TimeoutMs:     30000,
		MaxRetries:    0,
		Tasks: map[domain.ContentType]TaskConfig{
			domain.ContentSummary:   {Temperature: 0.7, MaxTokens: 2000},
			domain.ContentTraining:  {Temperature: 0.7, MaxTokens: 2000},
			domain.ContentNutrition: {Temperature: 0.7, MaxTokens: 2000},
		},
	}
}

// LoadConfig reads configuration from environment variables, falling back
// to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("PLANGEN_LLM_BACKEND"); v != "" {
		cfg.Backend = Backend(v)
	}
	if v := os.Getenv("PLANGEN_LLM_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("PLANGEN_LLM_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("PLANGEN_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("PLANGEN_LLM_LOCAL_ENDPOINT"); v != "" {
		cfg.LocalEndpoint = v
	}
	if v := os.Getenv("PLANGEN_LLM_LOCAL_MODEL"); v != "" {
		cfg.LocalModel = v
	}
	if v := os.Getenv("PLANGEN_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("PLANGEN_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	return cfg
}

// TaskParams returns the generation parameters for a content type,
// defaulting when the type is unknown.
func (c Config) TaskParams(ct domain.ContentType) TaskConfig {
	if tc, ok := c.Tasks[ct]; ok {
		return tc
	}
	return TaskConfig{Temperature: 0.7, MaxTokens: 1500}
}
