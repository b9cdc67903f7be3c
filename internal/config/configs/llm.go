package configs

import "time"

// LLM holds configuration for the external completion provider. An
// empty APIKey disables the LLM generation strategy entirely; the
// engine then serves deterministic fallback recommendations, which is a
// fully supported mode rather than an error.
type LLM struct {
	// APIKey authenticates against the provider. Empty means disabled.
	APIKey string `env:"API_KEY"`
	// BaseURL points at an OpenAI-compatible API root.
	BaseURL string `env:"BASE_URL" envDefault:"https://api.openai.com/v1"`
	// Model names the completion model to request.
	Model string `env:"MODEL" envDefault:"gpt-4o-mini"`
	// Timeout bounds the single outbound completion call. On timeout
	// the engine falls back deterministically.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"60s"`
}

// Enabled reports whether the completion provider is configured.
func (c LLM) Enabled() bool {
	return c.APIKey != ""
}
