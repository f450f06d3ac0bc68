// Copyright 2026 Chorus Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ai

import (
	"errors"
	"fmt"
	"strings"
)

// Provider names a supported LLM backend.
type Provider string

const (
	ProviderOllama    Provider = "ollama"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// OpenAIDefaultBaseURL is the hosted OpenAI endpoint. Pointing at it
// without an API key is a fatal configuration error.
const OpenAIDefaultBaseURL = "https://api.openai.com/v1"

// ErrInvalidProvider indicates an explicit provider outside the supported set.
var ErrInvalidProvider = errors.New("invalid extractor provider")

// ResolveProvider resolves the extractor provider from an explicit
// setting plus the available API keys.
//
// An explicit "ollama", "openai" or "anthropic" wins. "auto" (or empty)
// prefers openai when an OpenAI key is present, then anthropic, else
// ollama. Anything else is a fatal configuration error.
func ResolveProvider(explicit, openaiKey, anthropicKey string) (Provider, error) {
	raw := strings.ToLower(strings.TrimSpace(explicit))
	switch raw {
	case string(ProviderOllama), string(ProviderOpenAI), string(ProviderAnthropic):
		return Provider(raw), nil
	case "", "auto":
		if openaiKey != "" {
			return ProviderOpenAI, nil
		}
		if anthropicKey != "" {
			return ProviderAnthropic, nil
		}
		return ProviderOllama, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidProvider, explicit)
	}
}

// Config holds configuration for an extraction adapter.
type Config struct {
	// BaseURL is the OpenAI-compatible chat-completions endpoint.
	BaseURL string

	// APIKey authenticates against the endpoint. Local endpoints may
	// leave it empty; the adapter substitutes a placeholder token.
	APIKey string

	// FastModel handles per-chunk metadata extraction.
	FastModel string

	// CapableModel handles document-level entity/relationship extraction.
	CapableModel string

	// VisionModel handles image description.
	VisionModel string

	// MaxOutputTokens bounds the completion size of every call.
	MaxOutputTokens int
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithBaseURL sets the chat-completions endpoint.
func WithBaseURL(url string) ConfigOption {
	return func(c *Config) {
		c.BaseURL = url
	}
}

// WithAPIKey sets the API key.
func WithAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.APIKey = key
	}
}

// WithFastModel sets the fast extraction model.
func WithFastModel(model string) ConfigOption {
	return func(c *Config) {
		c.FastModel = model
	}
}

// WithCapableModel sets the capable extraction model.
func WithCapableModel(model string) ConfigOption {
	return func(c *Config) {
		c.CapableModel = model
	}
}

// WithVisionModel sets the vision model.
func WithVisionModel(model string) ConfigOption {
	return func(c *Config) {
		c.VisionModel = model
	}
}

// WithMaxOutputTokens sets the completion token budget.
func WithMaxOutputTokens(n int) ConfigOption {
	return func(c *Config) {
		c.MaxOutputTokens = n
	}
}

// DefaultConfig returns a Config with the hosted-OpenAI defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:         OpenAIDefaultBaseURL,
		FastModel:       "gpt-4.1-mini",
		CapableModel:    "gpt-4.1-mini",
		VisionModel:     "gpt-4.1-mini",
		MaxOutputTokens: 16384,
	}
}

// NewConfig creates a Config with the default values and applies the
// provided options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// NormalizeBaseURL canonicalizes an OpenAI-compatible base URL by
// ensuring the /v1 suffix required by the chat-completions protocol.
//
//	http://localhost:11434    -> http://localhost:11434/v1
//	http://localhost:11434/   -> http://localhost:11434/v1
//	http://localhost:11434/v1 -> http://localhost:11434/v1
func NormalizeBaseURL(url string) string {
	stripped := strings.TrimSuffix(url, "/")
	if !strings.HasSuffix(stripped, "/v1") {
		stripped += "/v1"
	}
	return stripped
}

// Validate checks that the configuration is complete. It also enforces
// the fail-fast rule for the hosted OpenAI endpoint: a key is mandatory
// there, while local endpoints may run keyless.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("ai config: BaseURL is required")
	}
	if strings.TrimSuffix(c.BaseURL, "/") == strings.TrimSuffix(OpenAIDefaultBaseURL, "/") && c.APIKey == "" {
		return errors.New("ai config: APIKey is required when using the hosted OpenAI API; " +
			"set a key or point BaseURL at a local OpenAI-compatible endpoint")
	}
	if c.FastModel == "" {
		return errors.New("ai config: FastModel is required")
	}
	if c.CapableModel == "" {
		return errors.New("ai config: CapableModel is required")
	}
	if c.VisionModel == "" {
		return errors.New("ai config: VisionModel is required")
	}
	if c.MaxOutputTokens < 1 {
		return errors.New("ai config: MaxOutputTokens must be positive")
	}
	return nil
}
