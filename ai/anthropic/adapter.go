// Package anthropic adapts Anthropic's OpenAI-compatible endpoint to
// the extraction interface. Like ollama, it is a configuration
// specialization of ai/openai: endpoint plus Claude model defaults.
package anthropic

import (
	"errors"

	"github.com/chorushq/enrichd/ai"
	"github.com/chorushq/enrichd/ai/openai"
)

// BaseURL is Anthropic's OpenAI-compatible chat-completions endpoint.
const BaseURL = "https://api.anthropic.com/v1"

const (
	defaultFastModel    = "claude-3-5-haiku-20241022"
	defaultCapableModel = "claude-3-5-sonnet-20241022"
)

// ErrAPIKeyRequired indicates a missing Anthropic API key.
var ErrAPIKeyRequired = errors.New("anthropic: API key is required")

// New creates an extraction adapter for the Anthropic API. The key is
// mandatory; there is no hosted keyless mode.
func New(apiKey string, opts ...ai.ConfigOption) (ai.Extractor, error) {
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	base := []ai.ConfigOption{
		ai.WithBaseURL(BaseURL),
		ai.WithAPIKey(apiKey),
		ai.WithFastModel(defaultFastModel),
		ai.WithCapableModel(defaultCapableModel),
		ai.WithVisionModel(defaultCapableModel),
	}
	return openai.New(ai.NewConfig(append(base, opts...)...))
}
