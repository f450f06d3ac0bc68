// Package ollama adapts local Ollama servers to the extraction
// interface. Ollama exposes an OpenAI-compatible API under /v1, so the
// adapter is a configuration specialization of ai/openai: base-URL
// normalization and key fallback, no independent logic.
package ollama

import (
	"github.com/chorushq/enrichd/ai"
	"github.com/chorushq/enrichd/ai/openai"
)

// DefaultURL is the stock local Ollama endpoint, before normalization.
const DefaultURL = "http://localhost:11434"

// New creates an extraction adapter for an Ollama server.
//
// The base URL is normalized to end in /v1. When no Ollama key is set,
// an OpenAI key is accepted as a fallback; with neither, the adapter
// runs keyless (local servers ignore the token).
func New(url, ollamaKey, openaiKey string, opts ...ai.ConfigOption) (ai.Extractor, error) {
	if url == "" {
		url = DefaultURL
	}
	key := ollamaKey
	if key == "" {
		key = openaiKey
	}

	base := []ai.ConfigOption{
		ai.WithBaseURL(ai.NormalizeBaseURL(url)),
		ai.WithAPIKey(key),
	}
	return openai.New(ai.NewConfig(append(base, opts...)...))
}
