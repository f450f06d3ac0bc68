package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveProviderExplicit(t *testing.T) {
	for _, name := range []string{"ollama", "openai", "anthropic"} {
		provider, err := ResolveProvider(name, "", "")
		require.NoError(t, err)
		assert.Equal(t, Provider(name), provider)
	}

	// Explicit choice wins over key presence.
	provider, err := ResolveProvider("ollama", "sk-openai", "sk-ant")
	require.NoError(t, err)
	assert.Equal(t, ProviderOllama, provider)

	// Case and whitespace are tolerated.
	provider, err = ResolveProvider("  OpenAI ", "", "")
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, provider)
}

func TestResolveProviderAuto(t *testing.T) {
	tests := []struct {
		name         string
		openaiKey    string
		anthropicKey string
		want         Provider
	}{
		{"openai key preferred", "sk-openai", "sk-ant", ProviderOpenAI},
		{"anthropic key second", "", "sk-ant", ProviderAnthropic},
		{"ollama fallback", "", "", ProviderOllama},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := ResolveProvider("auto", tt.openaiKey, tt.anthropicKey)
			require.NoError(t, err)
			assert.Equal(t, tt.want, provider)

			// Empty behaves like auto.
			provider, err = ResolveProvider("", tt.openaiKey, tt.anthropicKey)
			require.NoError(t, err)
			assert.Equal(t, tt.want, provider)
		})
	}
}

func TestResolveProviderInvalid(t *testing.T) {
	_, err := ResolveProvider("bedrock", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidProvider)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://localhost:11434", "http://localhost:11434/v1"},
		{"http://localhost:11434/", "http://localhost:11434/v1"},
		{"http://localhost:11434/v1", "http://localhost:11434/v1"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeBaseURL(tt.in))
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := NewConfig(WithBaseURL("http://localhost:11434/v1"))
	require.NoError(t, cfg.Validate())
}

func TestConfigValidateHostedOpenAIRequiresKey(t *testing.T) {
	cfg := NewConfig()
	require.Error(t, cfg.Validate())

	cfg = NewConfig(WithAPIKey("sk-test"))
	require.NoError(t, cfg.Validate())
}

func TestConfigValidateMissingFields(t *testing.T) {
	cfg := NewConfig(WithBaseURL("http://localhost:11434/v1"), WithFastModel(""))
	require.Error(t, cfg.Validate())

	cfg = NewConfig(WithBaseURL("http://localhost:11434/v1"), WithMaxOutputTokens(0))
	require.Error(t, cfg.Validate())
}

func TestNewConfigOptions(t *testing.T) {
	cfg := NewConfig(
		WithBaseURL("http://localhost:9100/v1"),
		WithAPIKey("key"),
		WithFastModel("fast"),
		WithCapableModel("capable"),
		WithVisionModel("vision"),
		WithMaxOutputTokens(2048),
	)

	assert.Equal(t, "http://localhost:9100/v1", cfg.BaseURL)
	assert.Equal(t, "key", cfg.APIKey)
	assert.Equal(t, "fast", cfg.FastModel)
	assert.Equal(t, "capable", cfg.CapableModel)
	assert.Equal(t, "vision", cfg.VisionModel)
	assert.Equal(t, 2048, cfg.MaxOutputTokens)
}
