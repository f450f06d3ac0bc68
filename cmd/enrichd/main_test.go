package main

import (
	"flag"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/chorushq/enrichd/ai"
)

func testContext(t *testing.T, args map[string]string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for name, value := range args {
		set.String(name, value, "")
	}
	set.Int("max-output-tokens", 0, "")
	return cli.NewContext(&cli.App{}, set, nil)
}

func TestSetupLogger(t *testing.T) {
	t.Cleanup(func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	})

	t.Run("valid levels accepted", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "WARN"} {
			c := testContext(t, map[string]string{"log-level": level})
			require.NoError(t, setupLogger(c))
		}
	})

	t.Run("invalid level rejected", func(t *testing.T) {
		c := testContext(t, map[string]string{"log-level": "verbose"})
		err := setupLogger(c)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "verbose")
	})
}

func TestModelOptionsEmptyByDefault(t *testing.T) {
	c := testContext(t, map[string]string{
		"fast-model":    "",
		"capable-model": "",
		"vision-model":  "",
	})

	assert.Empty(t, modelOptions(c))
}

func TestModelOptionsOverrideConfig(t *testing.T) {
	c := testContext(t, map[string]string{
		"fast-model":    "llama3.2",
		"capable-model": "llama3.3",
		"vision-model":  "llava",
	})

	config := ai.NewConfig(modelOptions(c)...)
	assert.Equal(t, "llama3.2", config.FastModel)
	assert.Equal(t, "llama3.3", config.CapableModel)
	assert.Equal(t, "llava", config.VisionModel)
}

func flagEnvVars(t *testing.T, name string) []string {
	t.Helper()
	for _, f := range appFlags {
		switch flag := f.(type) {
		case *cli.StringFlag:
			if flag.Name == name {
				return flag.EnvVars
			}
		case *cli.IntFlag:
			if flag.Name == name {
				return flag.EnvVars
			}
		case *cli.DurationFlag:
			if flag.Name == name {
				return flag.EnvVars
			}
		}
	}
	t.Fatalf("flag %q not defined", name)
	return nil
}

func TestFlagEnvBindings(t *testing.T) {
	bindings := map[string]string{
		"api-url":                 "API_URL",
		"api-token":               "API_TOKEN",
		"provider":                "EXTRACTOR_PROVIDER",
		"ollama-url":              "OLLAMA_URL",
		"ollama-api-key":          "OLLAMA_API_KEY",
		"openai-base-url":         "OPENAI_BASE_URL",
		"openai-api-key":          "OPENAI_API_KEY",
		"anthropic-api-key":       "ANTHROPIC_API_KEY",
		"anthropic-model-fast":    "ANTHROPIC_MODEL_FAST",
		"anthropic-model-capable": "ANTHROPIC_MODEL_CAPABLE",
		"fast-model":              "EXTRACTOR_MODEL_FAST",
		"capable-model":           "EXTRACTOR_MODEL_CAPABLE",
		"vision-model":            "EXTRACTOR_MODEL_VISION",
		"max-output-tokens":       "EXTRACTOR_MAX_OUTPUT_TOKENS",
		"concurrency":             "WORKER_CONCURRENCY",
		"poll-interval":           "WORKER_POLL_INTERVAL",
	}

	for name, env := range bindings {
		assert.Equal(t, []string{env}, flagEnvVars(t, name), name)
	}
}

func TestAnthropicModelOptions(t *testing.T) {
	c := testContext(t, map[string]string{
		"anthropic-model-fast":    "claude-3-5-haiku-latest",
		"anthropic-model-capable": "claude-3-5-sonnet-latest",
	})

	config := ai.NewConfig(anthropicModelOptions(c)...)
	assert.Equal(t, "claude-3-5-haiku-latest", config.FastModel)
	assert.Equal(t, "claude-3-5-sonnet-latest", config.CapableModel)
}

func TestGenericModelOverridesAnthropicModel(t *testing.T) {
	c := testContext(t, map[string]string{
		"anthropic-model-fast":    "claude-3-5-haiku-latest",
		"anthropic-model-capable": "claude-3-5-sonnet-latest",
		"fast-model":              "claude-3-7-sonnet-latest",
		"capable-model":           "",
		"vision-model":            "",
	})

	opts := append(anthropicModelOptions(c), modelOptions(c)...)
	config := ai.NewConfig(opts...)
	assert.Equal(t, "claude-3-7-sonnet-latest", config.FastModel)
	assert.Equal(t, "claude-3-5-sonnet-latest", config.CapableModel)
}

func TestBuildExtractorInvalidProvider(t *testing.T) {
	c := testContext(t, map[string]string{
		"provider":          "gemini",
		"openai-api-key":    "",
		"anthropic-api-key": "",
	})

	_, _, err := buildExtractor(c)
	assert.ErrorIs(t, err, ai.ErrInvalidProvider)
}

func TestBuildExtractorAnthropicRequiresKey(t *testing.T) {
	c := testContext(t, map[string]string{
		"provider":          "anthropic",
		"openai-api-key":    "",
		"anthropic-api-key": "",
		"fast-model":        "",
		"capable-model":     "",
		"vision-model":      "",
	})

	_, _, err := buildExtractor(c)
	require.Error(t, err)
}
