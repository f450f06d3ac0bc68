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


package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/chorushq/enrichd/ai"
	"github.com/chorushq/enrichd/ai/anthropic"
	"github.com/chorushq/enrichd/ai/ollama"
	"github.com/chorushq/enrichd/ai/openai"
	"github.com/chorushq/enrichd/nlp"
	"github.com/chorushq/enrichd/pipeline"
	"github.com/chorushq/enrichd/queue"
)

var appFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "log-level",
		Aliases: []string{"l"},
		Usage:   "Set logging level (debug, info, warn, error)",
		Value:   "info",
		EnvVars: []string{"LOG_LEVEL"},
	},
	&cli.StringFlag{
		Name:     "api-url",
		Usage:    "Base URL of the task queue API",
		Required: true,
		EnvVars:  []string{"API_URL"},
	},
	&cli.StringFlag{
		Name:    "api-token",
		Usage:   "Bearer token for the task queue API",
		EnvVars: []string{"API_TOKEN"},
	},
	&cli.StringFlag{
		Name:    "provider",
		Usage:   "LLM provider (ollama, openai, anthropic or auto)",
		Value:   "auto",
		EnvVars: []string{"EXTRACTOR_PROVIDER"},
	},
	&cli.StringFlag{
		Name:    "ollama-url",
		Usage:   "Ollama server URL",
		Value:   ollama.DefaultURL,
		EnvVars: []string{"OLLAMA_URL"},
	},
	&cli.StringFlag{
		Name:    "ollama-api-key",
		Usage:   "API key for key-protected Ollama deployments",
		EnvVars: []string{"OLLAMA_API_KEY"},
	},
	&cli.StringFlag{
		Name:    "openai-base-url",
		Usage:   "OpenAI-compatible endpoint URL",
		Value:   ai.OpenAIDefaultBaseURL,
		EnvVars: []string{"OPENAI_BASE_URL"},
	},
	&cli.StringFlag{
		Name:    "openai-api-key",
		Usage:   "OpenAI API key",
		EnvVars: []string{"OPENAI_API_KEY"},
	},
	&cli.StringFlag{
		Name:    "anthropic-api-key",
		Usage:   "Anthropic API key",
		EnvVars: []string{"ANTHROPIC_API_KEY"},
	},
	&cli.StringFlag{
		Name:    "anthropic-model-fast",
		Usage:   "Claude model for schema-guided metadata extraction",
		EnvVars: []string{"ANTHROPIC_MODEL_FAST"},
	},
	&cli.StringFlag{
		Name:    "anthropic-model-capable",
		Usage:   "Claude model for entity and relationship extraction",
		EnvVars: []string{"ANTHROPIC_MODEL_CAPABLE"},
	},
	&cli.StringFlag{
		Name:    "fast-model",
		Usage:   "Model for schema-guided metadata extraction",
		EnvVars: []string{"EXTRACTOR_MODEL_FAST"},
	},
	&cli.StringFlag{
		Name:    "capable-model",
		Usage:   "Model for entity and relationship extraction",
		EnvVars: []string{"EXTRACTOR_MODEL_CAPABLE"},
	},
	&cli.StringFlag{
		Name:    "vision-model",
		Usage:   "Model for image description",
		EnvVars: []string{"EXTRACTOR_MODEL_VISION"},
	},
	&cli.IntFlag{
		Name:    "max-output-tokens",
		Usage:   "Token budget for extraction responses",
		EnvVars: []string{"EXTRACTOR_MAX_OUTPUT_TOKENS"},
	},
	&cli.IntFlag{
		Name:    "concurrency",
		Usage:   "Number of tasks processed concurrently",
		Value:   4,
		EnvVars: []string{"WORKER_CONCURRENCY"},
	},
	&cli.DurationFlag{
		Name:    "poll-interval",
		Usage:   "Sleep between polls when the queue is empty",
		Value:   2 * time.Second,
		EnvVars: []string{"WORKER_POLL_INTERVAL"},
	},
}

func main() {
	// Local .env files are optional
	_ = godotenv.Load()

	app := &cli.App{
		Name:   "enrichd",
		Usage:  "Document enrichment worker for queued chunk tasks",
		Flags:  appFlags,
		Before: setupLogger,
		Action: runCommand,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runCommand(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	extractor, provider, err := buildExtractor(c)
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}

	tier2, err := nlp.NewExtractor()
	if err != nil {
		return fmt.Errorf("failed to create tier-2 extractor: %w", err)
	}

	client := queue.NewClient(c.String("api-url"), c.String("api-token"))

	pipe, err := pipeline.NewPipeline(tier2, extractor, client)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}

	worker, err := pipeline.NewWorker(client, client, pipe,
		pipeline.WithConcurrency(c.Int("concurrency")),
		pipeline.WithPollInterval(c.Duration("poll-interval")))
	if err != nil {
		return fmt.Errorf("failed to create worker: %w", err)
	}
	defer worker.Release()

	slog.Info("enrichd starting",
		"provider", provider,
		"queue", c.String("api-url"),
		"concurrency", c.Int("concurrency"))

	if !extractor.IsAvailable(ctx) {
		slog.Warn("LLM endpoint is not responding, extraction will degrade to empty results",
			"provider", provider)
	}

	err = worker.Run(ctx)
	if errors.Is(err, context.Canceled) {
		slog.Info("enrichd stopped")
		return nil
	}
	return err
}

// buildExtractor resolves the provider and constructs its adapter.
func buildExtractor(c *cli.Context) (ai.Extractor, ai.Provider, error) {
	provider, err := ai.ResolveProvider(
		c.String("provider"),
		c.String("openai-api-key"),
		c.String("anthropic-api-key"),
	)
	if err != nil {
		return nil, "", err
	}

	opts := modelOptions(c)

	var extractor ai.Extractor
	switch provider {
	case ai.ProviderOllama:
		extractor, err = ollama.New(
			c.String("ollama-url"),
			c.String("ollama-api-key"),
			c.String("openai-api-key"),
			opts...)
	case ai.ProviderOpenAI:
		config := ai.NewConfig(append(opts,
			ai.WithBaseURL(ai.NormalizeBaseURL(c.String("openai-base-url"))),
			ai.WithAPIKey(c.String("openai-api-key")))...)
		extractor, err = openai.New(config)
	case ai.ProviderAnthropic:
		// Claude-specific model names first so the generic overrides win
		extractor, err = anthropic.New(c.String("anthropic-api-key"),
			append(anthropicModelOptions(c), opts...)...)
	default:
		return nil, "", fmt.Errorf("%w: %q", ai.ErrInvalidProvider, provider)
	}
	if err != nil {
		return nil, "", err
	}

	return extractor, provider, nil
}

// anthropicModelOptions collects the Claude-specific model overrides.
func anthropicModelOptions(c *cli.Context) []ai.ConfigOption {
	var opts []ai.ConfigOption
	if model := c.String("anthropic-model-fast"); model != "" {
		opts = append(opts, ai.WithFastModel(model))
	}
	if model := c.String("anthropic-model-capable"); model != "" {
		opts = append(opts, ai.WithCapableModel(model))
	}
	return opts
}

// modelOptions collects the model overrides set on the command line.
func modelOptions(c *cli.Context) []ai.ConfigOption {
	var opts []ai.ConfigOption
	if model := c.String("fast-model"); model != "" {
		opts = append(opts, ai.WithFastModel(model))
	}
	if model := c.String("capable-model"); model != "" {
		opts = append(opts, ai.WithCapableModel(model))
	}
	if model := c.String("vision-model"); model != "" {
		opts = append(opts, ai.WithVisionModel(model))
	}
	if n := c.Int("max-output-tokens"); n > 0 {
		opts = append(opts, ai.WithMaxOutputTokens(n))
	}
	return opts
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
