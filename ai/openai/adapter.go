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


package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/chorushq/enrichd/ai"
	"github.com/chorushq/enrichd/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	lcschema "github.com/tmc/langchaingo/schema"
)

const systemPrompt = "You are a helpful assistant that extracts structured data. " +
	"Always respond with valid JSON."

// Adapter implements ai.Extractor against any OpenAI-compatible
// chat-completions endpoint.
//
// Every call runs in strict-JSON-output mode first; if that fails for
// any reason the call is retried once in permissive text mode and the
// response is salvaged by parseJSONContent. When both attempts fail the
// adapter returns a schema-shaped empty value, never an error.
type Adapter struct {
	client       llms.Model
	fastModel    string
	capableModel string
	visionModel  string
	maxTokens    int
	logger       *slog.Logger
}

// newAdapter is an internal constructor that returns the concrete type.
// Used by the ollama and anthropic specializations.
func newAdapter(config *ai.Config) (*Adapter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Local OpenAI-compatible servers accept any token; substitute a
	// placeholder so the client does not reject an empty key.
	token := config.APIKey
	if token == "" {
		token = "not-required"
	}

	client, err := openai.New(
		openai.WithBaseURL(config.BaseURL),
		openai.WithToken(token),
		openai.WithModel(config.FastModel),
	)
	if err != nil {
		return nil, err
	}

	return &Adapter{
		client:       client,
		fastModel:    config.FastModel,
		capableModel: config.CapableModel,
		visionModel:  config.VisionModel,
		maxTokens:    config.MaxOutputTokens,
		logger:       slog.Default().With("component", "openai-adapter"),
	}, nil
}

// New creates an extraction adapter for an OpenAI-compatible endpoint.
//
// Returns ai.Extractor interface to enforce abstraction.
func New(config *ai.Config) (ai.Extractor, error) {
	return newAdapter(config)
}

// ExtractMetadata extracts document-type-specific metadata from text.
// The text sent to the model is capped at maxExtractChars to bound
// token cost; callers may pass arbitrarily long input.
func (a *Adapter) ExtractMetadata(ctx context.Context, text string, docType core.DocType, schema map[string]any, promptTemplate string) map[string]any {
	schemaJSON := marshalSchema(schema)
	excerpt := truncateText(text, maxExtractChars)

	var prompt string
	if promptTemplate != "" {
		prompt = strings.ReplaceAll(promptTemplate, "{text}", excerpt)
		prompt = strings.ReplaceAll(prompt, "{schema}", schemaJSON)
	} else {
		prompt = defaultMetadataPrompt(docType, excerpt, schemaJSON)
	}

	return a.extractStructured(ctx, prompt, schema, a.fastModel)
}

// ExtractEntities extracts document-level entities and relationships.
func (a *Adapter) ExtractEntities(ctx context.Context, text string) *ai.EntityGraph {
	prompt := entityPrompt(truncateText(text, maxExtractChars))
	raw := a.extractStructured(ctx, prompt, entityGraphSchema, a.capableModel)

	graph := ai.EmptyEntityGraph()
	data, err := json.Marshal(raw)
	if err == nil {
		if err := json.Unmarshal(data, graph); err != nil {
			a.logger.Warn("entity graph did not match expected shape", "err", err)
		}
	}
	if graph.Entities == nil {
		graph.Entities = []core.Entity{}
	}
	if graph.Relationships == nil {
		graph.Relationships = []core.Relationship{}
	}
	return graph
}

// DescribeImage describes a base64-encoded image via the vision model.
func (a *Adapter) DescribeImage(ctx context.Context, imageBase64, imageContext string) ai.ImageDescription {
	content := []llms.MessageContent{
		{
			Role: lcschema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(imagePrompt(imageContext)),
				llms.ImageURLPart("data:image/jpeg;base64," + imageBase64),
			},
		},
	}

	for _, strict := range []bool{true, false} {
		parsed, ok := a.generateAndParse(ctx, content, a.visionModel, strict)
		if !ok {
			continue
		}
		var desc ai.ImageDescription
		data, err := json.Marshal(parsed)
		if err != nil {
			continue
		}
		if err := json.Unmarshal(data, &desc); err != nil {
			a.logger.Warn("image description did not match expected shape", "err", err)
			continue
		}
		if desc.DetectedObjects == nil {
			desc.DetectedObjects = []string{}
		}
		return desc
	}

	return ai.ImageDescription{DetectedObjects: []string{}}
}

// IsAvailable probes the endpoint with a minimal completion.
func (a *Adapter) IsAvailable(ctx context.Context) bool {
	content := []llms.MessageContent{
		{
			Role:  lcschema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart("ping")},
		},
	}
	_, err := a.client.GenerateContent(ctx, content,
		llms.WithModel(a.fastModel),
		llms.WithMaxTokens(8),
	)
	if err != nil {
		a.logger.Warn("availability check failed", "err", err)
		return false
	}
	return true
}

// extractStructured runs the strict-then-permissive call sequence and
// falls back to a schema-shaped empty map when both attempts fail.
func (a *Adapter) extractStructured(ctx context.Context, prompt string, schema map[string]any, model string) map[string]any {
	content := []llms.MessageContent{
		{
			Role:  lcschema.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(systemPrompt)},
		},
		{
			Role:  lcschema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(prompt)},
		},
	}

	for _, strict := range []bool{true, false} {
		if parsed, ok := a.generateAndParse(ctx, content, model, strict); ok {
			return parsed
		}
	}

	a.logger.Error("structured extraction failed, returning schema-shaped default", "model", model)
	return emptyForSchema(schema)
}

// generateAndParse performs one chat-completion call and salvages JSON
// from its response.
func (a *Adapter) generateAndParse(ctx context.Context, content []llms.MessageContent, model string, strict bool) (map[string]any, bool) {
	opts := []llms.CallOption{
		llms.WithModel(model),
		llms.WithMaxTokens(a.maxTokens),
		llms.WithTemperature(0.0),
	}
	if strict {
		opts = append(opts, llms.WithJSONMode())
	}

	response, err := a.client.GenerateContent(ctx, content, opts...)
	if err != nil {
		a.logger.Warn("chat completion failed", "model", model, "strict", strict, "err", err)
		return nil, false
	}
	if len(response.Choices) < 1 {
		a.logger.Warn("no choices returned from model", "model", model, "strict", strict)
		return nil, false
	}

	parsed, ok := parseJSONContent(response.Choices[0].Content)
	if !ok {
		a.logger.Warn("response was not salvageable JSON", "model", model, "strict", strict)
	}
	return parsed, ok
}

func marshalSchema(schema map[string]any) string {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}
