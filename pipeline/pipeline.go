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


package pipeline

import (
	"context"
	"log/slog"
	"strings"

	"github.com/chorushq/enrichd/ai"
	"github.com/chorushq/enrichd/core"
	"github.com/chorushq/enrichd/queue"
	"github.com/chorushq/enrichd/schema"
)

// Tier2Extractor runs the deterministic enrichment pass over chunk text.
type Tier2Extractor interface {
	Extract(text string) *core.Tier2Result
}

// Pipeline orchestrates enrichment of document chunk tasks. Every chunk
// gets tier-2 results; the terminal chunk of a document additionally
// triggers LLM extraction over the full document text.
type Pipeline struct {
	tier2     Tier2Extractor
	extractor ai.Extractor
	sink      queue.ResultSink
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new enrichment pipeline.
func NewPipeline(tier2 Tier2Extractor, extractor ai.Extractor, sink queue.ResultSink, opts ...Option) (*Pipeline, error) {
	if tier2 == nil {
		return nil, ErrTier2Required
	}
	if extractor == nil {
		return nil, ErrExtractorRequired
	}
	if sink == nil {
		return nil, ErrSinkRequired
	}

	p := &Pipeline{
		tier2:     tier2,
		extractor: extractor,
		sink:      sink,
		logger:    slog.Default().With("component", "pipeline"),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// ProcessTask enriches a single chunk task and submits the result.
// Non-terminal chunks carry explicit nulls for the document-level
// fields so downstream consumers can distinguish "not the last chunk"
// from "extraction produced nothing". A submission failure is returned
// to the caller unchanged so the task can be retried under a new lease.
func (p *Pipeline) ProcessTask(ctx context.Context, task *core.Task) error {
	if err := core.ValidateTask(task); err != nil {
		return err
	}

	logger := p.logger.With("task", task.TaskID, "chunk", task.ChunkID())
	logger.Debug("processing task", "docType", task.DocType, "attempt", task.Attempt)

	payload := &core.ResultPayload{
		TaskID:     task.TaskID,
		ChunkID:    task.ChunkID(),
		Collection: task.Collection,
		Tier2:      p.tier2.Extract(task.Text),
	}

	if task.IsLastChunk() {
		doc := p.documentResult(ctx, task, logger)
		payload.Tier3 = doc.Tier3
		payload.Entities = doc.Entities
		payload.Relationships = doc.Relationships
		payload.Summary = &doc.Summary
	}

	if err := p.sink.SubmitResult(ctx, payload); err != nil {
		logger.Error("result submission failed", "err", err)
		return err
	}

	logger.Debug("task complete")
	return nil
}

// documentResult assembles the document-level fields for a terminal
// chunk. For multi-chunk documents the terminal chunk's own text is
// extracted first so fields the document-level pass leaves empty keep
// their chunk-level values.
func (p *Pipeline) documentResult(ctx context.Context, task *core.Task, logger *slog.Logger) *DocumentResult {
	var chunkMeta map[string]any
	if task.TotalChunks > 1 && task.DocType != core.DocTypeImage {
		chunkMeta = p.extractTier3(ctx, task.Text, task.DocType, logger)
	}

	fullText := task.Text
	if task.TotalChunks > 1 {
		fullText = strings.Join(task.AllChunks, "\n\n")
	}

	doc := p.RunDocumentLevel(ctx, task.DocType, fullText, task.Source)

	if len(chunkMeta) > 0 {
		doc.Tier3 = NormalizeMetadata(mergeMetadata(chunkMeta, doc.Tier3))
		doc.Summary = stringField(doc.Tier3, "summary")
	}

	return doc
}

// extractTier3 runs schema-guided LLM metadata extraction over text.
func (p *Pipeline) extractTier3(ctx context.Context, text string, docType core.DocType, logger *slog.Logger) map[string]any {
	def, err := schema.Lookup(docType)
	if err != nil {
		logger.Error("no schema for document type", "docType", docType, "err", err)
		return map[string]any{}
	}
	return p.extractor.ExtractMetadata(ctx, text, docType, def.Schema, def.Prompt)
}

// mergeMetadata layers overlay on top of base. Overlay values win
// except where they are empty and base already has a value.
func mergeMetadata(base, overlay map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(overlay))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overlay {
		if isEmptyValue(v) {
			if _, ok := merged[k]; ok {
				continue
			}
		}
		merged[k] = v
	}
	return merged
}

func isEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case []any:
		return len(val) == 0
	case []string:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	default:
		return false
	}
}
