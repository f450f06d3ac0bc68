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


// Package nlp implements tier-2 extraction: deterministic, non-LLM
// metadata computed for every chunk, namely named entities, keywords
// and the
// dominant language. No network calls; given the same text the result
// is always identical, which makes this tier safe to rerun on retried
// tasks and cheap enough to run before any LLM work.
package nlp

import (
	"log/slog"
	"strings"

	"github.com/chorushq/enrichd/core"
	"github.com/jdkato/prose/v2"
	"github.com/pemistahl/lingua-go"
)

// UnknownLanguage is reported when detection fails or text is empty.
const UnknownLanguage = "unknown"

// Extractor runs tier-2 extraction. Safe for concurrent use; the
// underlying models are read-only after construction.
type Extractor struct {
	detector lingua.LanguageDetector
	analyzer *keywordAnalyzer
	logger   *slog.Logger
}

// NewExtractor builds a tier-2 extractor. Language models are loaded
// lazily on first detection.
func NewExtractor() (*Extractor, error) {
	analyzer, err := newKeywordAnalyzer()
	if err != nil {
		return nil, err
	}

	detector := lingua.NewLanguageDetectorBuilder().
		FromAllLanguages().
		Build()

	return &Extractor{
		detector: detector,
		analyzer: analyzer,
		logger:   slog.Default().With("component", "tier2"),
	}, nil
}

// Extract computes the tier-2 result for a chunk of text.
//
// Empty (or whitespace-only) text short-circuits to empty entity and
// keyword lists without touching any model. Model failures fail
// closed: the affected field degrades to its empty-text value and no
// error is surfaced.
func (e *Extractor) Extract(text string) *core.Tier2Result {
	if strings.TrimSpace(text) == "" {
		return emptyResult()
	}

	return &core.Tier2Result{
		Entities: e.recognizeEntities(text),
		Keywords: e.analyzer.keywords(text, maxKeywords),
		Language: e.detectLanguage(text),
	}
}

func (e *Extractor) recognizeEntities(text string) []core.EntityMention {
	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		e.logger.Warn("entity recognition unavailable, returning empty entities", "err", err)
		return []core.EntityMention{}
	}

	entities := doc.Entities()
	mentions := make([]core.EntityMention, 0, len(entities))
	for _, ent := range entities {
		mentions = append(mentions, core.EntityMention{
			Text:  ent.Text,
			Label: ent.Label,
		})
	}
	return mentions
}

func (e *Extractor) detectLanguage(text string) string {
	lang, ok := e.detector.DetectLanguageOf(text)
	if !ok {
		return UnknownLanguage
	}
	return strings.ToLower(lang.IsoCode639_1().String())
}

func emptyResult() *core.Tier2Result {
	return &core.Tier2Result{
		Entities: []core.EntityMention{},
		Keywords: []string{},
		Language: UnknownLanguage,
	}
}
