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
	"strings"

	"github.com/chorushq/enrichd/ai"
	"github.com/chorushq/enrichd/core"
	"github.com/chorushq/enrichd/schema"
)

// DocumentResult holds the document-level enrichment produced on a
// document's terminal chunk.
type DocumentResult struct {
	Tier3         map[string]any
	Entities      []core.Entity
	Relationships []core.Relationship
	Summary       string
}

// RunDocumentLevel performs LLM extraction over the full document text:
// schema-guided metadata plus the entity and relationship graph. Image
// documents are described through the vision path first, and the
// resulting description and OCR text feed entity extraction. The method
// never fails; extraction problems surface as empty fields.
func (p *Pipeline) RunDocumentLevel(ctx context.Context, docType core.DocType, fullText, source string) *DocumentResult {
	logger := p.logger.With("docType", docType)

	var tier3 map[string]any
	entityText := fullText

	if docType == core.DocTypeImage {
		desc := p.extractor.DescribeImage(ctx, strings.TrimSpace(fullText), source)
		tier3 = map[string]any{
			"description":      desc.Description,
			"detected_objects": desc.DetectedObjects,
			"ocr_text":         desc.OCRText,
			"image_type":       desc.ImageType,
			"summary":          desc.Description,
		}
		entityText = strings.TrimSpace(desc.Description + "\n\n" + desc.OCRText)
	} else {
		tier3 = p.extractTier3(ctx, fullText, docType, logger)
	}

	graph := p.extractor.ExtractEntities(ctx, entityText)
	if graph == nil {
		graph = ai.EmptyEntityGraph()
	}

	tier3 = NormalizeMetadata(tier3)
	if err := schema.Validate(docType, tier3); err != nil {
		logger.Warn("extracted metadata failed schema validation", "err", err)
	}

	return &DocumentResult{
		Tier3:         tier3,
		Entities:      graph.Entities,
		Relationships: graph.Relationships,
		Summary:       stringField(tier3, "summary"),
	}
}
