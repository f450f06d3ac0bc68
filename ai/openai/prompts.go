package openai

import (
	"fmt"

	"github.com/chorushq/enrichd/core"
)

// maxExtractChars caps the text sent with any extraction prompt.
const maxExtractChars = 8000

// entityGraphSchema is the fixed schema for document-level
// entity/relationship extraction. It is independent of document type.
var entityGraphSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"entities": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":        map[string]any{"type": "string"},
					"type":        map[string]any{"type": "string"},
					"description": map[string]any{"type": "string"},
				},
				"required": []any{"name", "type", "description"},
			},
		},
		"relationships": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"source":      map[string]any{"type": "string"},
					"target":      map[string]any{"type": "string"},
					"type":        map[string]any{"type": "string"},
					"description": map[string]any{"type": "string"},
				},
				"required": []any{"source", "target", "type"},
			},
		},
	},
	"required": []any{"entities", "relationships"},
}

func defaultMetadataPrompt(docType core.DocType, text, schemaJSON string) string {
	return fmt.Sprintf("Analyze this %s document and extract metadata according to the schema.\n\n"+
		"Text:\n%s\n\n"+
		"Schema:\n%s\n\n"+
		"Extract the metadata as JSON.", docType, text, schemaJSON)
}

func entityPrompt(text string) string {
	return fmt.Sprintf(`Extract entities and relationships from this text.

Text:
%s

For each entity, provide:
- name: entity name
- type: entity type (person, class, concept, project, org, etc.)
- description: brief description

For each relationship:
- source: source entity name
- target: target entity name
- type: relationship type (uses, depends-on, discusses, implements, etc.)
- description: brief description`, text)
}

func imagePrompt(imageContext string) string {
	contextLine := ""
	if imageContext != "" {
		contextLine = "Context: " + imageContext + "\n\n"
	}
	return fmt.Sprintf(`Describe this image in detail. Provide:
- description: A detailed description of the image
- detected_objects: List of main objects/entities visible
- ocr_text: Any text visible in the image
- image_type: Classification (photo, diagram, screenshot, chart)

%sRespond in JSON format.`, contextLine)
}
