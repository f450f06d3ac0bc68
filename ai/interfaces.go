package ai

import (
	"context"

	"github.com/chorushq/enrichd/core"
)

// Extractor is the boundary to an LLM backend. Implementations must be
// thread-safe for concurrent use.
//
// Every method is best-effort and never fails: on any transport or
// response-format problem the implementation degrades to a well-shaped
// empty value rather than surfacing an error. The pipeline depends on
// that guarantee to keep enriching chunks when the backend misbehaves.
type Extractor interface {
	// ExtractMetadata extracts document-type-specific metadata from text.
	// The returned map always contains every top-level key of
	// schema["properties"], with type-appropriate empty defaults for
	// anything the model could not populate.
	ExtractMetadata(ctx context.Context, text string, docType core.DocType, schema map[string]any, promptTemplate string) map[string]any

	// ExtractEntities extracts document-level entities and relationships
	// from text. The result is never nil; on failure both lists are empty.
	ExtractEntities(ctx context.Context, text string) *EntityGraph

	// DescribeImage describes a base64-encoded image, optionally guided
	// by surrounding context. Returns a zero-valued description on failure.
	DescribeImage(ctx context.Context, imageBase64, imageContext string) ImageDescription

	// IsAvailable probes backend liveness. Returns false, never an error,
	// on any connectivity failure.
	IsAvailable(ctx context.Context) bool
}

// EntityGraph is the document-level entity/relationship extraction
// result. Relationships reference entities by name only.
type EntityGraph struct {
	Entities      []core.Entity       `json:"entities"`
	Relationships []core.Relationship `json:"relationships"`
}

// EmptyEntityGraph returns a graph with empty, non-nil lists.
func EmptyEntityGraph() *EntityGraph {
	return &EntityGraph{
		Entities:      []core.Entity{},
		Relationships: []core.Relationship{},
	}
}
