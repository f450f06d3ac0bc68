package mock

import (
	"context"
	"sync"

	"github.com/chorushq/enrichd/ai"
	"github.com/chorushq/enrichd/core"
)

// MockExtractor is a test double for ai.Extractor.
// It allows custom behavior injection via function fields and records
// call arguments for assertions. Safe for concurrent use.
type MockExtractor struct {
	mu sync.Mutex

	// ExtractMetadataFunc is called by ExtractMetadata if set.
	// If nil, a schema-independent canned map is returned.
	ExtractMetadataFunc func(ctx context.Context, text string, docType core.DocType, schema map[string]any, promptTemplate string) map[string]any

	// ExtractEntitiesFunc is called by ExtractEntities if set.
	ExtractEntitiesFunc func(ctx context.Context, text string) *ai.EntityGraph

	// DescribeImageFunc is called by DescribeImage if set.
	DescribeImageFunc func(ctx context.Context, imageBase64, imageContext string) ai.ImageDescription

	// Available is returned by IsAvailable. Defaults to true.
	Available bool

	metadataCalls int
	entityCalls   int
	imageCalls    int
	metadataTexts []string
	entityTexts   []string
	imagePayloads []string
	metadataTypes []core.DocType
}

// NewMockExtractor creates a mock extractor with default behavior.
// Note: returns concrete type to allow test assertions.
func NewMockExtractor() *MockExtractor {
	return &MockExtractor{Available: true}
}

// ExtractMetadata records the call and returns either the injected
// behavior's result or a small canned metadata map.
func (m *MockExtractor) ExtractMetadata(ctx context.Context, text string, docType core.DocType, schema map[string]any, promptTemplate string) map[string]any {
	m.mu.Lock()
	m.metadataCalls++
	m.metadataTexts = append(m.metadataTexts, text)
	m.metadataTypes = append(m.metadataTypes, docType)
	fn := m.ExtractMetadataFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, text, docType, schema, promptTemplate)
	}
	return map[string]any{
		"summary":  "mock summary",
		"keywords": []any{"mock"},
	}
}

// ExtractEntities records the call and returns an empty graph by default.
func (m *MockExtractor) ExtractEntities(ctx context.Context, text string) *ai.EntityGraph {
	m.mu.Lock()
	m.entityCalls++
	m.entityTexts = append(m.entityTexts, text)
	fn := m.ExtractEntitiesFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, text)
	}
	return ai.EmptyEntityGraph()
}

// DescribeImage records the call and returns a zero description by default.
func (m *MockExtractor) DescribeImage(ctx context.Context, imageBase64, imageContext string) ai.ImageDescription {
	m.mu.Lock()
	m.imageCalls++
	m.imagePayloads = append(m.imagePayloads, imageBase64)
	fn := m.DescribeImageFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, imageBase64, imageContext)
	}
	return ai.ImageDescription{DetectedObjects: []string{}}
}

// IsAvailable returns the configured availability.
func (m *MockExtractor) IsAvailable(ctx context.Context) bool {
	return m.Available
}

// MetadataCallCount returns the number of ExtractMetadata calls.
func (m *MockExtractor) MetadataCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.metadataCalls
}

// EntityCallCount returns the number of ExtractEntities calls.
func (m *MockExtractor) EntityCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entityCalls
}

// ImageCallCount returns the number of DescribeImage calls.
func (m *MockExtractor) ImageCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.imageCalls
}

// MetadataTexts returns the texts passed to ExtractMetadata, in order.
func (m *MockExtractor) MetadataTexts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.metadataTexts...)
}

// MetadataDocTypes returns the doc types passed to ExtractMetadata, in order.
func (m *MockExtractor) MetadataDocTypes() []core.DocType {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]core.DocType(nil), m.metadataTypes...)
}

// EntityTexts returns the texts passed to ExtractEntities, in order.
func (m *MockExtractor) EntityTexts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.entityTexts...)
}

// ImagePayloads returns the base64 payloads passed to DescribeImage.
func (m *MockExtractor) ImagePayloads() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.imagePayloads...)
}

// Reset clears recorded calls and custom functions.
func (m *MockExtractor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.metadataCalls = 0
	m.entityCalls = 0
	m.imageCalls = 0
	m.metadataTexts = nil
	m.entityTexts = nil
	m.imagePayloads = nil
	m.metadataTypes = nil
	m.ExtractMetadataFunc = nil
	m.ExtractEntitiesFunc = nil
	m.DescribeImageFunc = nil
	m.Available = true
}
