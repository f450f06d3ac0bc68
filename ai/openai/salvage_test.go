package openai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSONContentDirect(t *testing.T) {
	parsed, ok := parseJSONContent(`  {"key": "value"}  `)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"key": "value"}, parsed)
}

func TestParseJSONContentFencedBlock(t *testing.T) {
	parsed, ok := parseJSONContent("```json\n{\"key\":\"value\"}\n```")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"key": "value"}, parsed)

	// Plain fence without a language tag.
	parsed, ok = parseJSONContent("```\n{\"key\":\"value\"}\n```")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"key": "value"}, parsed)
}

func TestParseJSONContentBraceSlice(t *testing.T) {
	parsed, ok := parseJSONContent(`Here is {"key":"value"} done`)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"key": "value"}, parsed)
}

func TestParseJSONContentNotJSON(t *testing.T) {
	_, ok := parseJSONContent("not json")
	assert.False(t, ok)

	_, ok = parseJSONContent("")
	assert.False(t, ok)

	// A bare array is not an object.
	_, ok = parseJSONContent("[1, 2, 3]")
	assert.False(t, ok)
}

func TestParseJSONContentRepairsUnquotedKeys(t *testing.T) {
	parsed, ok := parseJSONContent(`{ key": "value", other": 1}`)
	require.True(t, ok)
	assert.Equal(t, "value", parsed["key"])
	assert.Equal(t, float64(1), parsed["other"])
}

func TestBraceSlice(t *testing.T) {
	assert.Equal(t, `{"a":1}`, braceSlice(`xx {"a":1} yy`))
	assert.Equal(t, "", braceSlice("no braces here"))
	assert.Equal(t, "", braceSlice("} reversed {"))
}

func TestEmptyForSchema(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary":  map[string]any{"type": "string"},
			"keywords": map[string]any{"type": "array"},
			"invoice":  map[string]any{"type": "object"},
			"score":    map[string]any{"type": "number"},
		},
	}

	result := emptyForSchema(schema)
	assert.Equal(t, "", result["summary"])
	assert.Equal(t, []any{}, result["keywords"])
	assert.Equal(t, map[string]any{}, result["invoice"])

	// Types without a defined empty default stay absent.
	_, ok := result["score"]
	assert.False(t, ok)
}

func TestEmptyForSchemaNoProperties(t *testing.T) {
	assert.Empty(t, emptyForSchema(map[string]any{"type": "object"}))
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", truncateText("short", 8000))

	long := strings.Repeat("a", 9000)
	assert.Len(t, truncateText(long, 8000), 8000)

	// Never splits a multi-byte rune.
	runes := strings.Repeat("日", 10)
	truncated := truncateText(runes, 5)
	assert.Equal(t, strings.Repeat("日", 5), truncated)
}
