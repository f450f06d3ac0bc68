package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	extractor, err := NewExtractor()
	require.NoError(t, err)
	return extractor
}

func TestExtractEmptyText(t *testing.T) {
	extractor := newTestExtractor(t)

	for _, text := range []string{"", "   ", "\n\t  \n"} {
		result := extractor.Extract(text)
		require.NotNil(t, result)
		assert.Equal(t, []string{}, result.Keywords)
		assert.Empty(t, result.Entities)
		assert.NotNil(t, result.Entities)
		assert.Equal(t, UnknownLanguage, result.Language)
	}
}

func TestExtractEnglishText(t *testing.T) {
	extractor := newTestExtractor(t)

	text := "Apple Inc. was founded by Steve Jobs in Cupertino. " +
		"The company designs consumer electronics and builds software platforms."

	result := extractor.Extract(text)
	require.NotNil(t, result)

	assert.Equal(t, "en", result.Language)
	assert.NotEmpty(t, result.Keywords)
	for _, mention := range result.Entities {
		assert.NotEmpty(t, mention.Text)
		assert.NotEmpty(t, mention.Label)
	}
}

func TestExtractDeterministic(t *testing.T) {
	extractor := newTestExtractor(t)

	text := "The scheduler dispatches tasks to workers. Workers report task results to the scheduler."
	first := extractor.Extract(text)
	second := extractor.Extract(text)

	assert.Equal(t, first, second)
}

func TestKeywordsStopwordsAndRanking(t *testing.T) {
	analyzer, err := newKeywordAnalyzer()
	require.NoError(t, err)

	keywords := analyzer.keywords(
		"the quick brown fox jumps over the lazy dog and the fox runs", maxKeywords)

	require.NotEmpty(t, keywords)
	// "fox" occurs twice, everything else once.
	assert.Equal(t, "fox", keywords[0])
	assert.NotContains(t, keywords, "the")
	assert.NotContains(t, keywords, "and")
}

func TestKeywordsSkipShortAndNumericTokens(t *testing.T) {
	analyzer, err := newKeywordAnalyzer()
	require.NoError(t, err)

	keywords := analyzer.keywords("go is 42 100.5 compiler compiler", maxKeywords)

	assert.NotContains(t, keywords, "go")
	assert.NotContains(t, keywords, "42")
	assert.NotContains(t, keywords, "100.5")
	assert.Contains(t, keywords, "compiler")
}

func TestKeywordsLimit(t *testing.T) {
	analyzer, err := newKeywordAnalyzer()
	require.NoError(t, err)

	keywords := analyzer.keywords(
		"alpha bravo charlie delta echo foxtrot golf hotel india juliet kilo lima mike", 5)
	assert.Len(t, keywords, 5)
}
