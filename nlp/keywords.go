package nlp

import (
	"sort"
	"strings"
	"unicode"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/mapping"
)

// maxKeywords caps the keyword list per chunk.
const maxKeywords = 10

// minKeywordLen drops tokens too short to be useful keywords.
const minKeywordLen = 3

// keywordAnalyzer extracts keywords by frequency over a token stream.
// The standard analyzer (unicode tokenizer + lowercase + English stop
// words) is used deliberately: no stemming, so keywords stay readable
// words rather than stems.
type keywordAnalyzer struct {
	mapping *mapping.IndexMappingImpl
}

func newKeywordAnalyzer() (*keywordAnalyzer, error) {
	im := bleve.NewIndexMapping()
	// Analyze once at construction so a broken analyzer registry
	// surfaces here instead of on the first task.
	if _, err := im.AnalyzeText(standard.Name, []byte("probe")); err != nil {
		return nil, err
	}
	return &keywordAnalyzer{mapping: im}, nil
}

// keywords returns up to limit keywords ordered by descending frequency,
// ties broken by first occurrence. Deterministic for identical input.
func (a *keywordAnalyzer) keywords(text string, limit int) []string {
	tokens, err := a.mapping.AnalyzeText(standard.Name, []byte(text))
	if err != nil {
		return []string{}
	}

	type candidate struct {
		term  string
		count int
		first int
	}

	byTerm := map[string]*candidate{}
	order := make([]*candidate, 0, len(tokens))
	for i, token := range tokens {
		term := string(token.Term)
		if len(term) < minKeywordLen || isNumeric(term) {
			continue
		}
		if existing, ok := byTerm[term]; ok {
			existing.count++
			continue
		}
		c := &candidate{term: term, count: 1, first: i}
		byTerm[term] = c
		order = append(order, c)
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].count != order[j].count {
			return order[i].count > order[j].count
		}
		return order[i].first < order[j].first
	})

	if len(order) > limit {
		order = order[:limit]
	}
	keywords := make([]string, len(order))
	for i, c := range order {
		keywords[i] = c.term
	}
	return keywords
}

func isNumeric(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return !unicode.IsDigit(r) && r != '.' && r != ','
	}) < 0
}
