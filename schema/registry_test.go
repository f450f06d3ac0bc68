package schema

import (
	"strings"
	"testing"

	"github.com/chorushq/enrichd/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCoversAllDocTypes(t *testing.T) {
	for _, docType := range core.DocTypes {
		def, err := Lookup(docType)
		require.NoError(t, err, "doc type %s", docType)
		assert.Equal(t, docType, def.DocType)
		assert.Equal(t, "object", def.Schema["type"])
		assert.NotEmpty(t, def.Schema["properties"])
		assert.Contains(t, def.Prompt, "{text}")
		assert.Contains(t, def.Prompt, "{schema}")
	}
}

func TestLookupUnknownType(t *testing.T) {
	_, err := Lookup("spreadsheet")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrUnknownDocType)
}

// The summary family is shared by every text-bearing document type.
func TestSummaryFamilyPresent(t *testing.T) {
	for _, docType := range core.DocTypes {
		def, err := Lookup(docType)
		require.NoError(t, err)

		props, ok := def.Schema["properties"].(map[string]any)
		require.True(t, ok)
		for _, field := range []string{"summary", "summary_short", "summary_medium", "summary_long"} {
			assert.Contains(t, props, field, "%s schema missing %s", docType, field)
		}
	}
}

func TestPDFSchemaCarriesInvoice(t *testing.T) {
	def, err := Lookup(core.DocTypePDF)
	require.NoError(t, err)

	props := def.Schema["properties"].(map[string]any)
	invoice, ok := props["invoice"].(map[string]any)
	require.True(t, ok)

	invoiceProps := invoice["properties"].(map[string]any)
	for _, field := range []string{"is_invoice", "invoice_number", "invoice_identifier", "invoice_date", "line_items"} {
		assert.Contains(t, invoiceProps, field)
	}
}

func TestValidateAcceptsConformingMetadata(t *testing.T) {
	metadata := map[string]any{
		"summary":        "An article about Go.",
		"summary_short":  "Go article.",
		"summary_medium": "An article about Go.",
		"summary_long":   "A longer article about Go and its ecosystem.",
		"keywords":       []string{"go", "concurrency"},
		"takeaways":      []any{"goroutines are cheap"},
		"tags":           []any{},
		"target_audience": "engineers",
	}
	require.NoError(t, Validate(core.DocTypeArticle, metadata))
}

func TestValidateRejectsWrongTypes(t *testing.T) {
	err := Validate(core.DocTypeArticle, map[string]any{"keywords": "not-a-list"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "article"))
}

func TestValidateAcceptsNullInvoiceIdentifier(t *testing.T) {
	metadata := map[string]any{
		"summary": "An invoice.",
		"invoice": map[string]any{
			"is_invoice":         true,
			"invoice_number":     "INV-001",
			"invoice_identifier": nil,
		},
	}
	require.NoError(t, Validate(core.DocTypePDF, metadata))
}
