package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/chorushq/enrichd/core"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	compiledMu sync.Mutex
	compiled   = map[core.DocType]*jsonschema.Schema{}
)

// Validate checks extracted metadata against the document type's
// schema. Intended as a diagnostic after normalization; the adapter
// already guarantees a schema-shaped map on total extraction failure.
func Validate(docType core.DocType, metadata map[string]any) error {
	schema, err := compiledFor(docType)
	if err != nil {
		return err
	}

	// Round-trip through JSON so arbitrary Go values (e.g. []string
	// produced by normalization) become plain decoded JSON values.
	data, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("schema: marshal metadata: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("schema: unmarshal metadata: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("schema: metadata does not match %s schema: %w", docType, err)
	}
	return nil
}

func compiledFor(docType core.DocType) (*jsonschema.Schema, error) {
	compiledMu.Lock()
	defer compiledMu.Unlock()

	if schema, ok := compiled[docType]; ok {
		return schema, nil
	}

	def, err := Lookup(docType)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(def.Schema)
	if err != nil {
		return nil, fmt.Errorf("schema: marshal %s schema: %w", docType, err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("schema: add %s schema: %w", docType, err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("schema: compile %s schema: %w", docType, err)
	}

	compiled[docType] = schema
	return schema, nil
}
