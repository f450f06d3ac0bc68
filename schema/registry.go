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


// Package schema is the closed registry of per-document-type metadata
// shapes and prompt templates. Each of the eight document types carries
// a JSON schema (sent to the model and used for shape validation) and a
// prompt template with {text}/{schema} placeholders.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/chorushq/enrichd/core"
)

// Definition ties a document type to its metadata shape and prompt.
type Definition struct {
	DocType core.DocType
	Schema  map[string]any
	Prompt  string
}

var registry = map[core.DocType]*Definition{}

func init() {
	shapes := []struct {
		docType    core.DocType
		schemaJSON string
		prompt     string
	}{
		{core.DocTypeArticle, articleSchemaJSON, articlePrompt},
		{core.DocTypeCode, codeSchemaJSON, codePrompt},
		{core.DocTypeEmail, emailSchemaJSON, emailPrompt},
		{core.DocTypeMeeting, meetingSchemaJSON, meetingPrompt},
		{core.DocTypePDF, pdfSchemaJSON, pdfPrompt},
		{core.DocTypeSlack, slackSchemaJSON, slackPrompt},
		{core.DocTypeImage, imageSchemaJSON, imagePrompt},
		{core.DocTypeText, textSchemaJSON, textPrompt},
	}

	for _, s := range shapes {
		var parsed map[string]any
		if err := json.Unmarshal([]byte(s.schemaJSON), &parsed); err != nil {
			panic(fmt.Sprintf("schema: invalid %s schema: %v", s.docType, err))
		}
		registry[s.docType] = &Definition{
			DocType: s.docType,
			Schema:  parsed,
			Prompt:  s.prompt,
		}
	}
}

// Lookup returns the definition for a document type.
func Lookup(docType core.DocType) (*Definition, error) {
	def, ok := registry[docType]
	if !ok {
		return nil, fmt.Errorf("schema: %w: %q", core.ErrUnknownDocType, docType)
	}
	return def, nil
}
