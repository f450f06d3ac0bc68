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
	"fmt"
	"strings"
)

// summaryChain orders the summary fields from source to shortest. Each
// empty field is backfilled from the nearest populated longer one, with
// the plain summary acting only as a source of last resort.
var summaryChain = []string{"summary", "summary_long", "summary_medium", "summary_short"}

// summaryFields are the fields eligible for the invoice date annotation.
var summaryFields = []string{"summary", "summary_short", "summary_medium", "summary_long"}

// NormalizeMetadata applies the post-extraction cleanup rules to tier-3
// metadata and returns a new map. The input is never mutated, and the
// function is idempotent: applying it twice yields the same result.
func NormalizeMetadata(metadata map[string]any) map[string]any {
	result := make(map[string]any, len(metadata))
	for k, v := range metadata {
		result[k] = v
	}
	if invoice, ok := result["invoice"].(map[string]any); ok {
		clone := make(map[string]any, len(invoice))
		for k, v := range invoice {
			clone[k] = v
		}
		result["invoice"] = clone
	}

	cascadeSummaries(result)
	fallbackKeywords(result)
	cleanKeywords(result)
	syncInvoiceIdentifier(result)
	annotateInvoiceDate(result)

	return result
}

func cascadeSummaries(m map[string]any) {
	for i := 1; i < len(summaryChain); i++ {
		if stringField(m, summaryChain[i]) != "" {
			continue
		}
		for j := i - 1; j >= 0; j-- {
			if s := stringField(m, summaryChain[j]); s != "" {
				m[summaryChain[i]] = s
				break
			}
		}
	}
}

func fallbackKeywords(m map[string]any) {
	if len(cleanList(stringList(m["keywords"]))) > 0 {
		return
	}
	entities := cleanList(stringList(m["key_entities"]))
	if len(entities) > 0 {
		m["keywords"] = entities
	}
}

func cleanKeywords(m map[string]any) {
	if _, ok := m["keywords"]; !ok {
		return
	}
	m["keywords"] = cleanList(stringList(m["keywords"]))
}

func syncInvoiceIdentifier(m map[string]any) {
	invoice, ok := m["invoice"].(map[string]any)
	if !ok || !boolField(invoice, "is_invoice") {
		return
	}
	if stringField(invoice, "invoice_identifier") != "" {
		return
	}
	if num := stringField(invoice, "invoice_number"); num != "" {
		invoice["invoice_identifier"] = num
	}
}

func annotateInvoiceDate(m map[string]any) {
	invoice, ok := m["invoice"].(map[string]any)
	if !ok || !boolField(invoice, "is_invoice") {
		return
	}
	date := stringField(invoice, "invoice_date")
	if date == "" {
		return
	}
	number := stringField(invoice, "invoice_identifier")
	if number == "" {
		number = stringField(invoice, "invoice_number")
	}

	var annotation string
	if number != "" {
		annotation = fmt.Sprintf("Invoice %s dated %s.", number, date)
	} else {
		annotation = fmt.Sprintf("Invoice dated %s.", date)
	}

	for _, field := range summaryFields {
		s := stringField(m, field)
		if s == "" || strings.Contains(s, date) {
			continue
		}
		m[field] = strings.TrimRight(s, " ") + " " + annotation
	}
}

// stringField returns the value under key when it is a non-empty-safe
// string, or "" for anything else.
func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func boolField(m map[string]any, key string) bool {
	b, _ := m[key].(bool)
	return b
}

// stringList coerces a metadata list value into a string slice,
// dropping entries that are not strings.
func stringList(v any) []string {
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// cleanList trims whitespace from each entry and drops the ones that
// end up empty, preserving order.
func cleanList(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
