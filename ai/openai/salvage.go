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


package openai

import (
	"encoding/json"
	"regexp"
	"strings"
)

var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// unquotedKey matches an object key that lost its opening quote, e.g.
// `{ type": "x"}` -> `{ "type": "x"}`. Local models drop the opening
// quote often enough that repairing it rescues otherwise valid output.
var unquotedKey = regexp.MustCompile(`([{,]\s*)([A-Za-z][A-Za-z0-9_ ]*?)\s*":`)

// parseJSONContent salvages a JSON object from free-text model output.
//
// Three stages, in order; the first that yields a valid object wins:
//  1. direct parse of the trimmed response
//  2. parse of the first fenced code block
//  3. parse of the substring from the first '{' to the last '}'
//
// Each stage retries once after repairing unquoted keys. Returns false
// when no stage produces a JSON object.
func parseJSONContent(content string) (map[string]any, bool) {
	stripped := strings.TrimSpace(content)
	if stripped == "" {
		return nil, false
	}

	if parsed, ok := tryParseObject(stripped); ok {
		return parsed, true
	}

	if match := fencedBlock.FindStringSubmatch(stripped); match != nil {
		if parsed, ok := tryParseObject(braceSlice(match[1])); ok {
			return parsed, true
		}
	}

	if parsed, ok := tryParseObject(braceSlice(stripped)); ok {
		return parsed, true
	}

	return nil, false
}

// tryParseObject parses s into a JSON object, retrying once with
// repaired keys.
func tryParseObject(s string) (map[string]any, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(s), &result); err == nil {
		return result, true
	}
	if err := json.Unmarshal([]byte(repairJSON(s)), &result); err == nil {
		return result, true
	}
	return nil, false
}

// braceSlice returns the substring spanning the first '{' through the
// last '}', or "" when no such span exists.
func braceSlice(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}

// repairJSON restores opening quotes on object keys that have only the
// closing quote.
func repairJSON(s string) string {
	return unquotedKey.ReplaceAllString(s, `$1"$2":`)
}

// emptyForSchema builds the degraded result for a failed extraction:
// every top-level schema property present with a type-appropriate empty
// value. Property types outside array/string/object are left absent.
func emptyForSchema(schema map[string]any) map[string]any {
	result := map[string]any{}
	properties, ok := schema["properties"].(map[string]any)
	if !ok {
		return result
	}
	for key, raw := range properties {
		prop, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		switch prop["type"] {
		case "array":
			result[key] = []any{}
		case "string":
			result[key] = ""
		case "object":
			result[key] = map[string]any{}
		}
	}
	return result
}
