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


// Package ai defines the boundary to LLM backends used by enrichd.
//
// The central abstraction is Extractor: structured metadata extraction,
// entity/relationship extraction and image description behind one
// interface, with a never-fail contract: implementations degrade to
// schema-shaped empty values instead of returning errors, so a chunk
// that cannot be LLM-enriched still produces a well-formed result.
//
// # Implementation Packages
//
//   - ai/openai: the OpenAI-compatible adapter (langchaingo transport)
//   - ai/ollama: configuration specialization for local Ollama servers
//   - ai/anthropic: configuration specialization for Anthropic's
//     OpenAI-compatible endpoint
//   - ai/mock: test doubles for unit testing without a backend
//
// Ollama and Anthropic are thin constructors over ai/openai that only
// adjust base URL, key fallback and model defaults. All
// three providers speak the same chat-completions protocol.
//
// # Provider Selection
//
// ResolveProvider picks the backend once at startup: an explicit
// setting wins, otherwise key-presence decides (openai, then anthropic,
// then ollama). An unrecognized explicit value is a fatal configuration
// error; the process must not start.
//
//	provider, err := ai.ResolveProvider(os.Getenv("EXTRACTOR_PROVIDER"),
//	    os.Getenv("OPENAI_API_KEY"), os.Getenv("ANTHROPIC_API_KEY"))
//
// Constructors return the Extractor interface rather than concrete
// adapter types so the pipeline never couples to a specific backend.
package ai
