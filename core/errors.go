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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidTask indicates a Task failed validation.
	ErrInvalidTask = errors.New("invalid task")

	// ErrUnknownDocType indicates a document type outside the supported set.
	ErrUnknownDocType = errors.New("unknown document type")

	// ErrEmptyTaskID indicates the TaskID field is empty.
	ErrEmptyTaskID = errors.New("task id cannot be empty")

	// ErrEmptyBaseID indicates the BaseID field is empty.
	ErrEmptyBaseID = errors.New("base id cannot be empty")

	// ErrChunkIndexOutOfRange indicates chunkIndex is outside [0, totalChunks).
	ErrChunkIndexOutOfRange = errors.New("chunk index out of range")

	// ErrMissingAllChunks indicates the terminal chunk of a multi-chunk
	// document arrived without the full chunk list.
	ErrMissingAllChunks = errors.New("terminal chunk is missing the full chunk list")
)
