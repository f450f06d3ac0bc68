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

import "fmt"

// ValidateTask validates a Task according to domain rules.
//
// Validation rules:
//   - TaskID and BaseID must not be empty
//   - DocType must be one of the supported types
//   - TotalChunks must be at least 1
//   - 0 <= ChunkIndex < TotalChunks
//   - the terminal chunk of a multi-chunk document must carry AllChunks
//     with exactly TotalChunks elements
//
// NOT validated:
//   - Text (an empty chunk is legal; tier-2 handles it deterministically)
//   - Attempt (bookkeeping owned by the queue collaborator)
func ValidateTask(task *Task) error {
	if task == nil {
		return fmt.Errorf("%w: task is nil", ErrInvalidTask)
	}

	if task.TaskID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTask, ErrEmptyTaskID)
	}

	if task.BaseID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTask, ErrEmptyBaseID)
	}

	if _, err := ParseDocType(string(task.DocType)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTask, err)
	}

	if task.TotalChunks < 1 || task.ChunkIndex < 0 || task.ChunkIndex >= task.TotalChunks {
		return fmt.Errorf("%w: %w: index %d of %d",
			ErrInvalidTask, ErrChunkIndexOutOfRange, task.ChunkIndex, task.TotalChunks)
	}

	if task.TotalChunks > 1 && task.IsLastChunk() && len(task.AllChunks) != task.TotalChunks {
		return fmt.Errorf("%w: %w: got %d of %d chunks",
			ErrInvalidTask, ErrMissingAllChunks, len(task.AllChunks), task.TotalChunks)
	}

	return nil
}
