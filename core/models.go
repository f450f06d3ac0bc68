package core

import "fmt"

// DocType identifies the kind of document a chunk belongs to.
// The set of types is closed; each type has its own metadata schema
// and prompt template in the schema package.
type DocType string

const (
	DocTypeCode    DocType = "code"
	DocTypeArticle DocType = "article"
	DocTypeEmail   DocType = "email"
	DocTypeMeeting DocType = "meeting"
	DocTypePDF     DocType = "pdf"
	DocTypeSlack   DocType = "slack"
	DocTypeImage   DocType = "image"
	DocTypeText    DocType = "text"
)

// DocTypes lists every supported document type.
var DocTypes = []DocType{
	DocTypeCode,
	DocTypeArticle,
	DocTypeEmail,
	DocTypeMeeting,
	DocTypePDF,
	DocTypeSlack,
	DocTypeImage,
	DocTypeText,
}

// ParseDocType converts a raw string into a DocType.
func ParseDocType(s string) (DocType, error) {
	dt := DocType(s)
	for _, known := range DocTypes {
		if dt == known {
			return dt, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDocType, s)
}

// Task is one chunk of a document to enrich, as leased from the queue.
// Tasks are ephemeral: consumed once, never persisted by this worker.
type Task struct {
	TaskID      string  `json:"taskId"`
	Collection  string  `json:"collection"`
	DocType     DocType `json:"docType"`
	BaseID      string  `json:"baseId"`
	ChunkIndex  int     `json:"chunkIndex"`
	TotalChunks int     `json:"totalChunks"`
	Text        string  `json:"text"`
	Source      string  `json:"source"`
	Attempt     int     `json:"attempt"`

	// AllChunks carries every chunk's text in index order. It is present
	// only on the terminal chunk of a multi-chunk document, where it is
	// required for document-level extraction.
	AllChunks []string `json:"allChunks,omitempty"`
}

// IsLastChunk reports whether this task is the terminal chunk of its
// document. Single-chunk documents are trivially terminal.
func (t *Task) IsLastChunk() bool {
	return t.ChunkIndex == t.TotalChunks-1
}

// ChunkID derives the chunk identifier submitted with the result.
func (t *Task) ChunkID() string {
	return fmt.Sprintf("%s:%d", t.BaseID, t.ChunkIndex)
}

// EntityMention is a named entity recognized by tier-2 extraction.
type EntityMention struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Tier2Result holds the deterministic per-chunk metadata produced by
// tier-2 extraction. Empty text yields empty entity and keyword lists.
type Tier2Result struct {
	Entities []EntityMention `json:"entities"`
	Keywords []string        `json:"keywords"`
	Language string          `json:"language"`
}

// Entity is a document-level entity extracted by the LLM.
type Entity struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Relationship links two document-level entities by name. Source and
// target are referential only; a relationship may name an entity that
// has no corresponding Entity record.
type Relationship struct {
	Source      string `json:"source"`
	Target      string `json:"target"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// ResultPayload is submitted to the API once per task.
//
// Tier3, Entities, Relationships and Summary are populated only on the
// terminal-chunk submission; on every other chunk they marshal as
// explicit nulls, which is why none of them carries omitempty.
type ResultPayload struct {
	TaskID        string         `json:"task_id"`
	ChunkID       string         `json:"chunk_id"`
	Collection    string         `json:"collection"`
	Tier2         *Tier2Result   `json:"tier2"`
	Tier3         map[string]any `json:"tier3"`
	Entities      []Entity       `json:"entities"`
	Relationships []Relationship `json:"relationships"`
	Summary       *string        `json:"summary"`
}
