package schema

const meetingSchemaJSON = `{
  "type": "object",
  "properties": {
    "decisions": {"type": "array", "items": {"type": "string"}},
    "action_items": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "task": {"type": "string"},
          "assignee": {"type": "string"},
          "deadline": {"type": "string"}
        },
        "required": ["task"]
      }
    },
    "topic_segments": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "topic": {"type": "string"},
          "summary": {"type": "string"}
        },
        "required": ["topic", "summary"]
      }
    },
    "summary": {"type": "string"},
    "summary_short": {"type": "string"},
    "summary_medium": {"type": "string"},
    "summary_long": {"type": "string"},
    "keywords": {"type": "array", "items": {"type": "string"}}
  }
}`

const meetingPrompt = `Analyze these meeting notes and extract metadata.

Provide:
- decisions: List of decisions made in the meeting
- action_items: List of action items with task, assignee, and deadline (if mentioned)
- topic_segments: List of topics discussed with a summary for each

Meeting notes:
{text}

Respond with valid JSON matching this schema: {schema}`
