package schema

const textSchemaJSON = `{
  "type": "object",
  "properties": {
    "summary": {"type": "string"},
    "summary_short": {"type": "string"},
    "summary_medium": {"type": "string"},
    "summary_long": {"type": "string"},
    "keywords": {"type": "array", "items": {"type": "string"}},
    "key_entities": {"type": "array", "items": {"type": "string"}}
  }
}`

const textPrompt = `Analyze this text and extract metadata.

Provide:
- summary: A concise summary of the text
- key_entities: List of key entities, names, or concepts mentioned

Text:
{text}

Respond with valid JSON matching this schema: {schema}`
