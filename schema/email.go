package schema

const emailSchemaJSON = `{
  "type": "object",
  "properties": {
    "urgency": {"type": "string"},
    "intent": {"type": "string"},
    "action_items": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "task": {"type": "string"},
          "assignee": {"type": "string"}
        },
        "required": ["task"]
      }
    },
    "summary": {"type": "string"},
    "summary_short": {"type": "string"},
    "summary_medium": {"type": "string"},
    "summary_long": {"type": "string"},
    "keywords": {"type": "array", "items": {"type": "string"}}
  }
}`

const emailPrompt = `Analyze this email and extract metadata.

Provide:
- urgency: Urgency level (low, normal, high, or critical)
- intent: Main intent (request, fyi, approval, or escalation)
- action_items: List of action items mentioned with task and assignee if specified
- summary: A brief summary of the email

Email:
{text}

Respond with valid JSON matching this schema: {schema}`
