package schema

const articleSchemaJSON = `{
  "type": "object",
  "properties": {
    "summary": {"type": "string"},
    "summary_short": {"type": "string"},
    "summary_medium": {"type": "string"},
    "summary_long": {"type": "string"},
    "keywords": {"type": "array", "items": {"type": "string"}},
    "takeaways": {"type": "array", "items": {"type": "string"}},
    "tags": {"type": "array", "items": {"type": "string"}},
    "target_audience": {"type": "string"}
  }
}`

const articlePrompt = `Analyze this article and extract metadata.

Provide:
- summary: A summary of the article
- summary_short: A one-sentence summary (<=20 words)
- summary_medium: A 2-3 sentence summary
- summary_long: A comprehensive summary (4-6 sentences)
- keywords: List of key topics or concepts (5-10 items)
- takeaways: List of key takeaways or main points
- tags: List of relevant tags or topics
- target_audience: Description of the intended audience

Article:
{text}

Respond with valid JSON matching this schema: {schema}`
