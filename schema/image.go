package schema

const imageSchemaJSON = `{
  "type": "object",
  "properties": {
    "description": {"type": "string"},
    "detected_objects": {"type": "array", "items": {"type": "string"}},
    "ocr_text": {"type": "string"},
    "image_type": {"type": "string"},
    "summary": {"type": "string"},
    "summary_short": {"type": "string"},
    "summary_medium": {"type": "string"},
    "summary_long": {"type": "string"},
    "keywords": {"type": "array", "items": {"type": "string"}}
  }
}`

const imagePrompt = `Describe this image in detail.

Provide:
- description: A detailed description of the image
- detected_objects: List of main objects/entities visible in the image
- ocr_text: Any readable text visible in the image
- image_type: Classification (photo, diagram, screenshot, or chart)

{text}

Respond with valid JSON matching this schema: {schema}`
