package schema

const pdfSchemaJSON = `{
  "type": "object",
  "properties": {
    "summary": {"type": "string"},
    "summary_short": {"type": "string"},
    "summary_medium": {"type": "string"},
    "summary_long": {"type": "string"},
    "keywords": {"type": "array", "items": {"type": "string"}},
    "key_entities": {"type": "array", "items": {"type": "string"}},
    "sections": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "title": {"type": "string"},
          "summary": {"type": "string"}
        }
      }
    },
    "invoice": {
      "type": "object",
      "properties": {
        "is_invoice": {"type": "boolean"},
        "sender": {"type": "string"},
        "receiver": {"type": "string"},
        "invoice_identifier": {"type": ["string", "null"]},
        "invoice_number": {"type": "string"},
        "invoice_date": {"type": "string"},
        "due_date": {"type": "string"},
        "currency": {"type": "string"},
        "subtotal": {"type": "string"},
        "vat_amount": {"type": "string"},
        "total_amount": {"type": "string"},
        "line_items": {
          "type": "array",
          "items": {
            "type": "object",
            "properties": {
              "description": {"type": "string"},
              "quantity": {"type": "string"},
              "unit_price": {"type": "string"},
              "amount": {"type": "string"},
              "vat_rate": {"type": "string"}
            }
          }
        }
      }
    }
  }
}`

const pdfPrompt = `Analyze this PDF document and extract metadata.

Provide:
- summary: An overall summary of the document
- summary_short: A one-sentence summary (<=20 words)
- summary_medium: A 2-3 sentence summary
- summary_long: A comprehensive summary (4-6 sentences)
- keywords: List of key topics or concepts (5-10 items)
- key_entities: List of key entities, names, or concepts mentioned
- sections: List of major sections with title and summary
- invoice: Invoice metadata (set is_invoice to true if this is an invoice,
  and populate all relevant fields including sender, receiver, dates, amounts, and line_items)

PDF content:
{text}

Respond with valid JSON matching this schema: {schema}`
