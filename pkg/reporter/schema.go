package reporter

// JSONSchema is the JSON Schema (Draft 2020-12) for the json output format.
const JSONSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "gosmell report",
  "type": "object",
  "required": ["version", "warnings", "summary"],
  "additionalProperties": false,
  "properties": {
    "version": {"type": "string"},
    "warnings": {
      "type": "array",
      "items": {"$ref": "#/$defs/warning"}
    },
    "summary": {
      "type": "object",
      "required": ["examiners", "smelly_examiners", "total_warnings", "by_smell_type"],
      "additionalProperties": false,
      "properties": {
        "examiners": {"type": "integer", "minimum": 0},
        "smelly_examiners": {"type": "integer", "minimum": 0},
        "total_warnings": {"type": "integer", "minimum": 0},
        "by_smell_type": {
          "type": "object",
          "additionalProperties": {"type": "integer", "minimum": 1}
        },
        "by_examiner": {
          "type": "array",
          "items": {"$ref": "#/$defs/examinerCount"}
        }
      }
    }
  },
  "$defs": {
    "examinerCount": {
      "type": "object",
      "required": ["description", "count"],
      "additionalProperties": false,
      "properties": {
        "description": {"type": "string"},
        "count": {"type": "integer", "minimum": 0},
        "smell_types": {
          "type": "array",
          "items": {"type": "string", "minLength": 1}
        }
      }
    },
    "warning": {
      "type": "object",
      "required": ["context", "message", "smell_type"],
      "additionalProperties": false,
      "properties": {
        "context": {"type": "string"},
        "message": {"type": "string"},
        "smell_type": {"type": "string", "minLength": 1},
        "source": {"type": "string"},
        "lines": {
          "type": "array",
          "items": {"type": "integer", "minimum": 1}
        }
      }
    }
  }
}`
