package engine

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// specSchema validates transform requests arriving over the wire before they
// are decoded. groupBy mirrors GroupBy: a single path or an ordered array.
const specSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["groupBy", "aggregations"],
  "properties": {
    "groupBy": {
      "oneOf": [
        {"type": "string", "minLength": 1},
        {"type": "array", "items": {"type": "string", "minLength": 1}, "minItems": 1}
      ]
    },
    "aggregations": {
      "type": "object",
      "additionalProperties": {
        "type": "string",
        "enum": ["sum", "avg", "min", "max", "count"]
      }
    },
    "sortBy": {
      "type": "object",
      "required": ["field", "order"],
      "properties": {
        "field": {"type": "string", "minLength": 1},
        "order": {"type": "string", "enum": ["asc", "desc"]}
      }
    }
  },
  "additionalProperties": false
}`

// ValidateSpecJSON checks a raw transform spec document against the schema
// and reports every violation in one error.
func ValidateSpecJSON(doc []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(specSchema)
	documentLoader := gojsonschema.NewBytesLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("spec validation failed: %w", err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("invalid transform spec: %s", strings.Join(problems, "; "))
}
