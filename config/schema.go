package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema generates the JSON Schema for wordpad.yml from the Config
// struct. Known sections are strict; unknown top-level keys are allowed so
// that extension sections such as "logging" validate.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		// Nested sections reject unknown fields.
		AllowAdditionalProperties: false,
		// Expand struct references instead of using $ref for a flat schema.
		ExpandedStruct: true,
		DoNotReference: true,
		// Use YAML field names for property names
		FieldNameTag: "yaml",
	}

	schema := r.Reflect(&Config{})
	schema.Title = "Wordpad Configuration"
	schema.Description = "Schema for wordpad.yml properties."
	schema.Version = "http://json-schema.org/draft-07/schema#"
	schema.ID = ""
	schema.AdditionalProperties = nil

	return json.MarshalIndent(schema, "", "  ")
}
