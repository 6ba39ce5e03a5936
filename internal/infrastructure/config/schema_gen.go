package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
)

// Schema reflects the JSON schema of the configuration.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference:            true,
		AllowAdditionalProperties: false,
	}
	schema := r.Reflect(&Config{})
	schema.ID = "https://github.com/bnema/corkboard/config.schema.json"
	schema.Title = "Corkboard Configuration"
	schema.Description = "Configuration schema for corkboard, a terminal whiteboard of movable notes"
	return schema
}

// GenerateSchemaFile writes the JSON schema to path.
// This is called automatically when a default config is created.
func GenerateSchemaFile(path string) error {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}
