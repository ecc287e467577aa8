package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

const schemaName = "config.schema.json"

// Schema returns the JSON Schema of the config file. Property names follow
// the TOML keys.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		FieldNameTag:              "toml",
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	schema := r.Reflect(&Config{})
	schema.ID = "https://github.com/bnema/flashmark/config.schema.json"
	schema.Title = "flashmark configuration"
	schema.Description = "Configuration of the flashmark tab and bookmark palette daemon"
	return schema
}

// GenerateSchemaFile writes config.schema.json next to configPath and
// returns its path.
func GenerateSchemaFile(configPath string) (string, error) {
	schemaFile := filepath.Join(filepath.Dir(configPath), schemaName)

	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(schemaFile), dirPerm); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return schemaFile, nil
}
