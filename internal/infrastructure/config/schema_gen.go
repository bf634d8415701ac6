package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// GenerateSchemaFile writes a JSON schema for Config next to the config
// file, so editors with schema support can complete and check it.
func GenerateSchemaFile() error {
	dir, err := GetConfigDir()
	if err != nil {
		return err
	}

	schema := new(jsonschema.Reflector).Reflect(&Config{})
	schema.ID = "https://github.com/bnema/wring/config.schema.json"
	schema.Title = "Wring Configuration"
	schema.Description = "Configuration schema for wring, a window ordering and focus engine"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, "config.schema.json"), data, filePerm)
}
