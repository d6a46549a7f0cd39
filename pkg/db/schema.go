package db

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed schema.sql
var embeddedSchema string

// LoadSchema returns the schema at schemaPath, or the embedded default when
// schemaPath is empty.
func LoadSchema(schemaPath string) (string, error) {
	raw := embeddedSchema
	if schemaPath != "" {
		bytes, err := os.ReadFile(schemaPath)
		if err != nil {
			return "", fmt.Errorf("read schema file: %w", err)
		}
		raw = string(bytes)
	}

	sql := strings.TrimSpace(raw)
	if sql == "" {
		return "", fmt.Errorf("schema file is empty: %s", schemaSource(schemaPath))
	}
	return sql, nil
}

func schemaSource(schemaPath string) string {
	if schemaPath == "" {
		return "embedded"
	}
	return schemaPath
}
