package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadSchema_Embedded(t *testing.T) {
	sql, err := LoadSchema("")

	require.NoError(t, err)
	require.Contains(t, sql, "CREATE TABLE IF NOT EXISTS companies")
	require.Contains(t, sql, "value_usd")
}

func TestLoadSchema_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.sql")
	require.NoError(t, os.WriteFile(path, []byte("  CREATE TABLE x (id INT);\n"), 0o600))

	sql, err := LoadSchema(path)

	require.NoError(t, err)
	require.Equal(t, "CREATE TABLE x (id INT);", sql)
}

func TestLoadSchema_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.sql")
	require.NoError(t, os.WriteFile(path, []byte("   \n"), 0o600))

	_, err := LoadSchema(path)

	require.ErrorContains(t, err, "schema file is empty")
}

func TestLoadSchema_MissingFile(t *testing.T) {
	_, err := LoadSchema(filepath.Join(t.TempDir(), "missing.sql"))

	require.ErrorContains(t, err, "read schema file")
}
