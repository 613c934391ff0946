package main

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand_ValidConfig(t *testing.T) {
	binaryPath := getBinaryPath(t)

	schemaPath := filepath.Join("..", "..", "schemas", "config.schema.json")
	jsonPath := writeTempFile(t, t.TempDir(), "config.json",
		`{"weights": {"critical": 3, "important": 2, "nice": 1}}`)

	cmd := exec.Command(binaryPath, "validate", "--schema", schemaPath, "--json", jsonPath)
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, string(output), "is valid against")
}

func TestValidateCommand_InvalidDocument(t *testing.T) {
	binaryPath := getBinaryPath(t)

	schemaPath := filepath.Join("..", "..", "schemas", "config.schema.json")
	jsonPath := writeTempFile(t, t.TempDir(), "config.json",
		`{"weights": {"critical": "high"}}`)

	cmd := exec.Command(binaryPath, "validate", "--schema", schemaPath, "--json", jsonPath)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "validation failed")
}

func TestValidateCommand_MissingSchema(t *testing.T) {
	binaryPath := getBinaryPath(t)

	jsonPath := writeTempFile(t, t.TempDir(), "doc.json", `{}`)

	cmd := exec.Command(binaryPath, "validate", "--schema", "no-such.schema.json", "--json", jsonPath)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "not found")
}
