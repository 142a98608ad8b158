package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"eshop-fixtures/internal/logger"
	"eshop-fixtures/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand(&out, logger.Nop())
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	err := root.Execute()
	return out.String(), err
}

func TestRootPrintsJSONBundle(t *testing.T) {
	out, err := execute(t, "--order-date", "2024-05-01T12:00:00Z")
	require.NoError(t, err)

	var decoded map[string][]map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Len(t, decoded, 8)
	assert.Len(t, decoded["catalogItems"], 20)
	assert.Equal(t, "2024-05-01T12:00:00Z", decoded["orders"][0]["orderDate"])
}

func TestRootIsDeterministicWithFixedOrderDate(t *testing.T) {
	first, err := execute(t, "--order-date", "2024-05-01T12:00:00Z")
	require.NoError(t, err)
	second, err := execute(t, "--order-date", "2024-05-01T12:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRootRejectsBadOrderDate(t *testing.T) {
	_, err := execute(t, "--order-date", "yesterday")
	assert.ErrorContains(t, err, "parse --order-date")
}

func TestDumpFormats(t *testing.T) {
	out, err := execute(t, "dump", "--format", "dump")
	require.NoError(t, err)
	assert.Contains(t, out, "identityGUID")

	out, err = execute(t, "dump", "--format", "json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))

	_, err = execute(t, "dump", "--format", "xml")
	assert.ErrorIs(t, err, render.ErrUnknownFormat)
}

func TestDumpDefaultsToOutputFormatEnv(t *testing.T) {
	t.Setenv("OUTPUT_FORMAT", "dump")

	out, err := execute(t, "dump")
	require.NoError(t, err)
	assert.False(t, json.Valid([]byte(out)))
	assert.Contains(t, out, "CatalogItems:")
}

func TestImportRequiresFile(t *testing.T) {
	_, err := execute(t, "import")
	assert.ErrorContains(t, err, `"file" not set`)
}

func TestImportMissingFile(t *testing.T) {
	_, err := execute(t, "import", "--file", t.TempDir()+"/missing.csv")
	assert.ErrorContains(t, err, "open file")
}

func TestServeRejectsUnknownStore(t *testing.T) {
	_, err := execute(t, "serve", "--store", "redis")
	assert.ErrorContains(t, err, `unknown store "redis"`)
}

func TestUnknownSubcommand(t *testing.T) {
	_, err := execute(t, "nope")
	assert.Error(t, err)
}
