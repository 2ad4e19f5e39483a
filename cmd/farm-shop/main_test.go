package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "farm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o600))
	t.Setenv("FARM_STOCK", "egg:regular:3,milk:gold")
	t.Setenv("FARM_CUSTOMERS", "Ali:33:1st Street")
	t.Setenv("FARM_DISCOUNTS", "milk:10")

	var out bytes.Buffer
	require.NoError(t, validate(path, &out))
	assert.Equal(t, "config ok: 2 stock entries, 1 customers, discounts {MILK=10}\n", out.String())
}

func TestValidate_Errors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "farm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o600))

	t.Run("missing file", func(t *testing.T) {
		var out bytes.Buffer
		require.Error(t, validate(filepath.Join(dir, "missing.yaml"), &out))
		assert.Empty(t, out.String())
	})
	t.Run("bad customer", func(t *testing.T) {
		t.Setenv("FARM_CUSTOMERS", "Ali:phone:1st Street")
		var out bytes.Buffer
		require.Error(t, validate(path, &out))
		assert.Empty(t, out.String())
	})
}
