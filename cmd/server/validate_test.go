package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSampleCatalog(t *testing.T) {
	var out bytes.Buffer
	validateCmd.SetOut(&out)
	t.Cleanup(func() { validateCmd.SetOut(nil) })

	err := runValidate(validateCmd, []string{"../../configs/skilltrees.yaml"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "pool policy: single")
	assert.Contains(t, out.String(), `berserk_tree "Berserk": 9 rows, 8 nodes`)
}

func TestValidateReportsBrokenCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("settings: {pool_policy: shared}"), 0o600))

	err := runValidate(validateCmd, []string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is invalid")
}
