package rewrite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveGeneratedModule_Absent(t *testing.T) {
	dir := t.TempDir()
	ref := ResolveGeneratedModule(filepath.Join(dir, "unit.go"), "askit", "Ask_0000000000000000")
	assert.Equal(t, filepath.Join(dir, "askit", "Ask_0000000000000000.go"), ref.Path)
	assert.False(t, ref.Exists)
}

func TestResolveGeneratedModule_Present(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "askit"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "askit", "Ask_0000000000000000.go"),
		[]byte("package askit\n"), 0o644))

	ref := ResolveGeneratedModule(filepath.Join(dir, "unit.go"), "askit", "Ask_0000000000000000")
	assert.True(t, ref.Exists)
}
