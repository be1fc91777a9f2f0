package watch

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSourceEvent(t *testing.T) {
	w := &Watcher{subdir: "askit"}

	assert.True(t, w.isSourceEvent(filepath.Join("pkg", "calc.go")))
	assert.False(t, w.isSourceEvent(filepath.Join("pkg", "notes.md")))
	assert.False(t, w.isSourceEvent(filepath.Join("pkg", "askit", "Ask_0000000000000000.go")),
		"generated output must not retrigger the pass")
	assert.False(t, w.isSourceEvent(filepath.Join("pkg", ".calc.go.swp")))
}

func TestOwnWriteSuppression(t *testing.T) {
	w := &Watcher{subdir: "askit"}

	// One mark suppresses exactly one event.
	w.MarkOwnWrite()
	assert.True(t, w.checkOwnWrite())
	assert.False(t, w.checkOwnWrite())

	// One mark per file written back.
	w.MarkOwnWrite()
	w.MarkOwnWrite()
	assert.True(t, w.checkOwnWrite())
	assert.True(t, w.checkOwnWrite())
	assert.False(t, w.checkOwnWrite())
}

func TestNewRejectsMissingDirectory(t *testing.T) {
	_, err := New([]string{filepath.Join(t.TempDir(), "absent")}, "askit", func() error { return nil })
	require.Error(t, err)
}
