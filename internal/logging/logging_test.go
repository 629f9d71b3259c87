package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ctrack.log")

	logger, closer, err := New(Options{Path: path, MaxSizeMB: 1, MaxBackups: 1})
	require.NoError(t, err)
	logger.Printf("exported %d campaigns", 3)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ctrack ")
	assert.Contains(t, string(data), "exported 3 campaigns")
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard().Println("nothing") })
}
