package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteContentsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unit.service")

	err := WriteContentsToFile([]byte("[Unit]\n"), path)

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[Unit]\n", string(data))
}

func TestIsCommandAvailable(t *testing.T) {
	assert.True(t, IsCommandAvailable("sh"))
	assert.False(t, IsCommandAvailable("definitely-not-a-command"))
}
