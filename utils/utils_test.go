package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsString(t *testing.T) {
	options := []string{"chicago", "new york city", "washington"}

	assert.True(t, ContainsString("chicago", options))
	assert.True(t, ContainsString("new york city", options))
	assert.False(t, ContainsString("Chicago", options))
	assert.False(t, ContainsString("", options))
	assert.False(t, ContainsString("chicago", nil))
}

func TestNormalizeToken(t *testing.T) {
	tests := map[string]string{
		"  Chicago ":    "chicago",
		"NEW YORK CITY": "new york city",
		"\tmonday\n":    "monday",
		"":              "",
		"   ":           "",
	}

	for input, expected := range tests {
		assert.Equal(t, expected, NormalizeToken(input), "input %q", input)
	}
}

func TestGetConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: info\n"), 0o644))

	content, err := GetConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "log_level: info\n", string(content))

	_, err = GetConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	emptyPath := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(emptyPath, nil, 0o644))
	_, err = GetConfigFile(emptyPath)
	assert.ErrorIs(t, err, ErrEmptyConfigFile)
}
