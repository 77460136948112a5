package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPaths(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	paths, err := DefaultPaths()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".modgen"), paths.HomeDir)
	assert.Equal(t, filepath.Join(home, ".modgen", "config.yaml"), paths.ConfigFile)
	assert.Equal(t, filepath.Join(home, ".modgen", "templates"), paths.TemplatesDir)
}

func TestGetConfigFile_Env(t *testing.T) {
	t.Setenv("MODGEN_CONFIG", "/tmp/custom.yaml")
	got, err := GetConfigFile()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.yaml", got)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/abs/path", "/abs/path"},
		{"rel/path", "rel/path"},
		{"~", home},
		{"~/templates", filepath.Join(home, "templates")},
		{"~other/x", "~other/x"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ExpandPath(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
