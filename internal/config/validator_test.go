package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Validate(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{"empty", &Config{}, false},
		{"defaults", DefaultConfig(), false},
		{"bad output", &Config{Output: "xml"}, true},
		{"whitespace templates dir", &Config{TemplatesDir: "   "}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidator_ValidateFile(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("output: json\n"), 0o644))
	assert.NoError(t, v.ValidateFile(file))

	require.NoError(t, os.WriteFile(file, []byte("output: toml\n"), 0o644))
	err = v.ValidateFile(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestValidationErrors_Error(t *testing.T) {
	assert.Equal(t, "no validation errors", ValidationErrors{}.Error())
	errs := ValidationErrors{{Field: "output", Message: "bad"}}
	assert.Contains(t, errs.Error(), "output: bad")
}
