package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/modgen/internal/errors"
	"github.com/opmodel/modgen/internal/testutil"
)

func TestConfigInit_CreatesFile(t *testing.T) {
	home := testutil.Isolate(t)
	configFile := filepath.Join(home, ".modgen", "config.yaml")

	stdout, _, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Config file created")

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "templatesDir:")
	assert.Contains(t, string(data), ".modgen/templates")
	assert.Contains(t, string(data), "output: text")
}

func TestConfigInit_ExistingConfig(t *testing.T) {
	testutil.Isolate(t)

	_, _, err := execute(t, "config", "init")
	require.NoError(t, err)

	_, _, err = execute(t, "config", "init")
	requireExitCode(t, err, oerrors.ExitValidationError)

	_, _, err = execute(t, "config", "init", "--force")
	assert.NoError(t, err)
}

func TestConfigInit_ExplicitPath(t *testing.T) {
	testutil.Isolate(t)
	configFile := filepath.Join(t.TempDir(), "nested", "modgen.yaml")

	_, _, err := execute(t, "config", "init", "--config", configFile)
	require.NoError(t, err)
	assert.FileExists(t, configFile)
}

func TestConfigVet(t *testing.T) {
	testutil.Isolate(t)
	configFile := filepath.Join(t.TempDir(), "config.yaml")

	_, _, err := execute(t, "config", "vet", "--config", configFile)
	requireExitCode(t, err, oerrors.ExitNotFound)

	require.NoError(t, os.WriteFile(configFile, []byte("output: json\nauthor: Ana\n"), 0o644))
	stdout, _, err := execute(t, "config", "vet", "--config", configFile)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Config file is valid")

	require.NoError(t, os.WriteFile(configFile, []byte("output: xml\n"), 0o644))
	_, stderr, err := execute(t, "config", "vet", "--config", configFile)
	requireExitCode(t, err, oerrors.ExitValidationError)
	assert.Contains(t, stderr, "config validation failed")
}
