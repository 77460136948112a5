package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/modgen/internal/errors"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// requireExitCode asserts err carries the given process exit code.
func requireExitCode(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)

	var exitErr *oerrors.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, code, exitErr.Code, "error: %v", err)
}
