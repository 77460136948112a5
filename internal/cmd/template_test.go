package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/modgen/internal/errors"
	"github.com/opmodel/modgen/internal/templates"
	"github.com/opmodel/modgen/internal/testutil"
)

func TestTemplateList_Builtins(t *testing.T) {
	testutil.Isolate(t)

	stdout, _, err := execute(t, "template", "list", "-o", "json")
	require.NoError(t, err)

	var entries []templates.Entry
	require.NoError(t, json.Unmarshal([]byte(stdout), &entries))

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
		assert.Equal(t, templates.OriginBuiltin, e.Origin)
	}
	assert.Equal(t, []string{"layered", "simple"}, names)
}

func TestTemplateList_UserTemplateShadowsBuiltin(t *testing.T) {
	home := testutil.Isolate(t)
	root := filepath.Join(home, ".modgen", "templates", "simple")
	require.NoError(t, os.MkdirAll(root, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, templates.DefinitionFile),
		[]byte("name: simple\nsummary: house style\n"), 0o644))

	stdout, _, err := execute(t, "template", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "house style")
	assert.Contains(t, stdout, root)
	assert.Contains(t, stdout, "layered")
}

func TestTemplateShow(t *testing.T) {
	testutil.Isolate(t)

	stdout, _, err := execute(t, "template", "show", "layered")
	require.NoError(t, err)
	assert.Contains(t, stdout, "layered")
	assert.Contains(t, stdout, "code_files")
	assert.Contains(t, stdout, "view.go")
	assert.Contains(t, stdout, "README.md")
	assert.Contains(t, stdout, "mocks")
}

func TestTemplateShow_Unknown(t *testing.T) {
	testutil.Isolate(t)

	_, _, err := execute(t, "template", "show", "nope")
	requireExitCode(t, err, oerrors.ExitNotFound)
}
