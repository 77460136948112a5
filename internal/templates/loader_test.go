package templates

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/modgen/internal/errors"
)

func TestParse_Valid(t *testing.T) {
	tmpl, err := Parse([]byte(`name: viper
summary: VIPER module
code_files:
  - name: Views/
  - name: Views/View.swift
    path: Code/View.swift.tmpl
  - name: Assets.xcassets
    path: Code/Assets.tmpl
    is_resource: true
test_files:
  - name: Tests.swift
    path: Tests/Tests.swift.tmpl
    file_name: "{{ .ModuleName }}Tests.swift"
`))
	require.NoError(t, err)

	assert.Equal(t, "viper", tmpl.Name)
	require.Len(t, tmpl.MainFiles, 3)
	assert.False(t, tmpl.MainFiles[0].HasFilePath())
	assert.Equal(t, "Views", tmpl.MainFiles[0].DirectoryName())
	assert.True(t, tmpl.MainFiles[1].HasFilePath())
	assert.Equal(t, "Views", tmpl.MainFiles[1].GroupDir())
	assert.True(t, tmpl.MainFiles[2].IsResource)
	assert.Equal(t, ".", tmpl.MainFiles[2].GroupDir())
	require.Len(t, tmpl.TestFiles, 1)
	assert.Equal(t, "{{ .ModuleName }}Tests.swift", tmpl.TestFiles[0].FileName)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		field string
	}{
		{"empty", "", ""},
		{"unknown top-level field", "name: a\nextra: true\n", ""},
		{"unknown file field", "name: a\ncode_files:\n  - name: x\n    template: y\n", ""},
		{"missing name", "summary: nameless\n", ""},
		{"bad name", "name: 1abc\n", ""},
		{"empty file name", "name: a\ncode_files:\n  - name: \"\"\n    path: x.tmpl\n", ""},
		{"resource directory", "name: a\ncode_files:\n  - name: dir/\n    is_resource: true\n", "code_files[0]"},
		{"directory file_name", "name: a\ntest_files:\n  - name: ok.go\n    path: ok.tmpl\n  - name: dir/\n    file_name: x\n", "test_files[1]"},
		{"slash-only directory", "name: a\ncode_files:\n  - name: /\n", "code_files[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, oerrors.ErrValidation)

			if tt.field != "" {
				var detail *oerrors.DetailError
				require.ErrorAs(t, err, &detail)
				assert.Equal(t, tt.field, detail.Field)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		DefinitionFile: {Data: []byte("name: mini\ncode_files:\n  - name: a.txt\n    path: a.tmpl\n")},
		"a.tmpl":     {Data: []byte("hello {{ .ModuleName }}")},
	}

	tmpl, err := Load(fsys, "/templates/mini")
	require.NoError(t, err)
	assert.Equal(t, "mini", tmpl.Name)
	assert.Equal(t, "/templates/mini", tmpl.Origin)
	assert.NotNil(t, tmpl.FS)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "/templates/none")
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrNotFound)
}

func TestLoad_InvalidKeepsOrigin(t *testing.T) {
	fsys := fstest.MapFS{DefinitionFile: {Data: []byte("name: a\nbogus: 1\n")}}

	_, err := Load(fsys, "/templates/a")
	var detail *oerrors.DetailError
	require.ErrorAs(t, err, &detail)
	assert.Equal(t, "/templates/a", detail.Location)
}
