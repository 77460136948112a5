package module

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullOptions() Options {
	return Options{
		Name:          "Login",
		Directory:     "/out/Login",
		GroupPath:     "App/Login",
		Targets:       []string{"App"},
		TestDirectory: "/out/Tests/Login",
		TestGroupPath: "Tests/Login",
		TestTargets:   []string{"AppTests"},
		ManifestPath:  "/out/project.yaml",
	}
}

func TestNew_TestConfigPresent(t *testing.T) {
	d := New(fullOptions())

	require.NotNil(t, d.Test)
	assert.Equal(t, filepath.Clean("/out/Tests/Login"), d.Test.Directory)
	assert.Equal(t, "Tests/Login", d.Test.GroupPath)
	assert.Equal(t, []string{"AppTests"}, d.Test.Targets)
	assert.Equal(t, "Tests/Login", d.TestGroupPath)
}

func TestNew_PartialTestConfigDisablesTests(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
	}{
		{"no test targets", func(o *Options) { o.TestTargets = nil }},
		{"blank test targets", func(o *Options) { o.TestTargets = []string{" ", ""} }},
		{"no test group", func(o *Options) { o.TestGroupPath = "" }},
		{"no test directory", func(o *Options) { o.TestDirectory = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := fullOptions()
			tt.modify(&opts)

			d := New(opts)
			assert.Nil(t, d.Test)
			assert.Equal(t, CleanGroupPath(opts.TestGroupPath), d.TestGroupPath)
		})
	}
}

func TestNew_KeepsRawTestSettingsWhenTestsDisabled(t *testing.T) {
	opts := fullOptions()
	opts.TestTargets = nil
	opts.TestGroupPath = "/Tests/Login/"

	d := New(opts)
	assert.Nil(t, d.Test)
	assert.Equal(t, filepath.Clean("/out/Tests/Login"), d.TestDirectory)
	assert.Equal(t, "Tests/Login", d.TestGroupPath)
}

func TestNew_DedupesTargets(t *testing.T) {
	opts := fullOptions()
	opts.Targets = []string{"App", "Widget", "App", ""}

	d := New(opts)
	assert.Equal(t, []string{"App", "Widget"}, d.Targets)
}

func TestNew_CopiesCustom(t *testing.T) {
	opts := fullOptions()
	opts.Custom = map[string]string{"owner": "growth"}

	d := New(opts)
	opts.Custom["owner"] = "changed"
	assert.Equal(t, "growth", d.Custom["owner"])
}

func TestCleanGroupPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{".", ""},
		{"/", ""},
		{"Login", "Login"},
		{"/App/Login/", "App/Login"},
		{"App//Login", "App/Login"},
		{"App/./Login", "App/Login"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanGroupPath(tt.in))
		})
	}
}
