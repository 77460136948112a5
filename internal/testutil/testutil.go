// Package testutil provides test helpers for modgen tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// ProjectManifest is a manifest with the targets used by SampleProject.
const ProjectManifest = `name: Shop
targets:
  - name: Shop
  - name: ShopTests
groups: []
`

// SampleProject is a modgen.yaml routing main files to Sources/<name> and
// tests to Tests/<name>.
const SampleProject = `project_name: Shop
company: Acme
manifest: shop.manifest.yaml
project_file_path: Sources
project_group_path: Shop
project_targets:
  - Shop
test_file_path: Tests
test_group_path: ShopTests
test_targets:
  - ShopTests
default_template: simple
`

// WriteFile creates a file with the given content, creating parent directories.
func WriteFile(t *testing.T, fsys afero.Fs, path, content string) string {
	t.Helper()
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := afero.WriteFile(fsys, path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of path, failing the test if it is unreadable.
func ReadFile(t *testing.T, fsys afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}
	return string(data)
}

// Isolate points the global config and user templates at an empty temp
// directory so tests never read the developer's ~/.modgen.
func Isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("MODGEN_CONFIG", filepath.Join(home, ".modgen", "config.yaml"))
	t.Setenv("MODGEN_TEMPLATES_DIR", filepath.Join(home, ".modgen", "templates"))
	return home
}

// SetupProject writes SampleProject and ProjectManifest into dir on the OS
// filesystem and returns the project file path.
func SetupProject(t *testing.T, dir string) string {
	t.Helper()
	fsys := afero.NewOsFs()
	WriteFile(t, fsys, filepath.Join(dir, "shop.manifest.yaml"), ProjectManifest)
	return WriteFile(t, fsys, filepath.Join(dir, "modgen.yaml"), SampleProject)
}
