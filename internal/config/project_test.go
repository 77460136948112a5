package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/modgen/internal/errors"
)

const sampleProject = `project_name: Shop
prefix: SH
company: Acme
manifest: shop.manifest.yaml
project_file_path: Sources/Modules
project_group_path: Shop/Modules
project_targets:
  - Shop
test_file_path: Tests/Modules
test_group_path: ShopTests/Modules
test_targets:
  - ShopTests
default_template: layered
custom_parameters:
  flavor: dark
`

func writeProject(t *testing.T, fsys afero.Fs, dir, content string) string {
	t.Helper()
	location := filepath.Join(dir, ProjectFileName)
	require.NoError(t, afero.WriteFile(fsys, location, []byte(content), 0o644))
	return location
}

func TestProjectLoader_Load(t *testing.T) {
	fsys := afero.NewMemMapFs()
	location := writeProject(t, fsys, "/work/shop", sampleProject)

	p, err := NewProjectLoader(fsys).Load(location)
	require.NoError(t, err)
	assert.Equal(t, "Shop", p.ProjectName)
	assert.Equal(t, "SH", p.Prefix)
	assert.Equal(t, []string{"Shop"}, p.ProjectTargets)
	assert.Equal(t, []string{"ShopTests"}, p.TestTargets)
	assert.Equal(t, "layered", p.DefaultTemplate)
	assert.Equal(t, "dark", p.CustomParameters["flavor"])
	assert.Equal(t, "/work/shop", p.Dir)
	assert.Equal(t, filepath.Join("/work/shop", "shop.manifest.yaml"), p.ManifestPath())
}

func TestProjectLoader_Load_Missing(t *testing.T) {
	_, err := NewProjectLoader(afero.NewMemMapFs()).Load("/nowhere/modgen.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrNotFound)
}

func TestProjectLoader_Load_Invalid(t *testing.T) {
	fsys := afero.NewMemMapFs()
	location := writeProject(t, fsys, "/work", "project_name: Shop\nproject_file_path: Sources\n")

	_, err := NewProjectLoader(fsys).Load(location)
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrValidation)

	var detail *oerrors.DetailError
	require.ErrorAs(t, err, &detail)
	assert.Equal(t, "manifest", detail.Field)
	assert.Equal(t, location, detail.Location)
}

func TestProjectLoader_Find(t *testing.T) {
	fsys := afero.NewMemMapFs()
	location := writeProject(t, fsys, "/work/shop", sampleProject)
	require.NoError(t, fsys.MkdirAll("/work/shop/Sources/Deep", 0o755))

	loader := NewProjectLoader(fsys)
	got, err := loader.Find("/work/shop/Sources/Deep")
	require.NoError(t, err)
	assert.Equal(t, location, got)

	_, err = loader.Find("/elsewhere")
	assert.ErrorIs(t, err, oerrors.ErrNotFound)
}

func TestProject_ModuleOptions_Defaults(t *testing.T) {
	fsys := afero.NewMemMapFs()
	location := writeProject(t, fsys, "/work/shop", sampleProject)
	p, err := NewProjectLoader(fsys).Load(location)
	require.NoError(t, err)

	opts := p.ModuleOptions("Login", ModuleOverrides{}, &Config{Author: "Ana", Company: "Other"})
	assert.Equal(t, "Login", opts.Name)
	assert.Equal(t, filepath.Join("/work/shop", "Sources/Modules/Login"), opts.Directory)
	assert.Equal(t, "Shop/Modules/Login", opts.GroupPath)
	assert.Equal(t, []string{"Shop"}, opts.Targets)
	assert.Equal(t, filepath.Join("/work/shop", "Tests/Modules/Login"), opts.TestDirectory)
	assert.Equal(t, "ShopTests/Modules/Login", opts.TestGroupPath)
	assert.Equal(t, []string{"ShopTests"}, opts.TestTargets)
	assert.Equal(t, "Ana", opts.Author, "author falls back to global config")
	assert.Equal(t, "Acme", opts.Company, "project company wins")
	assert.Equal(t, "dark", opts.Custom["flavor"])
}

func TestProject_ModuleOptions_Overrides(t *testing.T) {
	p := &Project{
		ProjectName:     "Shop",
		Manifest:        "m.yaml",
		ProjectFilePath: "Sources",
		ProjectTargets:  []string{"Shop"},
		Dir:             "/work",
	}

	opts := p.ModuleOptions("Cart", ModuleOverrides{
		ModulePath:  "/abs/Cart",
		ModuleGroup: "Custom/Cart",
		TestPath:    "Tests/Cart",
		TestGroup:   "Tests/Cart",
		Targets:     []string{"Widget"},
		TestTargets: []string{"WidgetTests"},
		Custom:      map[string]string{"k": "v"},
	}, nil)

	assert.Equal(t, "/abs/Cart", opts.Directory)
	assert.Equal(t, "Custom/Cart", opts.GroupPath)
	assert.Equal(t, []string{"Widget"}, opts.Targets)
	assert.Equal(t, filepath.Join("/work", "Tests/Cart"), opts.TestDirectory)
	assert.Equal(t, "Tests/Cart", opts.TestGroupPath)
	assert.Equal(t, []string{"WidgetTests"}, opts.TestTargets)
	assert.Equal(t, "v", opts.Custom["k"])
}

func TestProject_ModuleOptions_NoTestConfig(t *testing.T) {
	p := &Project{ProjectName: "Shop", Manifest: "m.yaml", ProjectFilePath: "Sources", Dir: "/work"}

	opts := p.ModuleOptions("Cart", ModuleOverrides{}, nil)
	assert.Empty(t, opts.TestDirectory)
	assert.Empty(t, opts.TestGroupPath)
	assert.Empty(t, opts.TestTargets)
	assert.Equal(t, "Cart", opts.GroupPath, "group defaults to the module name at the root")
}

func TestProject_Write(t *testing.T) {
	fsys := afero.NewMemMapFs()
	p := &Project{
		ProjectName:     "Shop",
		Manifest:        "shop.manifest.yaml",
		ProjectFilePath: "Sources",
		ProjectTargets:  []string{"Shop"},
	}

	location := "/work/" + ProjectFileName
	require.NoError(t, p.Write(fsys, location))

	loaded, err := NewProjectLoader(fsys).Load(location)
	require.NoError(t, err)
	assert.Equal(t, "Shop", loaded.ProjectName)
	assert.Equal(t, []string{"Shop"}, loaded.ProjectTargets)

	err = p.Write(fsys, location)
	assert.ErrorIs(t, err, oerrors.ErrValidation)
}
