// Package module describes the code module a template is applied to.
package module

import (
	"path"
	"path/filepath"
	"strings"
)

// TestConfig is the test-generation half of a Descriptor. It is either fully
// populated or absent; a Descriptor never carries a partial TestConfig.
type TestConfig struct {
	// Directory receives generated test files.
	Directory string

	// GroupPath is the manifest group receiving test files.
	GroupPath string

	// Targets are the manifest targets test files are attached to.
	Targets []string
}

// Descriptor is the concrete target configuration a template is applied to.
// It is immutable once built.
type Descriptor struct {
	// Name is the module name passed through to rendering.
	Name string

	// Directory receives generated main files.
	Directory string

	// GroupPath is the manifest group receiving main files. Empty means absent.
	GroupPath string

	// Targets are the manifest targets main files are attached to.
	Targets []string

	// TestDirectory is the raw test directory. It is created even when test
	// generation is disabled.
	TestDirectory string

	// TestGroupPath is the raw test group path, kept even when test
	// generation is disabled.
	TestGroupPath string

	// Test is nil unless test targets, test group and test directory are all set.
	Test *TestConfig

	// ManifestPath locates the project manifest.
	ManifestPath string

	// Rendering inputs.
	ProjectName string
	Prefix      string
	Author      string
	Company     string
	Custom      map[string]string
}

// Options carries the raw, possibly incomplete, module configuration.
type Options struct {
	Name          string
	Directory     string
	GroupPath     string
	Targets       []string
	TestDirectory string
	TestGroupPath string
	TestTargets   []string
	ManifestPath  string
	ProjectName   string
	Prefix        string
	Author        string
	Company       string
	Custom        map[string]string
}

// New builds a Descriptor. Test generation is enabled only when all three
// test settings are present; a partial test configuration disables it.
func New(opts Options) *Descriptor {
	d := &Descriptor{
		Name:          opts.Name,
		Directory:     cleanDir(opts.Directory),
		GroupPath:     CleanGroupPath(opts.GroupPath),
		Targets:       uniqueTargets(opts.Targets),
		TestDirectory: cleanDir(opts.TestDirectory),
		TestGroupPath: CleanGroupPath(opts.TestGroupPath),
		ManifestPath:  opts.ManifestPath,
		ProjectName:   opts.ProjectName,
		Prefix:        opts.Prefix,
		Author:        opts.Author,
		Company:       opts.Company,
		Custom:        copyMap(opts.Custom),
	}

	testTargets := uniqueTargets(opts.TestTargets)
	if len(testTargets) > 0 && d.TestGroupPath != "" && d.TestDirectory != "" {
		d.Test = &TestConfig{
			Directory: d.TestDirectory,
			GroupPath: d.TestGroupPath,
			Targets:   testTargets,
		}
	}

	return d
}

// CleanGroupPath normalizes a slash-separated manifest group path. Leading
// and trailing separators are dropped; "" and "." both mean absent.
func CleanGroupPath(p string) string {
	p = strings.Trim(filepath.ToSlash(p), "/")
	if p == "" {
		return ""
	}
	p = path.Clean(p)
	if p == "." {
		return ""
	}
	return p
}

func cleanDir(dir string) string {
	if dir == "" {
		return ""
	}
	return filepath.Clean(dir)
}

// uniqueTargets drops empty names and duplicates while keeping order.
func uniqueTargets(targets []string) []string {
	seen := make(map[string]bool, len(targets))
	out := make([]string, 0, len(targets))
	for _, t := range targets {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
