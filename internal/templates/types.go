// Package templates provides the module template model, template loading,
// the built-in template set, and the text/template content renderer.
package templates

import (
	"io/fs"
	"path"
	"strings"
)

// DefinitionFile is the template definition file at the root of every template.
const DefinitionFile = "template.yaml"

// FileDescriptor is one entry in a template's file collection.
//
// An entry without a SourcePath is a directory marker: it only ensures a
// sub-directory and a manifest sub-group exist. An entry with a SourcePath is
// a file marker whose content is rendered from that source.
type FileDescriptor struct {
	// NamePattern is the slash-separated path of the entry inside the module
	// (e.g. "view/" or "view/view.go").
	NamePattern string `yaml:"name" json:"name"`

	// SourcePath is the template source file relative to the template root.
	SourcePath string `yaml:"path,omitempty" json:"path,omitempty"`

	// IsResource registers the generated file as a non-compiled resource.
	IsResource bool `yaml:"is_resource,omitempty" json:"is_resource,omitempty"`

	// FileName is an optional text/template expression for the generated
	// file name. Empty means Prefix + ModuleName + base(NamePattern).
	FileName string `yaml:"file_name,omitempty" json:"file_name,omitempty"`
}

// HasFilePath reports whether the descriptor is a file marker.
func (d FileDescriptor) HasFilePath() bool {
	return d.SourcePath != ""
}

// DirectoryName returns the directory marker's path with leading and
// trailing separators removed.
func (d FileDescriptor) DirectoryName() string {
	return strings.Trim(d.NamePattern, "/")
}

// GroupDir returns the directory portion of the name pattern, "." for
// entries at the module root.
func (d FileDescriptor) GroupDir() string {
	return path.Dir(d.NamePattern)
}

// Template is an ordered description of the files and directories to
// generate for a module.
type Template struct {
	// Name is the template identifier.
	Name string `yaml:"name" json:"name"`

	// Summary is a one-line description shown by `modgen template list`.
	Summary string `yaml:"summary,omitempty" json:"summary,omitempty"`

	// Author of the template.
	Author string `yaml:"author,omitempty" json:"author,omitempty"`

	// Version of the template.
	Version string `yaml:"version,omitempty" json:"version,omitempty"`

	// MainFiles are generated into the module directory and group.
	MainFiles []FileDescriptor `yaml:"code_files,omitempty" json:"code_files,omitempty"`

	// TestFiles are generated into the test directory and group.
	TestFiles []FileDescriptor `yaml:"test_files,omitempty" json:"test_files,omitempty"`

	// FS is rooted at the template directory and serves SourcePath reads.
	FS fs.FS `yaml:"-" json:"-"`

	// Origin describes where the template was loaded from ("builtin" or a path).
	Origin string `yaml:"-" json:"-"`
}
