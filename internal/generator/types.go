// Package generator materializes a template for a module onto disk and
// mirrors the result into the project manifest.
package generator

import (
	"github.com/opmodel/modgen/internal/module"
	"github.com/opmodel/modgen/internal/templates"
)

// Renderer produces the file name and content for a file descriptor. It must
// be deterministic and must not touch the filesystem or the manifest.
type Renderer interface {
	Render(fd templates.FileDescriptor, mod *module.Descriptor, tmpl *templates.Template) (name, content string, err error)
}

// Manifest is an open project manifest. It is opened once per run, mutated
// by a single caller, and saved exactly once.
type Manifest interface {
	ClearGroup(targets []string, groupPath string) error
	AddGroup(groupPath string) error
	AddFile(targets []string, groupPath, filePath string, isResource bool) error
	Save() error
}

// ManifestOpener loads the manifest at location.
type ManifestOpener func(location string) (Manifest, error)

// Batch names the file collection being processed.
type Batch string

const (
	// BatchMain is the template's main file collection.
	BatchMain Batch = "main"

	// BatchTest is the template's test file collection.
	BatchTest Batch = "test"
)

// GeneratedFile records one file written during a run.
type GeneratedFile struct {
	Batch    Batch    `json:"batch"`
	Path     string   `json:"path"`
	Group    string   `json:"group"`
	Targets  []string `json:"targets"`
	Resource bool     `json:"resource,omitempty"`
}

// GeneratedGroup records one directory entry registered during a run.
type GeneratedGroup struct {
	Batch     Batch  `json:"batch"`
	Directory string `json:"directory"`
	Group     string `json:"group"`
}

// Summary describes a completed run. Absent test paths are empty strings so
// the shape is the same for every run.
type Summary struct {
	Name            string           `json:"name"`
	Template        string           `json:"template"`
	ModuleFilePath  string           `json:"moduleFilePath"`
	ModuleGroupPath string           `json:"moduleGroupPath"`
	TestFilePath    string           `json:"testFilePath"`
	TestGroupPath   string           `json:"testGroupPath"`
	Files           []GeneratedFile  `json:"files"`
	Groups          []GeneratedGroup `json:"groups"`
}
