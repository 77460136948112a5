package generator

import (
	"fmt"

	"github.com/spf13/afero"

	oerrors "github.com/opmodel/modgen/internal/errors"
	"github.com/opmodel/modgen/internal/module"
	"github.com/opmodel/modgen/internal/output"
	"github.com/opmodel/modgen/internal/templates"
)

// Engine runs module generation.
type Engine struct {
	fs       afero.Fs
	renderer Renderer
	open     ManifestOpener
}

// NewEngine creates an engine writing to fsys.
func NewEngine(fsys afero.Fs, renderer Renderer, open ManifestOpener) *Engine {
	return &Engine{fs: fsys, renderer: renderer, open: open}
}

// run holds the state of a single Generate call.
type run struct {
	*Engine
	mod      *module.Descriptor
	tmpl     *templates.Template
	manifest Manifest
	summary  *Summary
}

// Generate applies tmpl to the module described by mod.
//
// The manifest is loaded once, mutated by the main batch and then the test
// batch, and saved once at the end. Files already written are not rolled
// back when a later step fails; running Generate again is the recovery path.
func (e *Engine) Generate(name string, mod *module.Descriptor, tmpl *templates.Template) (*Summary, error) {
	log := output.ModuleLogger(name)

	m, err := e.open(mod.ManifestPath)
	if err != nil {
		return nil, oerrors.Wrapf(oerrors.ErrManifestLoad, err, "opening manifest")
	}

	for _, dir := range []string{mod.Directory, mod.TestDirectory} {
		if dir == "" {
			continue
		}
		if err := e.fs.MkdirAll(dir, 0o755); err != nil {
			return nil, oerrors.Wrapf(oerrors.ErrWrite, err, "creating directory %s", dir)
		}
	}

	r := &run{
		Engine:   e,
		mod:      mod,
		tmpl:     tmpl,
		manifest: m,
		summary: &Summary{
			Name:            name,
			Template:        tmpl.Name,
			ModuleFilePath:  mod.Directory,
			ModuleGroupPath: mod.GroupPath,
			TestFilePath:    mod.TestDirectory,
			TestGroupPath:   mod.TestGroupPath,
			Files:           []GeneratedFile{},
			Groups:          []GeneratedGroup{},
		},
	}

	log.Debug("creating code files", "count", len(tmpl.MainFiles))
	if err := r.processBatch(BatchMain, tmpl.MainFiles, mod.Targets, mod.GroupPath, mod.Directory); err != nil {
		return nil, err
	}

	if mod.Test != nil {
		log.Debug("creating test files", "count", len(tmpl.TestFiles))
		if err := r.processBatch(BatchTest, tmpl.TestFiles, mod.Test.Targets, mod.Test.GroupPath, mod.Test.Directory); err != nil {
			return nil, err
		}
	} else {
		log.Debug("test generation disabled")
	}

	if err := m.Save(); err != nil {
		return nil, oerrors.Wrapf(oerrors.ErrManifestPersist, err, "saving manifest %s", mod.ManifestPath)
	}

	log.Debug("module generated", "files", len(r.summary.Files), "groups", len(r.summary.Groups))
	return r.summary, nil
}

func (r *run) fail(batch Batch, sentinel, err error, format string, args ...any) error {
	return oerrors.Wrapf(sentinel, err, "%s batch: %s", batch, fmt.Sprintf(format, args...))
}
