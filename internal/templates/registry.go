package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"

	oerrors "github.com/opmodel/modgen/internal/errors"
)

// OriginBuiltin marks templates shipped inside the binary.
const OriginBuiltin = "builtin"

//go:embed all:builtin
var builtinFS embed.FS

// Entry describes an available template without its file lists.
type Entry struct {
	Name    string `json:"name"`
	Summary string `json:"summary,omitempty"`
	Origin  string `json:"origin"`
}

// Registry resolves template names to templates. Templates in the user
// directory shadow built-in templates of the same name.
type Registry struct {
	fs  afero.Fs
	dir string
}

// NewRegistry creates a registry that looks up user templates under dir on
// fsys. An empty dir disables user templates.
func NewRegistry(fsys afero.Fs, dir string) *Registry {
	return &Registry{fs: fsys, dir: dir}
}

// Get loads the named template.
func (r *Registry) Get(name string) (*Template, error) {
	if r.dir != "" {
		root := filepath.Join(r.dir, name)
		if ok, _ := afero.Exists(r.fs, filepath.Join(root, DefinitionFile)); ok {
			return Load(afero.NewIOFS(afero.NewBasePathFs(r.fs, root)), root)
		}
	}

	sub, err := fs.Sub(builtinFS, path.Join("builtin", name))
	if err == nil {
		if _, statErr := fs.Stat(sub, DefinitionFile); statErr == nil {
			return Load(sub, OriginBuiltin)
		}
	}

	return nil, oerrors.NewNotFoundError(
		fmt.Sprintf("unknown template %q", name),
		r.dir,
		"Run `modgen template list` to see available templates.",
	)
}

// List returns all available templates sorted by name.
func (r *Registry) List() ([]Entry, error) {
	byName := make(map[string]Entry)

	builtins, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("reading built-in templates: %w", err)
	}
	for _, d := range builtins {
		if !d.IsDir() {
			continue
		}
		sub, err := fs.Sub(builtinFS, path.Join("builtin", d.Name()))
		if err != nil {
			return nil, err
		}
		tmpl, err := Load(sub, OriginBuiltin)
		if err != nil {
			return nil, err
		}
		byName[d.Name()] = Entry{Name: tmpl.Name, Summary: tmpl.Summary, Origin: OriginBuiltin}
	}

	if r.dir != "" {
		entries, err := afero.ReadDir(r.fs, r.dir)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading template directory %s: %w", r.dir, err)
		}
		for _, info := range entries {
			if !info.IsDir() {
				continue
			}
			root := filepath.Join(r.dir, info.Name())
			if ok, _ := afero.Exists(r.fs, filepath.Join(root, DefinitionFile)); !ok {
				continue
			}
			tmpl, err := Load(afero.NewIOFS(afero.NewBasePathFs(r.fs, root)), root)
			if err != nil {
				return nil, err
			}
			byName[info.Name()] = Entry{Name: tmpl.Name, Summary: tmpl.Summary, Origin: root}
		}
	}

	result := make([]Entry, 0, len(byName))
	for _, e := range byName {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}
