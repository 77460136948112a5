package cmdutil

import (
	"github.com/spf13/afero"

	"github.com/opmodel/modgen/internal/cmdtypes"
	"github.com/opmodel/modgen/internal/config"
	"github.com/opmodel/modgen/internal/output"
	"github.com/opmodel/modgen/internal/templates"
)

// LoadProject loads the project file named by flag, or searches upwards from
// start when flag is empty.
func LoadProject(fsys afero.Fs, flag, start string) (*config.Project, error) {
	loader := config.NewProjectLoader(fsys)

	location := flag
	if location == "" {
		found, err := loader.Find(start)
		if err != nil {
			return nil, err
		}
		location = found
	}

	output.Debug("loading project file", "path", location)
	return loader.Load(location)
}

// Registry builds the template registry for the resolved templates directory.
func Registry(fsys afero.Fs, cfg *cmdtypes.GlobalConfig) *templates.Registry {
	dir := ""
	if cfg != nil {
		dir = cfg.TemplatesDir
	}
	return templates.NewRegistry(fsys, dir)
}
