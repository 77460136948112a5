package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	oerrors "github.com/opmodel/modgen/internal/errors"
	"github.com/opmodel/modgen/internal/module"
)

// ProjectFileName is the per-project configuration file.
const ProjectFileName = "modgen.yaml"

// Project is the content of a modgen.yaml file. Relative paths are resolved
// against the directory containing the file.
//
// Keys are case-insensitive, so custom_parameters keys are lowercased.
type Project struct {
	ProjectName      string            `mapstructure:"project_name" yaml:"project_name"`
	Prefix           string            `mapstructure:"prefix" yaml:"prefix,omitempty"`
	Company          string            `mapstructure:"company" yaml:"company,omitempty"`
	Author           string            `mapstructure:"author" yaml:"author,omitempty"`
	Manifest         string            `mapstructure:"manifest" yaml:"manifest"`
	ProjectFilePath  string            `mapstructure:"project_file_path" yaml:"project_file_path"`
	ProjectGroupPath string            `mapstructure:"project_group_path" yaml:"project_group_path,omitempty"`
	ProjectTargets   []string          `mapstructure:"project_targets" yaml:"project_targets"`
	TestFilePath     string            `mapstructure:"test_file_path" yaml:"test_file_path,omitempty"`
	TestGroupPath    string            `mapstructure:"test_group_path" yaml:"test_group_path,omitempty"`
	TestTargets      []string          `mapstructure:"test_targets" yaml:"test_targets,omitempty"`
	DefaultTemplate  string            `mapstructure:"default_template" yaml:"default_template,omitempty"`
	CustomParameters map[string]string `mapstructure:"custom_parameters" yaml:"custom_parameters,omitempty"`

	// Dir is the directory the project file was loaded from.
	Dir string `mapstructure:"-" yaml:"-"`
}

// ModuleOverrides are per-invocation values that replace project defaults.
// Empty fields keep the project value.
type ModuleOverrides struct {
	ModulePath  string
	ModuleGroup string
	TestPath    string
	TestGroup   string
	Targets     []string
	TestTargets []string
	Custom      map[string]string
}

// ProjectLoader reads project files from a filesystem.
type ProjectLoader struct {
	fs afero.Fs
}

// NewProjectLoader creates a loader reading from fsys.
func NewProjectLoader(fsys afero.Fs) *ProjectLoader {
	return &ProjectLoader{fs: fsys}
}

// Find walks up from start until it finds a project file.
func (l *ProjectLoader) Find(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, ProjectFileName)
		if ok, _ := afero.Exists(l.fs, candidate); ok {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", oerrors.NewNotFoundError(
				fmt.Sprintf("no %s found in %s or any parent directory", ProjectFileName, start),
				start,
				"run 'modgen init' to create one",
			)
		}
		dir = parent
	}
}

// Load reads and validates the project file at location.
func (l *ProjectLoader) Load(location string) (*Project, error) {
	v := viper.New()
	v.SetFs(l.fs)
	v.SetConfigFile(location)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) || os.IsNotExist(err) {
			return nil, oerrors.NewNotFoundError(
				"project file not found",
				location,
				"run 'modgen init' to create one",
			)
		}
		return nil, fmt.Errorf("reading project file %s: %w", location, err)
	}

	var p Project
	if err := v.Unmarshal(&p); err != nil {
		return nil, fmt.Errorf("decoding project file %s: %w", location, err)
	}
	p.Dir = filepath.Dir(location)

	if err := p.Validate(); err != nil {
		var detail *oerrors.DetailError
		if errors.As(err, &detail) {
			detail.Location = location
		}
		return nil, err
	}
	return &p, nil
}

// Validate checks the fields every command depends on.
func (p *Project) Validate() error {
	switch {
	case p.ProjectName == "":
		return oerrors.NewValidationError("project_name is required", "", "project_name", "")
	case p.Manifest == "":
		return oerrors.NewValidationError("manifest is required", "", "manifest", "point it at the project manifest file")
	case p.ProjectFilePath == "":
		return oerrors.NewValidationError("project_file_path is required", "", "project_file_path", "")
	}
	return nil
}

// Write stores p as YAML at location. It refuses to overwrite.
func (p *Project) Write(fsys afero.Fs, location string) error {
	if ok, _ := afero.Exists(fsys, location); ok {
		return oerrors.NewValidationError("project file already exists", location, "", "edit it or remove it first")
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding project file: %w", err)
	}
	if err := fsys.MkdirAll(filepath.Dir(location), 0o755); err != nil {
		return err
	}
	return afero.WriteFile(fsys, location, data, 0o644)
}

// ManifestPath returns the manifest location resolved against Dir.
func (p *Project) ManifestPath() string {
	return p.resolve(p.Manifest)
}

// ModuleOptions derives the module configuration for name. Module paths
// default to <project_file_path>/<name> and <project_group_path>/<name>;
// test paths are only derived when the project configures them. Author and
// company fall back to cfg when the project leaves them empty.
func (p *Project) ModuleOptions(name string, o ModuleOverrides, cfg *Config) module.Options {
	opts := module.Options{
		Name:         name,
		Directory:    p.resolve(firstNonEmpty(o.ModulePath, path.Join(p.ProjectFilePath, name))),
		GroupPath:    firstNonEmpty(o.ModuleGroup, path.Join(p.ProjectGroupPath, name)),
		Targets:      firstList(o.Targets, p.ProjectTargets),
		TestTargets:  firstList(o.TestTargets, p.TestTargets),
		ManifestPath: p.ManifestPath(),
		ProjectName:  p.ProjectName,
		Prefix:       p.Prefix,
		Author:       p.Author,
		Company:      p.Company,
		Custom:       make(map[string]string, len(p.CustomParameters)+len(o.Custom)),
	}

	switch {
	case o.TestPath != "":
		opts.TestDirectory = p.resolve(o.TestPath)
	case p.TestFilePath != "":
		opts.TestDirectory = p.resolve(path.Join(p.TestFilePath, name))
	}
	switch {
	case o.TestGroup != "":
		opts.TestGroupPath = o.TestGroup
	case p.TestGroupPath != "":
		opts.TestGroupPath = path.Join(p.TestGroupPath, name)
	}

	if cfg != nil {
		opts.Author = firstNonEmpty(opts.Author, cfg.Author)
		opts.Company = firstNonEmpty(opts.Company, cfg.Company)
	}

	for k, v := range p.CustomParameters {
		opts.Custom[k] = v
	}
	for k, v := range o.Custom {
		opts.Custom[k] = v
	}

	return opts
}

func (p *Project) resolve(location string) string {
	if location == "" {
		return ""
	}
	location = filepath.FromSlash(location)
	if filepath.IsAbs(location) || p.Dir == "" {
		return filepath.Clean(location)
	}
	return filepath.Join(p.Dir, location)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstList(lists ...[]string) []string {
	for _, l := range lists {
		if len(l) > 0 {
			return append([]string(nil), l...)
		}
	}
	return nil
}
