// Package cmdutil provides shared command utilities: flag groups, project and
// template resolution, and summary/error output.
package cmdutil

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opmodel/modgen/internal/config"
	oerrors "github.com/opmodel/modgen/internal/errors"
)

// GenFlags holds the flags of the gen command.
type GenFlags struct {
	Template    string
	ModulePath  string
	ModuleGroup string
	TestPath    string
	TestGroup   string
	Targets     []string
	TestTargets []string
	Project     string
	Diff        bool
	Set         []string
}

// AddTo registers the gen flags on the given cobra command.
func (f *GenFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Template, "template", "t", "",
		"Template to apply (default: project default_template)")
	cmd.Flags().StringVar(&f.ModulePath, "module-path", "",
		"Directory for main files (default: <project_file_path>/<name>)")
	cmd.Flags().StringVar(&f.ModuleGroup, "module-group", "",
		"Manifest group for main files (default: <project_group_path>/<name>)")
	cmd.Flags().StringVar(&f.TestPath, "test-path", "",
		"Directory for test files (default: <test_file_path>/<name>)")
	cmd.Flags().StringVar(&f.TestGroup, "test-group", "",
		"Manifest group for test files (default: <test_group_path>/<name>)")
	cmd.Flags().StringSliceVar(&f.Targets, "targets", nil,
		"Manifest targets for main files (default: project_targets)")
	cmd.Flags().StringSliceVar(&f.TestTargets, "test-targets", nil,
		"Manifest targets for test files (default: test_targets)")
	cmd.Flags().StringVar(&f.Project, "project", "",
		"Path to modgen.yaml (default: search upwards from the working directory)")
	cmd.Flags().BoolVar(&f.Diff, "diff", false,
		"Show the manifest changes made by this run")
	cmd.Flags().StringArrayVar(&f.Set, "set", nil,
		"Custom template parameter as key=value (can be repeated)")
}

// Overrides converts the flags into per-invocation module overrides.
func (f *GenFlags) Overrides() (config.ModuleOverrides, error) {
	custom, err := ParseSet(f.Set)
	if err != nil {
		return config.ModuleOverrides{}, err
	}
	return config.ModuleOverrides{
		ModulePath:  f.ModulePath,
		ModuleGroup: f.ModuleGroup,
		TestPath:    f.TestPath,
		TestGroup:   f.TestGroup,
		Targets:     f.Targets,
		TestTargets: f.TestTargets,
		Custom:      custom,
	}, nil
}

// ParseSet parses key=value pairs. Later pairs replace earlier ones.
func ParseSet(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("invalid --set value %q", pair),
				"", "set", "use key=value",
			)
		}
		out[key] = value
	}
	return out, nil
}
