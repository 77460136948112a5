package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/opmodel/modgen/internal/cmdtypes"
	"github.com/opmodel/modgen/internal/cmdutil"
	"github.com/opmodel/modgen/internal/config"
	"github.com/opmodel/modgen/internal/manifest"
	"github.com/opmodel/modgen/internal/output"
	"github.com/opmodel/modgen/internal/templates"
)

type initFlags struct {
	dir         string
	name        string
	manifest    string
	filePath    string
	groupPath   string
	targets     []string
	testPath    string
	testGroup   string
	testTargets []string
	template    string
}

// NewInitCmd creates the init command.
func NewInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var flags initFlags

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a modgen.yaml project file",
		Long: `Create a modgen.yaml project file in the given directory.

The manifest named by the project file is created too when it does not exist,
with one target per --targets and --test-targets entry. An existing project
file is never overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, cfg, &flags, afero.NewOsFs())
		},
	}

	c.Flags().StringVar(&flags.dir, "dir", ".", "Directory to create the project file in")
	c.Flags().StringVar(&flags.name, "name", "", "Project name (default: directory name)")
	c.Flags().StringVar(&flags.manifest, "manifest", "", "Manifest path (default: <name>.manifest.yaml)")
	c.Flags().StringVar(&flags.filePath, "file-path", "Sources", "Parent directory of generated modules")
	c.Flags().StringVar(&flags.groupPath, "group-path", "", "Parent manifest group of generated modules (default: <name>)")
	c.Flags().StringSliceVar(&flags.targets, "targets", nil, "Targets for main files (default: <name>)")
	c.Flags().StringVar(&flags.testPath, "test-path", "Tests", "Parent directory of generated tests")
	c.Flags().StringVar(&flags.testGroup, "test-group", "", "Parent manifest group of generated tests (default: <name>Tests)")
	c.Flags().StringSliceVar(&flags.testTargets, "test-targets", nil, "Targets for test files (default: <name>Tests)")
	c.Flags().StringVar(&flags.template, "template", "layered", "Default template")

	return c
}

func runInit(c *cobra.Command, cfg *cmdtypes.GlobalConfig, flags *initFlags, fsys afero.Fs) error {
	dir, err := filepath.Abs(flags.dir)
	if err != nil {
		return cmdutil.Fail("resolving directory", err)
	}

	name := flags.name
	if name == "" {
		name = filepath.Base(dir)
	}
	if err := templates.ValidateModuleName(name); err != nil {
		return cmdutil.Fail("invalid project name", err)
	}

	project := &config.Project{
		ProjectName:      name,
		Manifest:         orDefault(flags.manifest, name+".manifest.yaml"),
		ProjectFilePath:  flags.filePath,
		ProjectGroupPath: orDefault(flags.groupPath, name),
		ProjectTargets:   orDefaultList(flags.targets, name),
		TestFilePath:     flags.testPath,
		TestGroupPath:    orDefault(flags.testGroup, name+"Tests"),
		TestTargets:      orDefaultList(flags.testTargets, name+"Tests"),
		DefaultTemplate:  flags.template,
	}
	if cfg != nil && cfg.Config != nil {
		project.Author = cfg.Config.Author
		project.Company = cfg.Config.Company
	}

	location := filepath.Join(dir, config.ProjectFileName)
	if err := project.Write(fsys, location); err != nil {
		return cmdutil.Fail("writing project file", err)
	}
	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Project file created: "+location))

	project.Dir = dir
	manifestPath := project.ManifestPath()
	if ok, _ := afero.Exists(fsys, manifestPath); ok {
		output.Info("keeping existing manifest", "path", manifestPath)
		return nil
	}

	targets := append(append([]string(nil), project.ProjectTargets...), project.TestTargets...)
	if _, err := manifest.NewStore(fsys).Create(manifestPath, manifest.NewDocument(name, targets...)); err != nil {
		return cmdutil.Fail("creating manifest", err)
	}
	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Manifest created: "+manifestPath))

	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func orDefaultList(v []string, def string) []string {
	if len(v) == 0 {
		return []string{def}
	}
	return v
}

