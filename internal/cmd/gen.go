package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/opmodel/modgen/internal/cmdtypes"
	"github.com/opmodel/modgen/internal/cmdutil"
	oerrors "github.com/opmodel/modgen/internal/errors"
	"github.com/opmodel/modgen/internal/generator"
	"github.com/opmodel/modgen/internal/manifest"
	"github.com/opmodel/modgen/internal/module"
	"github.com/opmodel/modgen/internal/output"
	"github.com/opmodel/modgen/internal/templates"
)

// NewGenCmd creates the gen command.
func NewGenCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var flags cmdutil.GenFlags

	c := &cobra.Command{
		Use:   "gen <name> [template]",
		Short: "Generate a module from a template",
		Long: `Generate a module from a template.

Renders every file of the template for the named module, writes it to the
module directory and registers it in the project manifest. Running gen again
for the same module replaces the files and the manifest entries.

Test files are generated only when a test directory, test group and test
targets are all configured.

Examples:
  # Use the project's default template
  modgen gen Login

  # Pick a template and attach files to an extra target
  modgen gen Login layered --targets Shop,ShopWidget

  # Pass custom template parameters and show the manifest changes
  modgen gen Login --set theme=dark --diff`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(c *cobra.Command, args []string) error {
			return runGen(c, args, cfg, &flags, afero.NewOsFs())
		},
	}

	flags.AddTo(c)

	return c
}

func runGen(c *cobra.Command, args []string, cfg *cmdtypes.GlobalConfig, flags *cmdutil.GenFlags, fsys afero.Fs) error {
	name := args[0]
	if err := templates.ValidateModuleName(name); err != nil {
		return cmdutil.Fail("invalid module name", err)
	}

	overrides, err := flags.Overrides()
	if err != nil {
		return cmdutil.Fail("invalid flags", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		return cmdutil.Fail("resolving working directory", err)
	}
	project, err := cmdutil.LoadProject(fsys, flags.Project, wd)
	if err != nil {
		return cmdutil.Fail("loading project file", err)
	}

	templateName, err := pickTemplate(flags.Template, args, project.DefaultTemplate)
	if err != nil {
		return cmdutil.Fail("selecting template", err)
	}
	tmpl, err := cmdutil.Registry(fsys, cfg).Get(templateName)
	if err != nil {
		return cmdutil.Fail(fmt.Sprintf("loading template %q", templateName), err)
	}

	mod := module.New(project.ModuleOptions(name, overrides, cfg.Config))

	log := output.ModuleLogger(name)
	log.Info("applying template", "template", tmpl.Name, "origin", tmpl.Origin)

	var before []byte
	if flags.Diff {
		before, err = afero.ReadFile(fsys, mod.ManifestPath)
		if err != nil {
			return cmdutil.Fail("reading manifest", oerrors.Wrapf(oerrors.ErrManifestLoad, err, "reading %s", mod.ManifestPath))
		}
	}

	store := manifest.NewStore(fsys)
	engine := generator.NewEngine(fsys, templates.NewRenderer(), func(location string) (generator.Manifest, error) {
		p, err := store.Load(location)
		if err != nil {
			return nil, err
		}
		return p, nil
	})

	var summary *generator.Summary
	generate := func() error {
		var genErr error
		summary, genErr = engine.Generate(name, mod, tmpl)
		return genErr
	}
	// Debug records would tear through the spinner's redraw.
	if cfg.Verbose {
		err = generate()
	} else {
		err = output.RunWithSpinner(fmt.Sprintf("Generating %s", name), generate)
	}
	if err != nil {
		return cmdutil.Fail("generation failed", err)
	}

	format := cfg.Output
	if format == "" {
		format = output.FormatText
	}
	if err := cmdutil.WriteSummary(c.OutOrStdout(), format, summary); err != nil {
		return cmdutil.Fail("writing summary", err)
	}

	if flags.Diff {
		after, err := afero.ReadFile(fsys, mod.ManifestPath)
		if err != nil {
			return cmdutil.Fail("reading manifest", oerrors.Wrapf(oerrors.ErrManifestLoad, err, "reading %s", mod.ManifestPath))
		}
		report, err := output.DiffYAML(before, after, output.IsTTY())
		if err != nil {
			return cmdutil.Fail("comparing manifest", err)
		}
		if report == "" {
			log.Info("manifest unchanged")
		} else {
			fmt.Fprint(c.OutOrStdout(), report)
		}
	}

	return nil
}

// pickTemplate resolves the template name: --template, then the positional
// argument, then the project default.
func pickTemplate(flag string, args []string, projectDefault string) (string, error) {
	positional := ""
	if len(args) > 1 {
		positional = args[1]
	}

	switch {
	case flag != "" && positional != "" && flag != positional:
		return "", oerrors.NewValidationError(
			fmt.Sprintf("template given twice: %q and --template %q", positional, flag),
			"", "template", "pass the template either positionally or with --template",
		)
	case flag != "":
		return flag, nil
	case positional != "":
		return positional, nil
	case projectDefault != "":
		return projectDefault, nil
	default:
		return "", oerrors.NewValidationError(
			"no template given",
			"", "template", "pass a template name or set default_template in modgen.yaml",
		)
	}
}
