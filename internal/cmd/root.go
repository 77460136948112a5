// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	configcmd "github.com/opmodel/modgen/internal/cmd/config"
	templatecmd "github.com/opmodel/modgen/internal/cmd/template"
	"github.com/opmodel/modgen/internal/cmdtypes"
	"github.com/opmodel/modgen/internal/config"
	oerrors "github.com/opmodel/modgen/internal/errors"
	"github.com/opmodel/modgen/internal/output"
)

// rootFlags holds the persistent flags shared by every command.
type rootFlags struct {
	config     string
	output     string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for the modgen CLI.
func NewRootCmd() *cobra.Command {
	cfg := &cmdtypes.GlobalConfig{}
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "modgen",
		Short: "Generate code modules from templates",
		Long: `modgen renders a template for a named module, writes the files to disk
and registers them in the project manifest.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, cfg, flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: MODGEN_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&flags.output, "output", "o", "", "Output format: text, yaml, json (env: MODGEN_OUTPUT)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewGenCmd(cfg))
	rootCmd.AddCommand(NewInitCmd(cfg))
	rootCmd.AddCommand(templatecmd.NewTemplateCmd(cfg))
	rootCmd.AddCommand(configcmd.NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd(cfg))

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(c *cobra.Command, cfg *cmdtypes.GlobalConfig, flags *rootFlags) error {
	configPath, err := config.ResolveConfigPath(flags.config)
	if err != nil {
		return err
	}

	// A broken config file is reported by `config vet`, not here.
	loaded, err := config.NewLoader().LoadWithDefaults(configPath.Value)
	if err != nil {
		output.Debug("config load error", "error", err)
		loaded = config.DefaultConfig()
	}

	templatesDir, err := config.ExpandPath(loaded.TemplatesDir)
	if err != nil {
		return err
	}

	logCfg := output.LogConfig{
		Verbose: flags.verbose,
		Writer:  c.ErrOrStderr(),
	}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	outputFlag := ""
	if c.Flags().Changed("output") {
		outputFlag = flags.output
	}
	outputValue := config.Resolve(config.ResolveOptions{
		Key:          "output",
		FlagValue:    outputFlag,
		ConfigValue:  loaded.Output,
		DefaultValue: output.FormatText.String(),
	})
	format, err := output.ParseOutputFormat(outputValue.Value)
	switch {
	case err != nil && outputValue.Source == config.SourceFlag:
		return &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err:  oerrors.NewValidationError(err.Error(), "", "output", "use text, yaml or json"),
		}
	case err != nil:
		output.Warn("ignoring configured output format", "value", outputValue.Value, "source", outputValue.Source)
		format = output.FormatText
	}

	cfg.Config = loaded
	cfg.ConfigPath = configPath.Value
	cfg.TemplatesDir = templatesDir
	cfg.Output = format
	cfg.Verbose = flags.verbose

	if flags.verbose {
		config.LogResolvedValues([]config.ResolvedValue{configPath, outputValue})
		output.Debug("initializing CLI", "templatesDir", templatesDir)
	}

	return nil
}
