// Package template provides CLI command implementations for the template command group.
package template

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/modgen/internal/cmdtypes"
	"github.com/opmodel/modgen/internal/output"
)

// NewTemplateCmd creates the template command group.
func NewTemplateCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "template",
		Short: "Inspect available templates",
		Long: `Inspect the templates gen can apply.

Templates are looked up in the user template directory (config templatesDir)
first, then among the templates built into modgen.`,
	}

	c.AddCommand(NewTemplateListCmd(cfg))
	c.AddCommand(NewTemplateShowCmd(cfg))

	return c
}

func formatOf(cfg *cmdtypes.GlobalConfig) output.OutputFormat {
	if cfg == nil || cfg.Output == "" {
		return output.FormatText
	}
	return cfg.Output
}
