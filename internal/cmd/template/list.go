package template

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/opmodel/modgen/internal/cmdtypes"
	"github.com/opmodel/modgen/internal/cmdutil"
	"github.com/opmodel/modgen/internal/output"
)

// NewTemplateListCmd creates the template list command.
func NewTemplateListCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			entries, err := cmdutil.Registry(afero.NewOsFs(), cfg).List()
			if err != nil {
				return cmdutil.Fail("listing templates", err)
			}

			if format := formatOf(cfg); format != output.FormatText {
				data, err := output.Marshal(format, entries)
				if err != nil {
					return cmdutil.Fail("encoding templates", err)
				}
				_, err = c.OutOrStdout().Write(data)
				return err
			}

			tbl := output.NewTable("NAME", "SUMMARY", "ORIGIN")
			for _, e := range entries {
				tbl.Row(e.Name, e.Summary, e.Origin)
			}
			fmt.Fprintln(c.OutOrStdout(), tbl.String())
			return nil
		},
	}
}
