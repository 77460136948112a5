package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/modgen/internal/cmdtypes"
	"github.com/opmodel/modgen/internal/cmdutil"
	"github.com/opmodel/modgen/internal/output"
	"github.com/opmodel/modgen/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show modgen version information.

Displays:
  - modgen version, commit, and build date
  - Go and CUE SDK versions`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			info := version.Get()

			if cfg != nil && cfg.Output != "" && cfg.Output != output.FormatText {
				data, err := output.Marshal(cfg.Output, info)
				if err != nil {
					return cmdutil.Fail("encoding version", err)
				}
				_, err = c.OutOrStdout().Write(data)
				return err
			}

			fmt.Fprintln(c.OutOrStdout(), info.String())
			return nil
		},
	}
}
