package template

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/opmodel/modgen/internal/cmdtypes"
	"github.com/opmodel/modgen/internal/cmdutil"
	"github.com/opmodel/modgen/internal/output"
	"github.com/opmodel/modgen/internal/templates"
)

// NewTemplateShowCmd creates the template show command.
func NewTemplateShowCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show the files a template generates",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			tmpl, err := cmdutil.Registry(afero.NewOsFs(), cfg).Get(args[0])
			if err != nil {
				return cmdutil.Fail(fmt.Sprintf("loading template %q", args[0]), err)
			}

			if format := formatOf(cfg); format != output.FormatText {
				data, err := output.Marshal(format, tmpl)
				if err != nil {
					return cmdutil.Fail("encoding template", err)
				}
				_, err = c.OutOrStdout().Write(data)
				return err
			}

			fmt.Fprint(c.OutOrStdout(), describe(tmpl))
			return nil
		},
	}
}

const fieldWidth = 10

func describe(tmpl *templates.Template) string {
	var sb strings.Builder

	sb.WriteString(output.FormatField("Name", tmpl.Name, fieldWidth) + "\n")
	sb.WriteString(output.FormatField("Summary", tmpl.Summary, fieldWidth) + "\n")
	sb.WriteString(output.FormatField("Author", tmpl.Author, fieldWidth) + "\n")
	sb.WriteString(output.FormatField("Version", tmpl.Version, fieldWidth) + "\n")
	sb.WriteString(output.FormatField("Origin", tmpl.Origin, fieldWidth) + "\n")

	for _, section := range []struct {
		title string
		files []templates.FileDescriptor
	}{
		{"code_files", tmpl.MainFiles},
		{"test_files", tmpl.TestFiles},
	} {
		tree := output.RenderFileTree(section.title, fileEntries(section.files))
		if tree != "" {
			sb.WriteString("\n" + tree)
		}
	}

	return sb.String()
}

func fileEntries(files []templates.FileDescriptor) map[string]string {
	entries := make(map[string]string, len(files))
	for _, fd := range files {
		if !fd.HasFilePath() {
			entries[fd.DirectoryName()+"/"] = output.KindStyle(output.KindGroup).Render(output.KindGroup)
			continue
		}
		kind := output.KindSource
		if fd.IsResource {
			kind = output.KindResource
		}
		entries[fd.NamePattern] = output.KindStyle(kind).Render(kind) + " " + output.StyleDim.Render(fd.SourcePath)
	}
	return entries
}
