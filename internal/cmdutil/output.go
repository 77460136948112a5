package cmdutil

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	oerrors "github.com/opmodel/modgen/internal/errors"
	"github.com/opmodel/modgen/internal/generator"
	"github.com/opmodel/modgen/internal/output"
)

// fieldWidth aligns the summary labels.
const fieldWidth = 20

// Fail reports err once and returns it as an ExitError carrying the exit code
// for its category.
func Fail(msg string, err error) error {
	PrintError(msg, err)
	return &oerrors.ExitError{Code: oerrors.ExitCodeFor(err), Err: err, Printed: true}
}

// PrintError prints an error in a user-friendly format. DetailErrors are
// printed as a block; everything else goes through the logger.
func PrintError(msg string, err error) {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		output.Error(msg)
		output.Details(strings.TrimRight(detail.Error(), "\n"))
		return
	}
	output.Error(msg, "error", err)
}

// WriteSummary writes a generation summary to w in the requested format.
func WriteSummary(w io.Writer, format output.OutputFormat, s *generator.Summary) error {
	if format != output.FormatText {
		data, err := output.Marshal(format, s)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	var sb strings.Builder
	sb.WriteString(output.FormatCheckmark(fmt.Sprintf("Module %s generated from %s", s.Name, s.Template)))
	sb.WriteString("\n")
	sb.WriteString("  " + output.FormatField("Module file path", s.ModuleFilePath, fieldWidth) + "\n")
	sb.WriteString("  " + output.FormatField("Module group path", s.ModuleGroupPath, fieldWidth) + "\n")
	sb.WriteString("  " + output.FormatField("Test file path", s.TestFilePath, fieldWidth) + "\n")
	sb.WriteString("  " + output.FormatField("Test group path", s.TestGroupPath, fieldWidth) + "\n")

	for _, batch := range []struct {
		name generator.Batch
		root string
	}{
		{generator.BatchMain, s.ModuleFilePath},
		{generator.BatchTest, s.TestFilePath},
	} {
		tree := output.RenderFileTree(filepath.Base(batch.root), batchEntries(s, batch.name, batch.root))
		if tree != "" {
			sb.WriteString("\n")
			sb.WriteString(tree)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// batchEntries maps paths relative to root onto tree descriptions.
func batchEntries(s *generator.Summary, batch generator.Batch, root string) map[string]string {
	entries := make(map[string]string)

	for _, g := range s.Groups {
		if g.Batch != batch {
			continue
		}
		entries[relative(root, g.Directory)+"/"] = output.KindStyle(output.KindGroup).Render(g.Group)
	}
	for _, f := range s.Files {
		if f.Batch != batch {
			continue
		}
		kind := output.KindSource
		if f.Resource {
			kind = output.KindResource
		}
		entries[relative(root, f.Path)] = output.KindStyle(kind).Render(kind) + " " +
			output.StyleDim.Render(strings.Join(f.Targets, ", "))
	}

	return entries
}

func relative(root, p string) string {
	if root == "" {
		return p
	}
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return p
	}
	return filepath.ToSlash(rel)
}
