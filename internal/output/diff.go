package output

import (
	"bytes"
	"fmt"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
)

// DiffYAML renders a YAML-aware report of the changes between two documents.
// It returns "" when the documents are equivalent.
func DiffYAML(before, after []byte, useColor bool) (string, error) {
	if len(bytes.TrimSpace(before)) == 0 && len(bytes.TrimSpace(after)) == 0 {
		return "", nil
	}

	from, err := yamlInput("before", before)
	if err != nil {
		return "", fmt.Errorf("parsing previous manifest: %w", err)
	}
	to, err := yamlInput("after", after)
	if err != nil {
		return "", fmt.Errorf("parsing updated manifest: %w", err)
	}

	report, err := dyff.CompareInputFiles(from, to)
	if err != nil {
		return "", fmt.Errorf("comparing manifests: %w", err)
	}
	if len(report.Diffs) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	writer := &dyff.HumanReport{
		Report:       report,
		NoTableStyle: !useColor,
		OmitHeader:   true,
	}
	if err := writer.WriteReport(&buf); err != nil {
		return "", fmt.Errorf("rendering manifest diff: %w", err)
	}
	return buf.String(), nil
}

func yamlInput(name string, data []byte) (ytbx.InputFile, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ytbx.InputFile{Location: name}, nil
	}

	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}
	return ytbx.InputFile{Location: name, Documents: docs}, nil
}
