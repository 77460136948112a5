package templates

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	oerrors "github.com/opmodel/modgen/internal/errors"
)

//go:embed schema/template.cue
var templateSchemaCUE []byte

// Load reads and validates the template description at the root of fsys.
// Unknown fields are rejected at load time.
func Load(fsys fs.FS, origin string) (*Template, error) {
	data, err := fs.ReadFile(fsys, DefinitionFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, oerrors.NewNotFoundError(
				fmt.Sprintf("%s not found", DefinitionFile),
				origin,
				"Every template directory needs a template.yaml at its root.",
			)
		}
		return nil, fmt.Errorf("reading %s: %w", DefinitionFile, err)
	}

	tmpl, err := Parse(data)
	if err != nil {
		var detail *oerrors.DetailError
		if errors.As(err, &detail) {
			detail.Location = origin
		}
		return nil, err
	}

	tmpl.FS = fsys
	tmpl.Origin = origin
	return tmpl, nil
}

// Parse decodes a template description and validates it.
func Parse(data []byte) (*Template, error) {
	var tmpl Template

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&tmpl); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, oerrors.NewValidationError("template description is empty", "", "", "")
		}
		return nil, oerrors.NewValidationError(fmt.Sprintf("decoding template: %v", err), "", "", "")
	}

	if err := Validate(&tmpl); err != nil {
		return nil, err
	}

	return &tmpl, nil
}

// Validate checks a template against the embedded CUE schema and the
// directory-marker/file-marker rules.
func Validate(tmpl *Template) error {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(templateSchemaCUE)
	if schema.Err() != nil {
		return fmt.Errorf("compiling template schema: %w", schema.Err())
	}

	value := ctx.Encode(tmpl)
	if value.Err() != nil {
		return fmt.Errorf("encoding template: %w", value.Err())
	}

	unified := schema.LookupPath(cue.ParsePath("#Template")).Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return oerrors.NewValidationError(err.Error(), "", "", "See `modgen template show` for a valid example.")
	}

	check := func(batch string, files []FileDescriptor) error {
		for i, f := range files {
			field := fmt.Sprintf("%s[%d]", batch, i)
			if f.HasFilePath() {
				continue
			}
			if f.IsResource {
				return oerrors.NewValidationError("directory entry cannot be a resource", "", field,
					"Remove is_resource or add a path to make it a file entry.")
			}
			if f.FileName != "" {
				return oerrors.NewValidationError("directory entry cannot set file_name", "", field,
					"Remove file_name or add a path to make it a file entry.")
			}
			if f.DirectoryName() == "" {
				return oerrors.NewValidationError("directory entry has an empty name", "", field, "")
			}
		}
		return nil
	}

	if err := check("code_files", tmpl.MainFiles); err != nil {
		return err
	}
	return check("test_files", tmpl.TestFiles)
}
