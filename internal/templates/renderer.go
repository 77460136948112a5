package templates

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"
	"time"

	"mvdan.cc/gofumpt/format"

	"github.com/opmodel/modgen/internal/module"
)

// RenderData holds the data passed to template rendering.
type RenderData struct {
	// ModuleName is the module name as given on the command line.
	ModuleName string

	// ProjectName is the project name from the project file.
	ProjectName string

	// Prefix is the project-wide name prefix.
	Prefix string

	// Author and Company come from the project file or global config.
	Author  string
	Company string

	// Year and Date are taken from the renderer clock.
	Year string
	Date string

	// FileName is the generated file name. Empty while the name itself is
	// being rendered.
	FileName string

	// TemplateName is the name of the template being applied.
	TemplateName string

	// Custom holds user-defined parameters (project file and --set).
	Custom map[string]string
}

// funcs are the helper functions available to every template.
var funcs = template.FuncMap{
	"lower":  strings.ToLower,
	"upper":  strings.ToUpper,
	"pascal": ToPascalCase,
	"camel":  ToCamelCase,
	"snake":  ToSnakeCase,
	"kebab":  ToKebabCase,
}

// Renderer turns file descriptors into file names and contents.
type Renderer struct {
	now func() time.Time
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithClock overrides the clock used for the Year and Date fields.
func WithClock(now func() time.Time) RendererOption {
	return func(r *Renderer) {
		r.now = now
	}
}

// NewRenderer creates a renderer.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render produces the generated file name and content for a file descriptor.
// It reads the descriptor's source from the template filesystem and never
// touches the output filesystem or the manifest.
func (r *Renderer) Render(fd FileDescriptor, mod *module.Descriptor, tmpl *Template) (string, string, error) {
	if !fd.HasFilePath() {
		return "", "", fmt.Errorf("%s: directory entries have no content", fd.NamePattern)
	}
	if tmpl.FS == nil {
		return "", "", fmt.Errorf("template %s has no source filesystem", tmpl.Name)
	}

	now := r.now()
	data := RenderData{
		ModuleName:   mod.Name,
		ProjectName:  mod.ProjectName,
		Prefix:       mod.Prefix,
		Author:       mod.Author,
		Company:      mod.Company,
		Year:         now.Format("2006"),
		Date:         now.Format("2006-01-02"),
		TemplateName: tmpl.Name,
		Custom:       mod.Custom,
	}
	if data.Custom == nil {
		data.Custom = map[string]string{}
	}

	name := mod.Prefix + mod.Name + path.Base(fd.NamePattern)
	if fd.FileName != "" {
		rendered, err := execute("file_name", fd.FileName, data)
		if err != nil {
			return "", "", fmt.Errorf("rendering file name for %s: %w", fd.NamePattern, err)
		}
		name = strings.TrimSpace(rendered)
	}
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", "", fmt.Errorf("rendering file name for %s: invalid name %q", fd.NamePattern, name)
	}
	data.FileName = name

	src, err := fs.ReadFile(tmpl.FS, fd.SourcePath)
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", fd.SourcePath, err)
	}

	content, err := execute(path.Base(fd.SourcePath), string(src), data)
	if err != nil {
		return "", "", fmt.Errorf("rendering %s: %w", fd.SourcePath, err)
	}

	if strings.HasSuffix(name, ".go") {
		content = string(FormatGo([]byte(content)))
	}

	return name, content, nil
}

func execute(name, text string, data RenderData) (string, error) {
	tmpl, err := template.New(name).Funcs(funcs).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}
	return buf.String(), nil
}

// FormatGo formats Go source with gofumpt. The input is returned unchanged
// when it does not parse.
func FormatGo(src []byte) []byte {
	formatted, err := format.Source(src, format.Options{})
	if err != nil {
		return src
	}
	return formatted
}
