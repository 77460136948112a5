// Package manifest implements the project manifest: a YAML document tracking
// the logical group tree of a project and which files belong to which
// build targets.
package manifest

// Document is the on-disk manifest.
type Document struct {
	// Name is the project name.
	Name string `yaml:"name"`

	// Targets are the build units files can be attached to.
	Targets []*Target `yaml:"targets"`

	// Groups are the top-level nodes of the group tree.
	Groups []*Group `yaml:"groups"`
}

// Target is a named build unit.
type Target struct {
	Name string `yaml:"name"`

	// Sources are compiled file paths, relative to the manifest directory.
	Sources []string `yaml:"sources,omitempty"`

	// Resources are non-compiled file paths, relative to the manifest directory.
	Resources []string `yaml:"resources,omitempty"`
}

// Group is a node in the group tree. Groups are independent of the
// directory tree, though conventionally mirrored to it.
type Group struct {
	Name   string     `yaml:"name"`
	Files  []*FileRef `yaml:"files,omitempty"`
	Groups []*Group   `yaml:"groups,omitempty"`
}

// FileRef is a file registered under a group.
type FileRef struct {
	Path     string `yaml:"path"`
	Resource bool   `yaml:"resource,omitempty"`
}

// NewDocument returns an empty manifest with the given targets.
func NewDocument(name string, targets ...string) *Document {
	doc := &Document{Name: name, Targets: []*Target{}, Groups: []*Group{}}
	for _, t := range targets {
		if t == "" || doc.Target(t) != nil {
			continue
		}
		doc.Targets = append(doc.Targets, &Target{Name: t})
	}
	return doc
}

// Target returns the named target or nil.
func (d *Document) Target(name string) *Target {
	for _, t := range d.Targets {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// Group returns the group at a slash-separated path or nil.
func (d *Document) Group(groupPath string) *Group {
	parts := splitGroupPath(groupPath)
	if len(parts) == 0 {
		return nil
	}

	children := d.Groups
	var g *Group
	for _, part := range parts {
		g = findGroup(children, part)
		if g == nil {
			return nil
		}
		children = g.Groups
	}
	return g
}

// File returns the file registered under g with path p, or nil.
func (g *Group) File(p string) *FileRef {
	for _, f := range g.Files {
		if f.Path == p {
			return f
		}
	}
	return nil
}

// Has reports whether the target lists p as a source or resource.
func (t *Target) Has(p string) bool {
	return contains(t.Sources, p) || contains(t.Resources, p)
}

func findGroup(groups []*Group, name string) *Group {
	for _, g := range groups {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func remove(list []string, drop map[string]bool) []string {
	out := list[:0]
	for _, v := range list {
		if !drop[v] {
			out = append(out, v)
		}
	}
	return out
}
