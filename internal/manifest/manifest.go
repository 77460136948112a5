package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	oerrors "github.com/opmodel/modgen/internal/errors"
	"github.com/opmodel/modgen/internal/output"
)

// Store opens and creates manifests on a filesystem.
type Store struct {
	fs afero.Fs
}

// NewStore returns a Store backed by fsys.
func NewStore(fsys afero.Fs) *Store {
	return &Store{fs: fsys}
}

// Project is an open manifest. It is mutated in memory and written back by
// Save; nothing reaches disk before that. A Project has a single writer.
type Project struct {
	fs       afero.Fs
	location string
	dir      string
	doc      *Document
}

// Load reads the manifest at location.
func (s *Store) Load(location string) (*Project, error) {
	data, err := afero.ReadFile(s.fs, location)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, oerrors.Wrapf(oerrors.ErrManifestLoad, err, "manifest %s does not exist", location)
		}
		return nil, oerrors.Wrapf(oerrors.ErrManifestLoad, err, "reading manifest %s", location)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, oerrors.Wrapf(oerrors.ErrManifestLoad, err, "parsing manifest %s", location)
	}

	output.Debug("loaded manifest", "path", location, "targets", len(doc.Targets), "groups", len(doc.Groups))

	return &Project{
		fs:       s.fs,
		location: location,
		dir:      filepath.Dir(location),
		doc:      doc,
	}, nil
}

// Create writes doc to location. It fails if a manifest already exists there.
func (s *Store) Create(location string, doc *Document) (*Project, error) {
	if ok, _ := afero.Exists(s.fs, location); ok {
		return nil, oerrors.NewValidationError("manifest already exists", location, "", "")
	}
	if err := s.fs.MkdirAll(filepath.Dir(location), 0o755); err != nil {
		return nil, oerrors.Wrapf(oerrors.ErrManifestPersist, err, "creating directory for %s", location)
	}

	p := &Project{fs: s.fs, location: location, dir: filepath.Dir(location), doc: doc}
	if err := p.Save(); err != nil {
		return nil, err
	}
	return p, nil
}

// Parse decodes and checks a manifest document.
func Parse(data []byte) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("empty document")
	}

	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(doc.Targets))
	for i, t := range doc.Targets {
		if t == nil || t.Name == "" {
			return nil, fmt.Errorf("targets[%d]: missing name", i)
		}
		if seen[t.Name] {
			return nil, fmt.Errorf("targets[%d]: duplicate target %q", i, t.Name)
		}
		seen[t.Name] = true
	}
	if err := checkGroups(doc.Groups, "groups"); err != nil {
		return nil, err
	}

	return &doc, nil
}

func checkGroups(groups []*Group, at string) error {
	for i, g := range groups {
		where := fmt.Sprintf("%s[%d]", at, i)
		if g == nil || g.Name == "" || strings.Contains(g.Name, "/") {
			return fmt.Errorf("%s: invalid group name", where)
		}
		if err := checkGroups(g.Groups, where+".groups"); err != nil {
			return err
		}
	}
	return nil
}

// Location returns the manifest file path.
func (p *Project) Location() string {
	return p.location
}

// Document returns the in-memory document.
func (p *Project) Document() *Document {
	return p.doc
}

// Bytes serializes the in-memory document.
func (p *Project) Bytes() ([]byte, error) {
	return Marshal(p.doc)
}

// Marshal serializes a document as YAML.
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ClearGroup removes every file and sub-group below groupPath and detaches
// the removed files from targets. A missing or empty group is a no-op.
func (p *Project) ClearGroup(targets []string, groupPath string) error {
	if len(splitGroupPath(groupPath)) == 0 {
		return oerrors.Wrap(oerrors.ErrManifestMutation, "clearing group: empty group path")
	}

	g := p.doc.Group(groupPath)
	if g == nil || (len(g.Files) == 0 && len(g.Groups) == 0) {
		return nil
	}

	resolved, err := p.resolveTargets(targets, groupPath)
	if err != nil {
		return err
	}

	drop := make(map[string]bool)
	collectFiles(g, drop)

	for _, t := range resolved {
		t.Sources = remove(t.Sources, drop)
		t.Resources = remove(t.Resources, drop)
	}

	g.Files = nil
	g.Groups = nil

	output.Debug("cleared group", "group", groupPath, "files", len(drop))
	return nil
}

func collectFiles(g *Group, into map[string]bool) {
	for _, f := range g.Files {
		into[f.Path] = true
	}
	for _, child := range g.Groups {
		collectFiles(child, into)
	}
}

// AddGroup ensures a group exists at groupPath, creating intermediate groups.
func (p *Project) AddGroup(groupPath string) error {
	parts := splitGroupPath(groupPath)
	if len(parts) == 0 {
		return nil
	}
	p.ensureGroup(parts)
	return nil
}

func (p *Project) ensureGroup(parts []string) *Group {
	children := &p.doc.Groups
	var g *Group
	for _, part := range parts {
		g = findGroup(*children, part)
		if g == nil {
			g = &Group{Name: part}
			*children = append(*children, g)
		}
		children = &g.Groups
	}
	return g
}

// AddFile registers filePath under groupPath and attaches it to every
// target, as a resource when isResource is set and as a source otherwise.
// Adding the same path twice leaves a single entry.
func (p *Project) AddFile(targets []string, groupPath, filePath string, isResource bool) error {
	parts := splitGroupPath(groupPath)
	if len(parts) == 0 {
		return oerrors.Wrap(oerrors.ErrManifestMutation, fmt.Sprintf("adding %s: empty group path", filePath))
	}

	resolved, err := p.resolveTargets(targets, groupPath)
	if err != nil {
		return err
	}

	ref := p.relative(filePath)
	g := p.ensureGroup(parts)
	if f := g.File(ref); f != nil {
		f.Resource = isResource
	} else {
		g.Files = append(g.Files, &FileRef{Path: ref, Resource: isResource})
	}

	drop := map[string]bool{ref: true}
	for _, t := range resolved {
		t.Sources = remove(t.Sources, drop)
		t.Resources = remove(t.Resources, drop)
		if isResource {
			t.Resources = append(t.Resources, ref)
		} else {
			t.Sources = append(t.Sources, ref)
		}
	}

	return nil
}

// Save writes the document to a temporary file beside the manifest and
// renames it into place, so the manifest is either fully updated or untouched.
func (p *Project) Save() error {
	data, err := p.Bytes()
	if err != nil {
		return oerrors.Wrapf(oerrors.ErrManifestPersist, err, "encoding manifest")
	}

	tmp, err := afero.TempFile(p.fs, p.dir, ".manifest-*")
	if err != nil {
		return oerrors.Wrapf(oerrors.ErrManifestPersist, err, "creating temporary manifest in %s", p.dir)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = p.fs.Remove(tmpName)
		return oerrors.Wrapf(oerrors.ErrManifestPersist, err, "writing %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		_ = p.fs.Remove(tmpName)
		return oerrors.Wrapf(oerrors.ErrManifestPersist, err, "closing %s", tmpName)
	}
	if err := p.fs.Rename(tmpName, p.location); err != nil {
		_ = p.fs.Remove(tmpName)
		return oerrors.Wrapf(oerrors.ErrManifestPersist, err, "replacing %s", p.location)
	}

	output.Debug("saved manifest", "path", p.location, "bytes", len(data))
	return nil
}

// relative stores paths relative to the manifest directory when possible.
func (p *Project) relative(filePath string) string {
	if filepath.IsAbs(filePath) == filepath.IsAbs(p.dir) {
		if rel, err := filepath.Rel(p.dir, filePath); err == nil {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.ToSlash(filePath)
}

// resolveTargets looks up every target before anything is mutated.
func (p *Project) resolveTargets(targets []string, groupPath string) ([]*Target, error) {
	resolved := make([]*Target, 0, len(targets))
	for _, name := range targets {
		t := p.doc.Target(name)
		if t == nil {
			return nil, unknownTarget(name, groupPath)
		}
		resolved = append(resolved, t)
	}
	return resolved, nil
}

func unknownTarget(name, groupPath string) error {
	return oerrors.Wrap(oerrors.ErrManifestMutation, fmt.Sprintf("group %s: unknown target %q", groupPath, name))
}

func splitGroupPath(groupPath string) []string {
	clean := strings.Trim(path.Clean("/"+filepath.ToSlash(groupPath)), "/")
	if clean == "" {
		return nil
	}
	return strings.Split(clean, "/")
}
