package generator

import (
	"path"
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/opmodel/modgen/internal/errors"
	"github.com/opmodel/modgen/internal/output"
	"github.com/opmodel/modgen/internal/templates"
)

// processBatch materializes one ordered collection of descriptors for one
// target set. It is a no-op when there are no targets, no descriptors, or no
// directory or group to generate into.
func (r *run) processBatch(batch Batch, files []templates.FileDescriptor, targets []string, groupPath, dirPath string) error {
	if len(targets) == 0 || len(files) == 0 || dirPath == "" || groupPath == "" {
		output.Debug("skipping batch", "batch", batch, "targets", len(targets), "files", len(files))
		return nil
	}

	// Clearing first keeps regeneration from duplicating entries.
	if err := r.manifest.ClearGroup(targets, groupPath); err != nil {
		return r.fail(batch, oerrors.ErrManifestMutation, err, "clearing group %s", groupPath)
	}

	for _, fd := range files {
		if !fd.HasFilePath() {
			if err := r.processDirectory(batch, fd, groupPath, dirPath); err != nil {
				return err
			}
			continue
		}
		if err := r.processFile(batch, fd, targets, groupPath, dirPath); err != nil {
			return err
		}
	}

	return nil
}

func (r *run) processDirectory(batch Batch, fd templates.FileDescriptor, groupPath, dirPath string) error {
	name := fd.DirectoryName()
	dir := filepath.Join(dirPath, filepath.FromSlash(name))
	group := path.Join(groupPath, name)

	if err := r.fs.MkdirAll(dir, 0o755); err != nil {
		return r.fail(batch, oerrors.ErrWrite, err, "creating directory %s", dir)
	}
	if err := r.manifest.AddGroup(group); err != nil {
		return r.fail(batch, oerrors.ErrManifestMutation, err, "adding group %s", group)
	}

	output.Debug("created directory", "path", dir, "group", group)
	r.summary.Groups = append(r.summary.Groups, GeneratedGroup{Batch: batch, Directory: dir, Group: group})
	return nil
}

func (r *run) processFile(batch Batch, fd templates.FileDescriptor, targets []string, groupPath, dirPath string) error {
	groupDir := fd.GroupDir()

	name, content, err := r.renderer.Render(fd, r.mod, r.tmpl)
	if err != nil {
		return r.fail(batch, oerrors.ErrRender, err, "rendering %s", fd.NamePattern)
	}

	full := filepath.Join(dirPath, filepath.FromSlash(groupDir), name)
	if err := r.fs.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return r.fail(batch, oerrors.ErrWrite, err, "creating directory %s", filepath.Dir(full))
	}
	// WriteFile truncates, so stale content is replaced rather than merged.
	if err := afero.WriteFile(r.fs, full, []byte(content), 0o644); err != nil {
		return r.fail(batch, oerrors.ErrWrite, err, "writing %s", full)
	}

	group := path.Join(groupPath, groupDir)
	if err := r.manifest.AddFile(targets, group, full, fd.IsResource); err != nil {
		return r.fail(batch, oerrors.ErrManifestMutation, err, "registering %s", full)
	}

	output.Debug("created file", "path", full, "group", group, "resource", fd.IsResource)
	r.summary.Files = append(r.summary.Files, GeneratedFile{
		Batch:    batch,
		Path:     full,
		Group:    group,
		Targets:  append([]string(nil), targets...),
		Resource: fd.IsResource,
	})
	return nil
}
