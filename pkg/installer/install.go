package installer

import (
	"path/filepath"

	"github.com/arthur-debert/dotfiles/pkg/errors"
	"github.com/arthur-debert/dotfiles/pkg/filesystem"
	"github.com/arthur-debert/dotfiles/pkg/logging"
	"github.com/arthur-debert/dotfiles/pkg/manifest"
	"github.com/arthur-debert/dotfiles/pkg/paths"
)

// Resolve returns the absolute source and destination of entry
func (i *Installer) Resolve(entry manifest.Entry) (source, dest string) {
	source = entry.Source
	if !filepath.IsAbs(source) {
		source = filepath.Join(i.baseDir, source)
	}
	dest = filepath.Clean(paths.Expand(entry.Dest, i.home))
	return source, dest
}

// Install backs up and copies a single entry. A missing source yields a
// StatusSourceMissing result and a nil error; the returned error is reserved
// for filesystem faults, which leave any backup already taken in place.
func (i *Installer) Install(name string, entry manifest.Entry) (Result, error) {
	source, dest := i.Resolve(entry)
	logger := i.logger.With().
		Str("entry", name).
		Str("source", source).
		Str("dest", dest).
		Logger()
	defer logging.LogOperationStart(logger, "install")()

	exists, err := filesystem.Exists(i.fs, source)
	if err != nil {
		return Result{}, errors.Wrapf(err, errors.ErrFileAccess, "failed to inspect source %s", source)
	}
	if !exists {
		logger.Warn().Msg("Source not found, skipping")
		return Result{Name: name, Status: StatusSourceMissing, Source: source, Dest: dest}, nil
	}

	mode := entry.CopyMode
	if mode == "" {
		mode = manifest.DefaultCopyMode
	}

	switch mode {
	case manifest.CopyModeContents:
		err = i.installContents(source, dest, entry.BackupFiles)
	case manifest.CopyModeDirectory:
		err = i.installDirectory(source, dest)
	default:
		err = errors.Newf(errors.ErrInvalidInput, "entry %q: unknown copy mode %q", name, mode)
	}
	if err != nil {
		return Result{}, err
	}

	for _, dep := range entry.Dependencies {
		i.deps[dep] = struct{}{}
	}

	notes := make([]string, len(entry.Notes))
	copy(notes, entry.Notes)

	logger.Info().
		Str("mode", string(mode)).
		Strs("dependencies", entry.Dependencies).
		Msg("Installed")

	return Result{
		Name:   name,
		Status: StatusInstalled,
		Source: source,
		Dest:   dest,
		Notes:  notes,
	}, nil
}

// installDirectory backs up dest as a whole and replaces it with source.
// A single-file source replaces dest with that file.
func (i *Installer) installDirectory(source, dest string) error {
	isDir, err := filesystem.IsDir(i.fs, source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to inspect source %s", source)
	}

	if _, _, err := i.Backup(dest); err != nil {
		return err
	}

	if isDir {
		err = i.CopyDirectory(source, dest)
	} else {
		err = i.copyFileInto(source, dest)
	}
	if err != nil {
		return err
	}

	return i.removeBackup(dest)
}

// installContents backs up only the listed files, merges source into dest
// and then drops those backups.
func (i *Installer) installContents(source, dest string, backupFiles []string) error {
	isDir, err := filesystem.IsDir(i.fs, source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to inspect source %s", source)
	}
	if !isDir {
		return errors.Newf(errors.ErrInvalidInput, "source %s must be a directory for copy_mode %q", source, manifest.CopyModeContents)
	}

	for _, name := range backupFiles {
		if _, _, err := i.Backup(filepath.Join(dest, name)); err != nil {
			return err
		}
	}

	if err := i.CopyContents(source, dest); err != nil {
		return err
	}

	for _, name := range backupFiles {
		if err := i.removeBackup(filepath.Join(dest, name)); err != nil {
			return err
		}
	}
	return nil
}

// InstallAll installs every entry in manifest order. Entries with a missing
// source are reported and skipped. The first filesystem fault stops the run;
// the results gathered up to that point are returned with it.
func (i *Installer) InstallAll(m *manifest.Manifest) ([]Result, error) {
	results := make([]Result, 0, m.Len())
	if m == nil {
		return results, nil
	}

	for _, named := range m.Entries {
		result, err := i.Install(named.Name, named.Entry)
		if err != nil {
			i.logger.Error().Err(err).Str("entry", named.Name).Msg("Installation aborted")
			return results, err
		}
		results = append(results, result)
	}

	i.logger.Info().
		Int("entries", len(results)).
		Int("dependencies", len(i.deps)).
		Msg("All entries processed")

	return results, nil
}
