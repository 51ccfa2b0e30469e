package installer

import (
	"path/filepath"
	"sort"

	"github.com/arthur-debert/dotfiles/pkg/errors"
	"github.com/arthur-debert/dotfiles/pkg/filesystem"
	"github.com/arthur-debert/dotfiles/pkg/logging"
	"github.com/arthur-debert/dotfiles/pkg/paths"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// BackupSuffix is appended to a path to name its backup
const BackupSuffix = ".bak"

// Installer installs manifest entries from baseDir into home
type Installer struct {
	fs      afero.Fs
	baseDir string
	home    string
	deps    map[string]struct{}
	logger  zerolog.Logger
}

type options struct {
	home string
	fs   afero.Fs
}

// Option configures an Installer
type Option func(*options)

// WithHome sets the directory $HOME, $CONFIG and $LOCAL expand against.
// Defaults to the process home directory.
func WithHome(home string) Option {
	return func(o *options) { o.home = home }
}

// WithFS sets the filesystem to operate on. Defaults to the OS filesystem.
func WithFS(fsys afero.Fs) Option {
	return func(o *options) { o.fs = fsys }
}

// New creates an Installer reading sources from baseDir
func New(baseDir string, opts ...Option) (*Installer, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.fs == nil {
		o.fs = filesystem.NewOS()
	}

	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to resolve base directory %q", baseDir)
	}

	home, err := paths.HomeDir(o.home)
	if err != nil {
		return nil, err
	}

	logger := logging.GetLogger("installer")
	logger.Debug().
		Str("baseDir", absBase).
		Str("home", home).
		Msg("Installer created")

	return &Installer{
		fs:      o.fs,
		baseDir: absBase,
		home:    home,
		deps:    make(map[string]struct{}),
		logger:  logger,
	}, nil
}

// BaseDir returns the directory sources are resolved against
func (i *Installer) BaseDir() string { return i.baseDir }

// Home returns the directory destinations are expanded against
func (i *Installer) Home() string { return i.home }

// Dependencies returns every dependency declared by an installed entry so
// far, deduplicated and sorted.
func (i *Installer) Dependencies() []string {
	deps := make([]string, 0, len(i.deps))
	for dep := range i.deps {
		deps = append(deps, dep)
	}
	sort.Strings(deps)
	return deps
}

// BackupPath returns the backup location for path
func BackupPath(path string) string {
	return filepath.Clean(path) + BackupSuffix
}

// Backup moves whatever is at path to path+".bak", replacing a stale backup.
// It returns the backup path and true, or "" and false when there was
// nothing at path. A dangling symlink counts as something.
func (i *Installer) Backup(path string) (string, bool, error) {
	path = filepath.Clean(path)

	present, err := filesystem.Present(i.fs, path)
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrBackup, "failed to inspect %s", path)
	}
	if !present {
		return "", false, nil
	}

	backupPath := BackupPath(path)
	if err := filesystem.RemoveAll(i.fs, backupPath); err != nil {
		return "", false, errors.Wrapf(err, errors.ErrBackup, "failed to remove stale backup %s", backupPath)
	}

	if err := i.fs.Rename(path, backupPath); err != nil {
		return "", false, errors.Wrapf(err, errors.ErrBackup, "failed to back up %s", path)
	}

	i.logger.Debug().
		Str("path", path).
		Str("backup", backupPath).
		Msg("Backed up")

	return backupPath, true, nil
}

// removeBackup deletes the backup of path if there is one
func (i *Installer) removeBackup(path string) error {
	backupPath := BackupPath(path)

	present, err := filesystem.Present(i.fs, backupPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrBackup, "failed to inspect %s", backupPath)
	}
	if !present {
		return nil
	}

	if err := filesystem.RemoveAll(i.fs, backupPath); err != nil {
		return errors.Wrapf(err, errors.ErrBackup, "failed to remove backup %s", backupPath)
	}
	i.logger.Debug().Str("backup", backupPath).Msg("Backup removed")
	return nil
}

// CopyDirectory replaces dst with a copy of the src tree. Anything at dst
// beforehand is removed, not merged.
func (i *Installer) CopyDirectory(src, dst string) error {
	if err := i.prepareTarget(dst); err != nil {
		return err
	}
	if err := filesystem.CopyTree(i.fs, src, dst); err != nil {
		return errors.Wrapf(err, errors.ErrCopy, "failed to copy %s to %s", src, dst)
	}
	return nil
}

// CopyContents copies each direct child of src into dst, creating dst if
// needed. Subdirectories replace their counterpart in dst; files overwrite
// theirs. Entries in dst with no counterpart in src are untouched.
func (i *Installer) CopyContents(src, dst string) error {
	if err := i.fs.MkdirAll(dst, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrCopy, "failed to create %s", dst)
	}

	children, err := afero.ReadDir(i.fs, src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrCopy, "failed to list %s", src)
	}

	for _, child := range children {
		srcPath := filepath.Join(src, child.Name())
		dstPath := filepath.Join(dst, child.Name())

		isDir, err := filesystem.IsDir(i.fs, srcPath)
		if err != nil {
			return errors.Wrapf(err, errors.ErrCopy, "failed to inspect %s", srcPath)
		}

		if isDir {
			err = i.CopyDirectory(srcPath, dstPath)
		} else if err = filesystem.CopyFile(i.fs, srcPath, dstPath); err != nil {
			err = errors.Wrapf(err, errors.ErrCopy, "failed to copy %s to %s", srcPath, dstPath)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// copyFileInto replaces dst with a copy of the single file src
func (i *Installer) copyFileInto(src, dst string) error {
	if err := i.prepareTarget(dst); err != nil {
		return err
	}
	if err := filesystem.CopyFile(i.fs, src, dst); err != nil {
		return errors.Wrapf(err, errors.ErrCopy, "failed to copy %s to %s", src, dst)
	}
	return nil
}

// prepareTarget removes dst if present and makes sure its parent exists
func (i *Installer) prepareTarget(dst string) error {
	if err := filesystem.RemoveAll(i.fs, dst); err != nil {
		return errors.Wrapf(err, errors.ErrCopy, "failed to remove %s", dst)
	}
	if err := i.fs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrCopy, "failed to create parent of %s", dst)
	}
	return nil
}
