package filesystem

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// NewOS returns the OS filesystem
func NewOS() afero.Fs {
	return afero.NewOsFs()
}

// NewMemory returns an empty in-memory filesystem
func NewMemory() afero.Fs {
	return afero.NewMemMapFs()
}

// Exists reports whether path exists, following symlinks. A dangling
// symlink does not exist.
func Exists(fsys afero.Fs, path string) (bool, error) {
	return afero.Exists(fsys, path)
}

// Present reports whether anything occupies path, without following a final
// symlink. A dangling symlink is present.
func Present(fsys afero.Fs, path string) (bool, error) {
	_, err := lstat(fsys, path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// IsDir reports whether path is a directory, following symlinks
func IsDir(fsys afero.Fs, path string) (bool, error) {
	return afero.IsDir(fsys, path)
}

func lstat(fsys afero.Fs, path string) (os.FileInfo, error) {
	if l, ok := fsys.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}
	return fsys.Stat(path)
}

// CopyFile copies the contents of src to dst, truncating dst if it exists,
// then applies src's permission bits and modification time to dst.
func CopyFile(fsys afero.Fs, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}

	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := fsys.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return copyMetadata(fsys, dst, info)
}

// CopyTree recursively copies the directory src to dst. dst must not exist
// yet; its parent must. Directory and file metadata is carried over.
func CopyTree(fsys afero.Fs, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &os.PathError{Op: "copytree", Path: src, Err: os.ErrInvalid}
	}

	if err := fsys.Mkdir(dst, info.Mode().Perm()|0700); err != nil {
		return err
	}

	entries, err := afero.ReadDir(fsys, src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		// ReadDir does not follow links; Stat does.
		target, err := fsys.Stat(srcPath)
		if err != nil {
			return err
		}

		if target.IsDir() {
			err = CopyTree(fsys, srcPath, dstPath)
		} else {
			err = CopyFile(fsys, srcPath, dstPath)
		}
		if err != nil {
			return err
		}
	}

	// Applied last so copying children does not bump the directory mtime.
	return copyMetadata(fsys, dst, info)
}

// RemoveAll removes path and anything below it. A missing path is not an error.
func RemoveAll(fsys afero.Fs, path string) error {
	return fsys.RemoveAll(path)
}

func copyMetadata(fsys afero.Fs, dst string, info os.FileInfo) error {
	if err := fsys.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}
	return fsys.Chtimes(dst, info.ModTime(), info.ModTime())
}
