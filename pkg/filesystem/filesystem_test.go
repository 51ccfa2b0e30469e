// pkg/filesystem/filesystem_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: afero (memory and OS backed)
// PURPOSE: Test copy primitives and existence checks

package filesystem

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyFile(t *testing.T) {
	fsys := NewMemory()
	mtime := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, afero.WriteFile(fsys, "/src/.zshrc", []byte("export A=1"), 0600))
	require.NoError(t, fsys.Chtimes("/src/.zshrc", mtime, mtime))
	require.NoError(t, fsys.MkdirAll("/dst", 0755))

	t.Run("copies_content_and_metadata", func(t *testing.T) {
		require.NoError(t, CopyFile(fsys, "/src/.zshrc", "/dst/.zshrc"))

		content, err := afero.ReadFile(fsys, "/dst/.zshrc")
		require.NoError(t, err)
		assert.Equal(t, "export A=1", string(content))

		info, err := fsys.Stat("/dst/.zshrc")
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
		assert.True(t, mtime.Equal(info.ModTime()), "mtime should be preserved, got %v", info.ModTime())
	})

	t.Run("truncates_existing", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(fsys, "/dst/long", []byte("a much longer original file"), 0644))
		require.NoError(t, CopyFile(fsys, "/src/.zshrc", "/dst/long"))

		content, err := afero.ReadFile(fsys, "/dst/long")
		require.NoError(t, err)
		assert.Equal(t, "export A=1", string(content))
	})

	t.Run("missing_source", func(t *testing.T) {
		err := CopyFile(fsys, "/src/missing", "/dst/missing")
		assert.True(t, os.IsNotExist(err))
	})
}

func TestCopyTree(t *testing.T) {
	root := t.TempDir()
	fsys := NewOS()

	src := filepath.Join(root, "src")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "lua", "plugins"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "init.lua"), []byte("vim"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "lua", "plugins", "a.lua"), []byte("a"), 0640))
	require.NoError(t, os.WriteFile(filepath.Join(src, "run.sh"), []byte("#!/bin/sh"), 0755))

	dst := filepath.Join(root, "dst")
	require.NoError(t, CopyTree(fsys, src, dst))

	content, err := os.ReadFile(filepath.Join(dst, "init.lua"))
	require.NoError(t, err)
	assert.Equal(t, "vim", string(content))

	content, err = os.ReadFile(filepath.Join(dst, "lua", "plugins", "a.lua"))
	require.NoError(t, err)
	assert.Equal(t, "a", string(content))

	info, err := os.Stat(filepath.Join(dst, "run.sh"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())

	t.Run("follows_symlinks", func(t *testing.T) {
		linked := filepath.Join(root, "linked")
		require.NoError(t, os.MkdirAll(linked, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(linked, "f"), []byte("through link"), 0644))
		require.NoError(t, os.Symlink(linked, filepath.Join(src, "link")))

		dst2 := filepath.Join(root, "dst2")
		require.NoError(t, CopyTree(fsys, src, dst2))

		info, err := os.Lstat(filepath.Join(dst2, "link"))
		require.NoError(t, err)
		assert.True(t, info.IsDir(), "symlinked directory should be copied as a real directory")

		content, err := os.ReadFile(filepath.Join(dst2, "link", "f"))
		require.NoError(t, err)
		assert.Equal(t, "through link", string(content))
	})

	t.Run("rejects_file_source", func(t *testing.T) {
		err := CopyTree(fsys, filepath.Join(src, "init.lua"), filepath.Join(root, "nope"))
		assert.Error(t, err)
	})

	t.Run("refuses_existing_destination", func(t *testing.T) {
		err := CopyTree(fsys, src, dst)
		assert.Error(t, err)
	})
}

func TestExistsAndPresent(t *testing.T) {
	root := t.TempDir()
	fsys := NewOS()

	file := filepath.Join(root, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	dangling := filepath.Join(root, "dangling")
	require.NoError(t, os.Symlink(filepath.Join(root, "gone"), dangling))

	tests := []struct {
		name        string
		path        string
		wantExists  bool
		wantPresent bool
	}{
		{"regular_file", file, true, true},
		{"directory", root, true, true},
		{"missing", filepath.Join(root, "missing"), false, false},
		{"dangling_symlink", dangling, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exists, err := Exists(fsys, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantExists, exists)

			present, err := Present(fsys, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPresent, present)
		})
	}

	isDir, err := IsDir(fsys, root)
	require.NoError(t, err)
	assert.True(t, isDir)
}
