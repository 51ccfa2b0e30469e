// pkg/testutil/environment.go
// DEPENDENCIES: afero
// PURPOSE: Orchestrate test environments with a repo and a home directory

package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/arthur-debert/dotfiles/pkg/filesystem"
	"github.com/spf13/afero"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment holds a dotfiles repo and a home directory
type TestEnvironment struct {
	RepoDir string
	HomeDir string
	FS      afero.Fs
	Type    EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	root := "/test"
	switch envType {
	case EnvMemoryOnly:
		env.FS = filesystem.NewMemory()
	case EnvIsolated:
		env.FS = filesystem.NewOS()
		// resolved so paths compare equal to symlink-resolved ones (macOS /var)
		resolved, err := filepath.EvalSymlinks(t.TempDir())
		if err != nil {
			t.Fatalf("Failed to resolve temp dir: %v", err)
		}
		root = resolved
	default:
		t.Fatalf("unknown environment type %d", envType)
	}

	env.RepoDir = filepath.Join(root, "dotfiles")
	env.HomeDir = filepath.Join(root, "home")
	for _, dir := range []string{env.RepoDir, env.HomeDir} {
		if err := env.FS.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}

	return env
}

// WithRepo creates tree inside the repo
func (env *TestEnvironment) WithRepo(tree FileTree) {
	env.t.Helper()
	CreateFileTree(env.t, env.FS, env.RepoDir, tree)
}

// WithHome creates tree inside the home directory
func (env *TestEnvironment) WithHome(tree FileTree) {
	env.t.Helper()
	CreateFileTree(env.t, env.FS, env.HomeDir, tree)
}

// RepoPath joins rel onto the repo dir
func (env *TestEnvironment) RepoPath(rel string) string {
	return filepath.Join(env.RepoDir, rel)
}

// HomePath joins rel onto the home dir
func (env *TestEnvironment) HomePath(rel string) string {
	return filepath.Join(env.HomeDir, rel)
}

// ReadFile returns the content of path, failing the test if it is unreadable
func (env *TestEnvironment) ReadFile(path string) string {
	env.t.Helper()
	data, err := afero.ReadFile(env.FS, path)
	if err != nil {
		env.t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

// ListTree returns every path below root, relative to it, sorted
func (env *TestEnvironment) ListTree(root string) []string {
	env.t.Helper()
	return ListTree(env.t, env.FS, root)
}

// FileTree represents a directory structure for testing.
// Values are either file content (string) or a nested FileTree.
type FileTree map[string]interface{}

// CreateFileTree recursively creates a file tree under basePath
func CreateFileTree(t *testing.T, fsys afero.Fs, basePath string, tree FileTree) {
	t.Helper()

	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			if err := fsys.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
				t.Fatalf("Failed to create directory for %s: %v", fullPath, err)
			}
			if err := afero.WriteFile(fsys, fullPath, []byte(v), 0644); err != nil {
				t.Fatalf("Failed to write file %s: %v", fullPath, err)
			}
		case FileTree:
			if err := fsys.MkdirAll(fullPath, 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", fullPath, err)
			}
			CreateFileTree(t, fsys, fullPath, v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}

// ListTree returns every path below root, relative to it, sorted
func ListTree(t *testing.T, fsys afero.Fs, root string) []string {
	t.Helper()

	var out []string
	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		out = append(out, rel)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to walk %s: %v", root, err)
	}
	sort.Strings(out)
	return out
}
