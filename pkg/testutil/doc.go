// Package testutil provides utilities for testing dotfiles components.
//
// Key components:
//   - TestEnvironment: a dotfiles repo and a home directory, either in
//     memory or under t.TempDir
//   - FileTree: declarative file tree setup and inspection
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly unless the code under test touches the real
//     filesystem (CLI, permissions, symlinks)
//   - All test data should be defined inline, not in external files
package testutil
