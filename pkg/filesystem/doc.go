// Package filesystem provides the file operations the installer is built on.
//
// Everything goes through an afero.Fs so the same code runs against the real
// OS filesystem in production and against in-memory or sandboxed
// filesystems in tests. Symlinks are followed when reading sources, the way
// a plain recursive copy would.
package filesystem
