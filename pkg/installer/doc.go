// Package installer copies dotfiles from a source tree into place.
//
// # Overview
//
// An Installer is created once per run with the directory holding the
// sources (normally the manifest's directory) and the home directory
// destinations are expanded against. Each manifest entry is installed
// independently:
//
//  1. The source is resolved under the base directory. If it is missing the
//     entry is reported as StatusSourceMissing and nothing is touched.
//  2. Whatever is about to be overwritten is moved aside to <path>.bak.
//  3. The source is copied into place.
//  4. The backup is removed again.
//
// # Copy Modes
//
//   - directory: the destination is replaced wholesale by the source tree.
//     The whole destination is backed up first.
//   - contents: every direct child of the source is copied into the
//     destination; anything else already there is left alone. Only the
//     files listed in backup_files are backed up.
//
// # Failure Behaviour
//
// A missing source is an ordinary result, not an error, and does not stop
// InstallAll. Any filesystem error during backup or copy is returned and
// ends the run. Nothing is rolled back: if a copy fails after its backup was
// taken, the original survives under the .bak name for manual recovery.
//
// An Installer accumulates the dependencies of every installed entry. It is
// not safe for concurrent use.
package installer
