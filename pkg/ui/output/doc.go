// Package output renders the human-readable report of an install run.
//
// The Renderer writes one line-oriented report to an io.Writer: the manifest
// in use, a block per entry (paths on success, warnings built from the
// entry's notes, or an error when the source is missing) and a closing
// summary with the sorted dependency list.
//
// Colors come from the styles registry and follow the color mode:
// "always", "never", or "auto" (color only when writing to a terminal and
// NO_COLOR is unset).
package output
