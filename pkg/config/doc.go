// Package config loads the tool's own settings.
//
// Settings are not the install manifest; they control how the tool runs
// (home override, color, logging). They are layered, later sources winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user settings file, $XDG_CONFIG_HOME/dotfiles/config.toml
//  3. DOTFILES_* environment variables, with "_" as the key separator:
//     DOTFILES_LOG_FILE=false sets log.file
//
// Command-line flags are applied on top by the caller.
package config
