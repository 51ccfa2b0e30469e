package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dotfiles/pkg/errors"
)

// Tokens recognised in manifest destinations
const (
	TokenHome   = "$HOME"
	TokenConfig = "$CONFIG"
	TokenLocal  = "$LOCAL"
)

// Directories the tokens resolve to, relative to home
const (
	ConfigDirName = ".config"
	LocalDirName  = ".local"
)

// Tool-owned locations. These are not user-configurable.
const (
	// AppDirName is the directory name used under the XDG base directories
	AppDirName = "dotfiles"

	// SettingsFileName is the name of the settings file in ConfigDir
	SettingsFileName = "config.toml"

	// LogFileName is the name of the log file in StateDir
	LogFileName = "dotfiles.log"
)

// Expand substitutes $HOME, $CONFIG and $LOCAL in path with locations under
// home. Every occurrence is replaced, in that order; all other text is left
// untouched.
func Expand(path, home string) string {
	path = strings.ReplaceAll(path, TokenHome, home)
	path = strings.ReplaceAll(path, TokenConfig, home+"/"+ConfigDirName)
	path = strings.ReplaceAll(path, TokenLocal, home+"/"+LocalDirName)
	return path
}

// HomeDir returns the home directory installs are rooted at. A non-empty
// override wins (a leading ~ is expanded and the result made absolute);
// otherwise the process home is used.
func HomeDir(override string) (string, error) {
	if override != "" {
		abs, err := filepath.Abs(ExpandTilde(override))
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to resolve home override %q", override)
		}
		return abs, nil
	}

	if xdg.Home != "" {
		return xdg.Home, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileAccess, "failed to determine home directory")
	}
	return home, nil
}

// ExpandTilde expands a leading ~ or ~/ to the process home directory.
// ~user forms are returned unchanged.
func ExpandTilde(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	home := xdg.Home
	if home == "" {
		var err error
		if home, err = os.UserHomeDir(); err != nil {
			return path
		}
	}

	if len(path) == 1 {
		return home
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(home, path[2:])
	}
	return path
}

// ConfigDir returns $XDG_CONFIG_HOME/dotfiles
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// SettingsFilePath returns the location of the user settings file
func SettingsFilePath() string {
	return filepath.Join(ConfigDir(), SettingsFileName)
}

// StateDir returns $XDG_STATE_HOME/dotfiles
func StateDir() string {
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFilePath returns the location of the log file
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// Reload re-reads the XDG environment variables. Only needed when they change
// after start-up, which in practice means tests.
func Reload() {
	xdg.Reload()
}
