// Package paths resolves the locations dotfiles works with.
//
// It has two jobs:
//
//   - Expanding the path tokens used in manifest destinations:
//     $HOME, $CONFIG ($HOME/.config) and $LOCAL ($HOME/.local).
//   - Locating the tool's own XDG directories (settings and logs).
//
// # Token expansion
//
// Expansion is plain substring replacement. There is no escaping and no
// token-boundary check, so a literal "$HOMESTEAD" expands to "<home>STEAD".
// Manifests in the wild rely on this, so it is kept as is.
//
//	paths.Expand("$CONFIG/nvim", "/home/user")  // /home/user/.config/nvim
//	paths.Expand("$HOME", "/home/user")         // /home/user
//	paths.Expand("/etc/hosts", "/home/user")    // /etc/hosts
//
// # Environment Variables
//
//   - XDG_CONFIG_HOME: settings live in $XDG_CONFIG_HOME/dotfiles
//   - XDG_STATE_HOME: the log file lives in $XDG_STATE_HOME/dotfiles
package paths
