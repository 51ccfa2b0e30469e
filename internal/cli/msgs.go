package cli

// Message constants
const (
	MsgRootShort = "Install dotfiles from a YAML manifest"
	MsgRootLong  = `dotfiles copies configuration files from your dotfiles repository into
place under your home directory, as described by a YAML manifest.

Sources are resolved relative to the directory holding the manifest.
Destinations may use $HOME, $CONFIG ($HOME/.config) and $LOCAL ($HOME/.local).
Anything about to be overwritten is moved to <path>.bak first and removed
again once the copy succeeds.

Each entry is installed in one of two modes:
  directory  replace the destination with the source tree (default)
  contents   copy the source's children into the destination, keeping
             everything else that is already there`

	MsgRootExample = `  # Install everything listed in mac.yaml
  dotfiles mac.yaml

  # Install into a scratch home to see what would change
  dotfiles --home /tmp/scratch-home linux.yaml

  # Manifest format
  configs:
    zsh:
      source: zsh
      dest: $HOME
      copy_mode: contents
      backup_files: [.zshrc]
      dependencies: [zsh]
    nvim:
      source: config/nvim
      dest: $CONFIG/nvim
      dependencies: [neovim]
      notes:
        - Run :Lazy sync after first launch`

	MsgVersionShort = "Print version information"

	MsgConfigShort = "Print the effective settings"
	MsgConfigLong  = `Print the settings dotfiles runs with, after merging the built-in defaults,
$XDG_CONFIG_HOME/dotfiles/config.toml, DOTFILES_* environment variables and
command-line flags. The output is valid config.toml content.`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagHome    = "Install into this directory instead of your home directory"
	MsgFlagNoColor = "Disable colored output"
)
