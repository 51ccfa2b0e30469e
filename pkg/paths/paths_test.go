// pkg/paths/paths_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test destination token expansion and XDG directory resolution

package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	home := "/home/alice"

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"home_alone", "$HOME", "/home/alice"},
		{"home_with_suffix", "$HOME/test", "/home/alice/test"},
		{"config", "$CONFIG/nvim", "/home/alice/.config/nvim"},
		{"local", "$LOCAL/scripts", "/home/alice/.local/scripts"},
		{"multiple_tokens", "$HOME:$CONFIG:$LOCAL", "/home/alice:/home/alice/.config:/home/alice/.local"},
		{"repeated_token", "$CONFIG/a/$CONFIG", "/home/alice/.config/a//home/alice/.config"},
		{"absolute_untouched", "/absolute/path", "/absolute/path"},
		{"relative_untouched", "some/relative/path", "some/relative/path"},
		{"empty", "", ""},
		{"trailing_slash_kept", "$HOME/", "/home/alice/"},
		{"no_boundary_check", "$HOMESTEAD/x", "/home/aliceSTEAD/x"},
		{"unknown_token_untouched", "$XDG_DATA/x", "$XDG_DATA/x"},
		{"lowercase_untouched", "$home/x", "$home/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Expand(tt.input, home))
		})
	}
}

func TestExpand_HomeContainingToken(t *testing.T) {
	// $HOME is substituted first, so a home path that itself contains
	// $CONFIG gets expanded again by the following pass.
	got := Expand("$HOME", "/weird/$CONFIG")
	assert.Equal(t, "/weird//weird/$CONFIG/.config", got)
}

func TestHomeDir(t *testing.T) {
	t.Run("override_is_made_absolute", func(t *testing.T) {
		dir := t.TempDir()
		got, err := HomeDir(dir)
		require.NoError(t, err)
		assert.Equal(t, dir, got)
	})

	t.Run("relative_override", func(t *testing.T) {
		got, err := HomeDir("relative/home")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
		assert.Equal(t, "home", filepath.Base(got))
	})

	t.Run("default_is_process_home", func(t *testing.T) {
		got, err := HomeDir("")
		require.NoError(t, err)
		assert.NotEmpty(t, got)
		assert.True(t, filepath.IsAbs(got))
	})
}

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	Reload()

	tests := []struct {
		input    string
		expected string
	}{
		{"~", home},
		{"~/dotfiles", filepath.Join(home, "dotfiles")},
		{"~other/dotfiles", "~other/dotfiles"},
		{"/abs/path", "/abs/path"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandTilde(tt.input))
		})
	}
}

func TestXDGDirectories(t *testing.T) {
	// Registered first so it runs after the env vars are restored.
	t.Cleanup(Reload)

	configHome := t.TempDir()
	stateHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_STATE_HOME", stateHome)
	Reload()

	assert.Equal(t, filepath.Join(configHome, "dotfiles"), ConfigDir())
	assert.Equal(t, filepath.Join(configHome, "dotfiles", "config.toml"), SettingsFilePath())
	assert.Equal(t, filepath.Join(stateHome, "dotfiles"), StateDir())
	assert.Equal(t, filepath.Join(stateHome, "dotfiles", "dotfiles.log"), LogFilePath())
}
