// pkg/manifest/loader_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: afero MemMapFs
// PURPOSE: Test manifest parsing, ordering, defaults and validation errors

package manifest

import (
	"testing"

	"github.com/arthur-debert/dotfiles/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_FullManifest(t *testing.T) {
	data := []byte(`
configs:
  zsh:
    source: zsh
    dest: $HOME
    copy_mode: contents
    backup_files:
      - .zshrc
      - .zprofile
    dependencies:
      - zsh
      - fzf
  nvim:
    source: config/nvim
    dest: $CONFIG/nvim
    dependencies: [neovim, ripgrep]
    notes:
      - |
        Run :Lazy sync after first launch.
        Plugins are pinned in lazy-lock.json.
      - Install a Nerd Font.
  alacritty:
    source: config/alacritty
    dest: $CONFIG/alacritty
    copy_mode: directory
`)

	m, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"zsh", "nvim", "alacritty"}, m.Names(), "document order is preserved")

	zsh, ok := m.Get("zsh")
	require.True(t, ok)
	assert.Equal(t, "zsh", zsh.Source)
	assert.Equal(t, "$HOME", zsh.Dest)
	assert.Equal(t, CopyModeContents, zsh.CopyMode)
	assert.Equal(t, []string{".zshrc", ".zprofile"}, zsh.BackupFiles)
	assert.Equal(t, []string{"zsh", "fzf"}, zsh.Dependencies)
	assert.Empty(t, zsh.Notes)

	nvim, ok := m.Get("nvim")
	require.True(t, ok)
	assert.Equal(t, CopyModeDirectory, nvim.CopyMode, "copy_mode defaults to directory")
	assert.Equal(t, []string{"neovim", "ripgrep"}, nvim.Dependencies)
	require.Len(t, nvim.Notes, 2)
	assert.Equal(t, "Run :Lazy sync after first launch.\nPlugins are pinned in lazy-lock.json.\n", nvim.Notes[0])

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestParse_OrderIsNotAlphabetical(t *testing.T) {
	m, err := Parse([]byte(`
configs:
  zzz: {source: a, dest: $HOME/a}
  aaa: {source: b, dest: $HOME/b}
  mmm: {source: c, dest: $HOME/c}
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"zzz", "aaa", "mmm"}, m.Names())
}

func TestParse_EmptyManifests(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty_document", ""},
		{"comment_only", "# nothing here\n"},
		{"null_document", "~\n"},
		{"no_configs_key", "other: value\n"},
		{"empty_configs", "configs: {}\n"},
		{"null_configs", "configs:\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse([]byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, 0, m.Len())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantCode errors.ErrorCode
		contains string
	}{
		{
			name:     "malformed_yaml",
			data:     "configs:\n  zsh: [unclosed\n",
			wantCode: errors.ErrConfigParse,
		},
		{
			name:     "top_level_list",
			data:     "- a\n- b\n",
			wantCode: errors.ErrConfigInvalid,
			contains: "top level",
		},
		{
			name:     "configs_is_list",
			data:     "configs:\n  - zsh\n",
			wantCode: errors.ErrConfigInvalid,
			contains: "configs",
		},
		{
			name:     "missing_source",
			data:     "configs:\n  zsh:\n    dest: $HOME\n",
			wantCode: errors.ErrConfigInvalid,
			contains: "source",
		},
		{
			name:     "missing_dest",
			data:     "configs:\n  zsh:\n    source: zsh\n",
			wantCode: errors.ErrConfigInvalid,
			contains: "dest",
		},
		{
			name:     "empty_entry",
			data:     "configs:\n  zsh:\n",
			wantCode: errors.ErrConfigInvalid,
			contains: "source",
		},
		{
			name:     "entry_is_scalar",
			data:     "configs:\n  zsh: just-a-string\n",
			wantCode: errors.ErrConfigInvalid,
			contains: "mapping",
		},
		{
			name:     "unknown_copy_mode",
			data:     "configs:\n  zsh:\n    source: zsh\n    dest: $HOME\n    copy_mode: merge\n",
			wantCode: errors.ErrConfigInvalid,
			contains: "merge",
		},
		{
			name:     "wrong_field_type",
			data:     "configs:\n  zsh:\n    source: zsh\n    dest: $HOME\n    notes: {a: b}\n",
			wantCode: errors.ErrConfigInvalid,
		},
		{
			name:     "duplicate_entry",
			data:     "configs:\n  zsh: {source: a, dest: b}\n  zsh: {source: c, dest: d}\n",
			contains: "zsh",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Nil(t, m)
			assert.True(t, errors.IsConfigError(err), "got %v", err)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errors.GetErrorCode(err), "got %v", err)
			}
			if tt.contains != "" {
				assert.Contains(t, err.Error(), tt.contains)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	fsys := afero.NewMemMapFs()

	t.Run("loads_file", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(fsys, "/dotfiles/mac.yaml", []byte(`
configs:
  zsh:
    source: zsh
    dest: $HOME
    dependencies:
      - zsh
`), 0644))

		m, err := Load(fsys, "/dotfiles/mac.yaml")
		require.NoError(t, err)
		assert.Equal(t, "/dotfiles/mac.yaml", m.Path)
		assert.Equal(t, []string{"zsh"}, m.Names())
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := Load(fsys, "/dotfiles/nonexistent.yaml")
		require.Error(t, err)
		assert.Equal(t, errors.ErrConfigNotFound, errors.GetErrorCode(err))
		assert.Equal(t, "/dotfiles/nonexistent.yaml", errors.GetErrorDetails(err)["path"])
	})

	t.Run("empty_configs", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(fsys, "/dotfiles/empty.yaml", []byte("configs: {}"), 0644))

		m, err := Load(fsys, "/dotfiles/empty.yaml")
		require.NoError(t, err)
		assert.Equal(t, 0, m.Len())
	})
}

func TestValidate_FillsDefaultCopyMode(t *testing.T) {
	entry := Entry{Source: "a", Dest: "b"}
	require.NoError(t, Validate("a", &entry))
	assert.Equal(t, CopyModeDirectory, entry.CopyMode)
}

func TestNilManifest(t *testing.T) {
	var m *Manifest
	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Names())
	_, ok := m.Get("x")
	assert.False(t, ok)
}
