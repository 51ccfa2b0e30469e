package config

import (
	dferrors "github.com/arthur-debert/dotfiles/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Settings controls how the tool runs
type Settings struct {
	Home      string      `koanf:"home" toml:"home"`
	Color     string      `koanf:"color" toml:"color"`
	Verbosity int         `koanf:"verbosity" toml:"verbosity"`
	Log       LogSettings `koanf:"log" toml:"log"`
}

// LogSettings holds logging options
type LogSettings struct {
	File bool `koanf:"file" toml:"file"`
}

// Validate checks enumerated values
func (s *Settings) Validate() error {
	switch s.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return dferrors.Newf(dferrors.ErrSettingsLoad, "invalid color %q (want %q, %q or %q)",
			s.Color, ColorAuto, ColorAlways, ColorNever)
	}
	if s.Verbosity < 0 {
		return dferrors.Newf(dferrors.ErrSettingsLoad, "invalid verbosity %d", s.Verbosity)
	}
	return nil
}

// TOML renders the settings in the settings file format
func (s *Settings) TOML() (string, error) {
	out, err := toml.Marshal(s)
	if err != nil {
		return "", dferrors.Wrap(err, dferrors.ErrInternal, "failed to render settings")
	}
	return string(out), nil
}
