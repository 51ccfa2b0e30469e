package config

import (
	_ "embed"
	"errors"
	"os"
	"strings"

	dferrors "github.com/arthur-debert/dotfiles/pkg/errors"
	"github.com/arthur-debert/dotfiles/pkg/logging"
	"github.com/arthur-debert/dotfiles/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read as settings
const EnvPrefix = "DOTFILES_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load reads settings from the defaults, the user settings file and the
// environment
func Load() (*Settings, error) {
	return LoadFrom(paths.SettingsFilePath())
}

// LoadFrom is Load with an explicit settings file. A missing file is skipped.
func LoadFrom(settingsPath string) (*Settings, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, dferrors.Wrap(err, dferrors.ErrSettingsLoad, "failed to load defaults")
	}

	if settingsPath != "" {
		if _, err := os.Stat(settingsPath); err == nil {
			if err := k.Load(file.Provider(settingsPath), toml.Parser()); err != nil {
				return nil, dferrors.Wrapf(err, dferrors.ErrSettingsLoad, "failed to load settings from %s", settingsPath)
			}
			logger.Debug().Str("path", settingsPath).Msg("Settings file loaded")
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, dferrors.Wrap(err, dferrors.ErrSettingsLoad, "failed to load env vars")
	}

	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return nil, dferrors.Wrap(err, dferrors.ErrSettingsLoad, "failed to unmarshal settings")
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("home", s.Home).
		Str("color", s.Color).
		Int("verbosity", s.Verbosity).
		Bool("logFile", s.Log.File).
		Msg("Settings resolved")

	return &s, nil
}
