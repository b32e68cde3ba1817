// Package config loads tool defaults: built-in values overlaid by the
// user's config file. Flags override everything here, so the loaded
// Config only supplies defaults for flags the user did not pass.
package config

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/tsubst/pkg/errors"
	"github.com/arthur-debert/tsubst/pkg/logging"
)

//go:embed tsubst.toml
var defaultConfig []byte

// Config holds the tunable defaults
type Config struct {
	Extension string `koanf:"extension" toml:"extension"`
	Recursive bool   `koanf:"recursive" toml:"recursive"`
	Expand    bool   `koanf:"expand" toml:"expand"`
	Silent    bool   `koanf:"silent" toml:"silent"`
}

// FilePath returns the user config file location.
// It respects XDG_CONFIG_HOME if set, otherwise uses the xdg default.
func FilePath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	return filepath.Join(configHome, "tsubst", "tsubst.toml")
}

// Load returns the effective defaults: embedded values overlaid by the
// user config file when one exists.
func Load() (*Config, error) {
	return loadFrom(FilePath())
}

func loadFrom(userPath string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load built-in defaults")
	}

	// 2. User config, when present
	if _, err := os.Stat(userPath); err == nil {
		if err := k.Load(file.Provider(userPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse,
				"failed to parse config file %s", userPath)
		}
		logger.Debug().Str("path", userPath).Msg("Loaded user config")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid config structure")
	}
	return &cfg, nil
}

// TOML renders the config for `tsubst genconfig`, so users can seed
// their config file with the effective values.
func (c *Config) TOML() (string, error) {
	out, err := gotoml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render config")
	}
	return string(out), nil
}

// rawBytesProvider implements koanf.Provider over an in-memory byte
// slice, used for the embedded defaults.
type rawBytesProvider struct {
	bytes []byte
}

func (r *rawBytesProvider) ReadBytes() ([]byte, error) {
	return r.bytes, nil
}

func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "rawBytesProvider does not support Read")
}
