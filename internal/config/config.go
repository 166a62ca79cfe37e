package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Settings read from the environment. Command line flags take precedence
// over these when both are present.
type Settings struct {
	Debug bool `env:"XPALETTE_DEBUG"`

	// Left empty when unset, the caller picks the default.
	PaletteFile string `env:"XPALETTE_FILE,expand"`

	// Refuse short palettes up front instead of emitting whatever they
	// have and failing at the first missing index.
	Strict bool `env:"XPALETTE_STRICT"`
}

func Load() (Settings, error) {
	var settings Settings
	if err := env.Parse(&settings); err != nil {
		return Settings{}, errors.Wrap(err, "could not parse configuration")
	}

	return settings, nil
}
