package logfactory

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
)

// envConfig mirrors Config for environment loading.
type envConfig struct {
	Level      string `env:"LOGFACTORY_LEVEL" env-default:"debug"`
	Colorize   bool   `env:"LOGFACTORY_COLORIZE" env-default:"false"`
	Timestamps bool   `env:"LOGFACTORY_TIMESTAMPS" env-default:"false"`
}

// FromEnv builds a Config from the LOGFACTORY_LEVEL, LOGFACTORY_COLORIZE
// and LOGFACTORY_TIMESTAMPS environment variables. Unset variables take
// their defaults; an unknown level name falls back to info.
func FromEnv() (Config, error) {
	var ec envConfig
	if err := cleanenv.ReadEnv(&ec); err != nil {
		return Config{}, errors.Wrap(err, "read logfactory environment")
	}
	return Config{
		MinLevel:       parseLevel(ec.Level),
		Colorize:       ec.Colorize,
		ShowTimestamps: ec.Timestamps,
	}, nil
}
