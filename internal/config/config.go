package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/cplx/internal/display"
)

// Config holds environment-driven display defaults. Command-line flags
// override every field.
type Config struct {
	Mode    string `env:"CPLX_DISPLAY_MODE"    envDefault:"tuple"`
	Degrees bool   `env:"CPLX_DISPLAY_DEGREES" envDefault:"false"`
	Locale  string `env:"CPLX_LOCALE"`
}

// Default returns the configuration used when the environment is empty.
func Default() Config {
	return Config{Mode: display.Tuple.String()}
}

// Load parses the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LoadFrom parses the given variables instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks the mode name and locale tag.
func (c Config) Validate() error {
	if _, err := display.ParseMode(c.Mode); err != nil {
		return err
	}
	if c.Locale != "" {
		if _, err := language.Parse(c.Locale); err != nil {
			return fmt.Errorf("invalid locale %q: %w", c.Locale, err)
		}
	}
	return nil
}

// DisplayMode returns the parsed mode.
func (c Config) DisplayMode() (display.Mode, error) {
	return display.ParseMode(c.Mode)
}

// DisplayOptions builds rendering options. An empty locale yields plain
// C-locale output.
func (c Config) DisplayOptions() (display.Options, error) {
	opts := display.Options{Degrees: c.Degrees}
	if c.Locale == "" {
		return opts, nil
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return display.Options{}, fmt.Errorf("invalid locale %q: %w", c.Locale, err)
	}
	opts.Printer = message.NewPrinter(tag)
	return opts, nil
}
