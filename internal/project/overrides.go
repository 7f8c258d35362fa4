package project

import (
	"flag"
	"fmt"

	"github.com/piwi3910/rectcut/internal/model"
)

// Overrides are command-line values that take precedence over the config
// file. Zero values leave the file's setting alone.
type Overrides struct {
	ConfigPath string
	Mode       string
	Scale      int
	LogLevel   string
}

// RegisterFlags binds the overrides to fs.
func (o *Overrides) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&o.ConfigPath, "config", DefaultConfigPath(), "path to the config file (.json, .yaml or .yml)")
	fs.StringVar(&o.Mode, "mode", "", "interaction mode: cut or drag")
	fs.IntVar(&o.Scale, "scale", 0, "screen pixels per partition unit")
	fs.StringVar(&o.LogLevel, "log-level", "", "log level: debug, info, warn or error")
}

// Load reads the config file and applies the overrides on top.
func (o Overrides) Load() (model.AppConfig, error) {
	cfg, err := LoadAppConfig(o.ConfigPath)
	if err != nil {
		return model.AppConfig{}, err
	}
	return o.Apply(cfg)
}

// Apply returns cfg with the non-zero overrides applied.
func (o Overrides) Apply(cfg model.AppConfig) (model.AppConfig, error) {
	if o.Mode != "" {
		mode, err := model.ParseMode(o.Mode)
		if err != nil {
			return model.AppConfig{}, err
		}
		cfg.Mode = mode
	}
	if o.Scale != 0 {
		cfg.Scale = o.Scale
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return model.AppConfig{}, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}
