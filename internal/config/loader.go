package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "config.yaml"

// Load assembles the Config from env-default tags, then the YAML file, then
// the environment, later sources winning. The file is CONFIG_PATH when set
// and must exist; otherwise ./config.yaml is read if present.
func Load() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	required := path != ""
	if !required {
		path = defaultConfigPath
	}

	cfg, err := read(path, required)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

func read(path string, required bool) (*Config, error) {
	var cfg Config

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case required || !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}
	return &cfg, nil
}
