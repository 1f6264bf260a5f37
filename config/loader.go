package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const defaultPort = 8080

// Default returns the configuration used when no config file is given.
func Default() AppConfig {
	return AppConfig{Server: ServerConfig{Port: defaultPort}}
}

// Load reads and validates the application configuration from a YAML
// file. Missing optional values keep their defaults.
func Load(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return AppConfig{}, err
	}
	if err := v.Struct(cfg.Routing); err != nil {
		return AppConfig{}, err
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	return cfg, nil
}
