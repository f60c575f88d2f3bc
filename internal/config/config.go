package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application's configuration.
type Config struct {
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`

	// JWTSecret comes from the environment only; it is never read from the
	// config file.
	JWTSecret string `yaml:"-"`
}

// LoadConfig reads configuration from the specified YAML file and the
// environment. A missing JWT_SECRET is a load error: the service must not
// start without a signing key.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	if url := os.Getenv("DATABASE_URL"); url != "" {
		config.Database.URL = url
	}
	if config.Database.URL == "" {
		return nil, errors.New("database url is required")
	}

	config.JWTSecret = os.Getenv("JWT_SECRET")
	if config.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET environment variable is required")
	}

	if config.Server.Port == "" {
		config.Server.Port = ":8080"
	}

	return config, nil
}
