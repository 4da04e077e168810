package config

import (
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
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
	Dashboard struct {
		Addr        string `yaml:"addr"`
		BackendHost string `yaml:"backend_host"`
	} `yaml:"dashboard"`
}

// LoadConfig reads configuration from the specified YAML file. Individual
// values can be overridden through the DATABASE_URL, LISTEN_ADDR,
// DASHBOARD_ADDR and BACKEND_HOST environment variables.
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

	config.applyEnvOverrides()
	return config, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.URL = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("DASHBOARD_ADDR"); v != "" {
		c.Dashboard.Addr = v
	}
	if v := os.Getenv("BACKEND_HOST"); v != "" {
		c.Dashboard.BackendHost = v
	}
}
