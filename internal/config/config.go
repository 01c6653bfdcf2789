package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Gong      GongConfig      `yaml:"gong"`
	Server    ServerConfig    `yaml:"server"`
	Transport TransportConfig `yaml:"transport"`
	Log       LogConfig       `yaml:"log"`
}

// GongConfig holds the upstream API credentials. All three values are
// required together; a partial set leaves the server unconfigured.
type GongConfig struct {
	BaseURL         string `yaml:"base_url"`
	AccessKey       string `yaml:"access_key"`
	AccessKeySecret string `yaml:"access_key_secret"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type TransportConfig struct {
	Mode string `yaml:"mode"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Credentials is the read-only view of the upstream credentials handed to
// the core. Immutable for the process lifetime; the core never reads the
// environment itself.
type Credentials struct {
	BaseURL         string
	AccessKey       string
	AccessKeySecret string
}

// Configured reports whether every credential value is present. This is the
// single gate checked before any upstream call.
func (c Credentials) Configured() bool {
	return c.BaseURL != "" && c.AccessKey != "" && c.AccessKeySecret != ""
}

// Credentials returns the upstream credential view.
func (c Config) Credentials() Credentials {
	return Credentials{
		BaseURL:         c.Gong.BaseURL,
		AccessKey:       c.Gong.AccessKey,
		AccessKeySecret: c.Gong.AccessKeySecret,
	}
}

// Load reads configuration from an optional YAML file and environment
// variables. Environment values override file values.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
		Transport: TransportConfig{
			Mode: "stdio",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("GONG_MCP_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if baseURL := os.Getenv("GONG_BASE_URL"); baseURL != "" {
		cfg.Gong.BaseURL = baseURL
	}
	if key := os.Getenv("GONG_ACCESS_KEY"); key != "" {
		cfg.Gong.AccessKey = key
	}
	if secret := os.Getenv("GONG_ACCESS_KEY_SECRET"); secret != "" {
		cfg.Gong.AccessKeySecret = secret
	}
	if host := os.Getenv("GONG_MCP_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("GONG_MCP_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid GONG_MCP_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if mode := os.Getenv("GONG_MCP_TRANSPORT"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if level := os.Getenv("GONG_MCP_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
