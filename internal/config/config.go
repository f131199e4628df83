// Package config loads server configuration from a YAML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// AuthConfig holds the basic-auth principal accepted by the API.
type AuthConfig struct {
	Username string `mapstructure:"username" yaml:"username"`
	Password string `mapstructure:"password" yaml:"password"`
}

// HTTPConfig holds the listener settings.
type HTTPConfig struct {
	Address string        `mapstructure:"address" yaml:"address"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// Config is the top-level server configuration.
type Config struct {
	LogLevel string     `mapstructure:"log_level" yaml:"log_level"`
	DBPath   string     `mapstructure:"db_path" yaml:"db_path"`
	HTTP     HTTPConfig `mapstructure:"http" yaml:"http"`
	Auth     AuthConfig `mapstructure:"auth" yaml:"auth"`
}

// defaultConfig returns a sensible default configuration.
func defaultConfig() *Config {
	return &Config{
		LogLevel: "INFO",
		DBPath:   "todos.db",
		HTTP: HTTPConfig{
			Address: ":8080",
			Timeout: 5 * time.Second,
		},
	}
}

// Load reads configuration from the given YAML file path using Viper.
// If the file does not exist, defaults plus environment overrides are used.
// Every key can be overridden via a TODO_-prefixed environment variable,
// e.g. TODO_AUTH_PASSWORD or TODO_HTTP_ADDRESS.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("log_level", "INFO")
	v.SetDefault("db_path", "todos.db")
	v.SetDefault("http.address", ":8080")
	v.SetDefault("http.timeout", 5*time.Second)
	v.SetDefault("auth.username", "")
	v.SetDefault("auth.password", "")

	v.SetEnvPrefix("TODO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		_, pathErr := err.(*os.PathError)
		_, notFoundErr := err.(viper.ConfigFileNotFoundError)
		if !pathErr && !notFoundErr {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := defaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Auth.Username == "" || cfg.Auth.Password == "" {
		return nil, fmt.Errorf("auth.username and auth.password must be set")
	}

	return cfg, nil
}
