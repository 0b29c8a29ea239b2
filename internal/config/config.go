// Package config loads gqlbridge configuration from a TOML file with
// defaults and environment overrides.
package config

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/sableworks/gqlbridge/internal/common"
)

// DefaultPath is the config file used when neither the -config flag nor
// the GQLBRIDGE_CONFIG environment variable names one.
const DefaultPath = "gqlbridge.toml"

// Usage is printed to stderr alongside fatal configuration errors.
const Usage = `gqlbridge requires a TOML config file (default: gqlbridge.toml,
override with -config or GQLBRIDGE_CONFIG). Example:

    name = "gqlbridge"

    [graphql]
    endpoint   = "https://api.example.com/graphql"
    operations = "./operations"

    [graphql.headers]
    Authorization = "Bearer <token>"

    [server]
    port = "4270"

    [logging]
    level = "info"

The operations directory holds one .graphql or .gql file per tool.`

// GraphQLConfig holds the target endpoint and the operations directory.
type GraphQLConfig struct {
	Endpoint   string            `toml:"endpoint"`
	Operations string            `toml:"operations"`
	Headers    map[string]string `toml:"headers"`
}

// ServerConfig holds MCP streamable HTTP transport settings.
type ServerConfig struct {
	Port string `toml:"port"`
}

// Config holds all gqlbridge configuration.
type Config struct {
	Name    string               `toml:"name"`
	Version string               `toml:"version"`
	GraphQL GraphQLConfig        `toml:"graphql"`
	Server  ServerConfig         `toml:"server"`
	Logging common.LoggingConfig `toml:"logging"`
}

// NewDefaultConfig returns a Config with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Name: "gqlbridge",
		Server: ServerConfig{
			Port: "4270",
		},
		Logging: common.LoggingConfig{
			Level:      "info",
			Outputs:    []string{"console", "file"},
			FilePath:   "logs/gqlbridge.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}

// ResolvePath resolves the config file location: explicit flag value first,
// then the GQLBRIDGE_CONFIG environment variable, then DefaultPath.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if p := os.Getenv("GQLBRIDGE_CONFIG"); p != "" {
		return p
	}
	return DefaultPath
}

// Load loads configuration with priority: defaults -> file -> env.
// A missing or unreadable file is an error: the process must not start
// without an endpoint and an operations directory.
func Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies GQLBRIDGE_* environment variable overrides.
func applyEnvOverrides(cfg *Config) {
	if endpoint := os.Getenv("GQLBRIDGE_ENDPOINT"); endpoint != "" {
		cfg.GraphQL.Endpoint = endpoint
	}
	if dir := os.Getenv("GQLBRIDGE_OPERATIONS"); dir != "" {
		cfg.GraphQL.Operations = dir
	}
	if port := os.Getenv("GQLBRIDGE_PORT"); port != "" {
		cfg.Server.Port = port
	}
	if level := os.Getenv("GQLBRIDGE_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
}

// Validate checks that required fields are present.
func (c *Config) Validate() error {
	if c.GraphQL.Endpoint == "" {
		return fmt.Errorf("config is missing required field graphql.endpoint")
	}
	if c.GraphQL.Operations == "" {
		return fmt.Errorf("config is missing required field graphql.operations")
	}
	return nil
}
