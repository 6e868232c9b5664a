package cli

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds CLI settings resolved from the config file, environment and
// flags, in increasing precedence.
type Config struct {
	Dialect string `koanf:"dialect"`
	Verbose bool   `koanf:"verbose"`
}

// findConfigFile finds the config file to use.
// Priority: explicit path > sqlcanon.yaml > sqlcanon.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"sqlcanon.yaml", "sqlcanon.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// loadConfig resolves settings from the optional YAML config file and
// SQLCANON_* environment variables.
func loadConfig(explicitPath string) (*Config, error) {
	k := koanf.New(".")

	if path := findConfigFile(explicitPath); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.Provider("SQLCANON_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "SQLCANON_"))
	}), nil); err != nil {
		return nil, err
	}

	cfg := &Config{Dialect: "mysql"}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
