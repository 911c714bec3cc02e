// Package config loads the application configuration from a YAML file,
// a .env file, and environment variables, in increasing precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultAPIEndpoint is the public GitHub REST API endpoint. A different
// endpoint can be configured for GitHub Enterprise deployments.
const DefaultAPIEndpoint = "https://api.github.com"

// Config is the top-level application configuration.
type Config struct {
	GitHub GitHubConfig `yaml:"github"`
}

// GitHubConfig holds everything needed to talk to the GitHub API.
// An empty token is allowed: lookups then run unauthenticated at the
// lower rate limit, while commands that touch the user's stars refuse to run.
type GitHubConfig struct {
	Token       string `yaml:"token"`
	APIEndpoint string `yaml:"api_endpoint"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		GitHub: GitHubConfig{
			APIEndpoint: DefaultAPIEndpoint,
		},
	}
}

// Load builds the effective configuration. If path is non-empty the file
// must exist and parse; otherwise the standard locations are tried and
// missing files are not an error:
//   - .stars-fetcher.yaml (current directory)
//   - ~/.config/stars-fetcher/config.yaml
//
// A .env file in the current directory is applied first (best effort),
// then GITHUB_TOKEN and GITHUB_API_ENDPOINT override whatever the file set.
func Load(path string) (*Config, error) {
	// Populate the environment from .env before reading overrides.
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	} else {
		for _, candidate := range defaultPaths() {
			if _, err := os.Stat(candidate); err != nil {
				continue
			}
			if err := loadFile(candidate, cfg); err != nil {
				return nil, err
			}
			break
		}
	}

	applyEnvOverrides(cfg)

	if cfg.GitHub.APIEndpoint == "" {
		cfg.GitHub.APIEndpoint = DefaultAPIEndpoint
	}
	return cfg, nil
}

func defaultPaths() []string {
	paths := []string{".stars-fetcher.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "stars-fetcher", "config.yaml"))
	}
	return paths
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		cfg.GitHub.Token = token
	}
	if endpoint := os.Getenv("GITHUB_API_ENDPOINT"); endpoint != "" {
		cfg.GitHub.APIEndpoint = endpoint
	}
}
