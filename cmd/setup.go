package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/Staninbui/stars-fetcher/internal/config"
	"github.com/Staninbui/stars-fetcher/internal/domain"
	"github.com/Staninbui/stars-fetcher/internal/gateway"
)

// newGateway loads the configuration and builds the GitHub gateway for a
// command. Commands that act on the user's stars pass requireToken so an
// unauthenticated invocation fails before any network call.
func newGateway(cmd *cobra.Command, logger *log.Logger, requireToken bool) (gateway.Fetcher, error) {
	configPath, _ := cmd.InheritedFlags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if requireToken && cfg.GitHub.Token == "" {
		return nil, fmt.Errorf("%w: set GITHUB_TOKEN or the token field in the config file", domain.ErrTokenRequired)
	}
	gw, err := gateway.NewGitHubGateway(cfg.GitHub.Token, cfg.GitHub.APIEndpoint, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub gateway: %w", err)
	}
	return gw, nil
}
