// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Staninbui/stars-fetcher/internal/domain"
)

var rootCmd = &cobra.Command{
	Use:   "stars-fetcher",
	Short: "A CLI tool to fetch GitHub repository star counts.",
	Long: `stars-fetcher is a CLI tool that looks up star counts for one or many
repositories named by "owner/repo" identifiers, either from arguments or from
a newline-delimited batch file. It can also list, star and unstar repositories
for the authenticated user.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps errors to exit codes: 1 for lookup failures within a batch,
// 2 for everything that prevented the tool from running at all.
func exitCode(err error) int {
	if errors.Is(err, domain.ErrPartialFailure) {
		return 1
	}
	return 2
}

// newLogger builds the debug logger. All logs are discarded unless the
// --verbose flag is set, in which case they go to standard error.
func newLogger(cmd *cobra.Command) *log.Logger {
	verbose, _ := cmd.InheritedFlags().GetBool("verbose")
	logger := log.New(io.Discard, "", log.LstdFlags)
	if verbose {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func init() {
	// Flags available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("config", "", "Path to the config file")
}
