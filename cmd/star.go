package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Staninbui/stars-fetcher/internal/domain"
)

var starCmd = &cobra.Command{
	Use:   "star <owner/repo>",
	Short: "Stars a repository for the authenticated user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := newLogger(cmd)

		id, err := domain.ParseIdentifier(args[0])
		if err != nil {
			return err
		}
		gw, err := newGateway(cmd, logger, true)
		if err != nil {
			return err
		}
		if err := gw.Star(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Starred repository %s\n", id)
		return nil
	},
}

var unstarCmd = &cobra.Command{
	Use:   "unstar <owner/repo>",
	Short: "Unstars a repository for the authenticated user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := newLogger(cmd)

		id, err := domain.ParseIdentifier(args[0])
		if err != nil {
			return err
		}
		gw, err := newGateway(cmd, logger, true)
		if err != nil {
			return err
		}
		if err := gw.Unstar(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Unstarred repository %s\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(starCmd)
	rootCmd.AddCommand(unstarCmd)
}
