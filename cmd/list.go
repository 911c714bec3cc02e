package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the authenticated user's starred repositories",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := newLogger(cmd)

		gw, err := newGateway(cmd, logger, true)
		if err != nil {
			return err
		}
		starred, err := gw.ListStarred(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			jsonData, err := json.MarshalIndent(starred, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal results to JSON: %w", err)
			}
			fmt.Fprintln(out, string(jsonData))
			return nil
		}
		for _, repo := range starred {
			if repo.Description != "" {
				fmt.Fprintf(out, "%s: %d\t%s\n", repo.Repo, repo.Stars, repo.Description)
				continue
			}
			fmt.Fprintf(out, "%s: %d\n", repo.Repo, repo.Stars)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("json", false, "Output as JSON")
}
