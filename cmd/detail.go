package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Staninbui/stars-fetcher/internal/domain"
)

var detailCmd = &cobra.Command{
	Use:   "detail <owner/repo>",
	Short: "Shows detailed information about a repository",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := newLogger(cmd)

		id, err := domain.ParseIdentifier(args[0])
		if err != nil {
			return err
		}
		gw, err := newGateway(cmd, logger, false)
		if err != nil {
			return err
		}
		detail, err := gw.FetchDetail(ctx, id)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			jsonData, err := json.MarshalIndent(detail, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal detail to JSON: %w", err)
			}
			fmt.Fprintln(out, string(jsonData))
			return nil
		}
		fmt.Fprintf(out, "%s: %d\n", detail.Repo, detail.Stars)
		if detail.Description != "" {
			fmt.Fprintf(out, "description: %s\n", detail.Description)
		}
		if detail.HTMLURL != "" {
			fmt.Fprintf(out, "url: %s\n", detail.HTMLURL)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(detailCmd)
	detailCmd.Flags().Bool("json", false, "Output as JSON")
}
