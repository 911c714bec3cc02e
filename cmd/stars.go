// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Staninbui/stars-fetcher/internal/domain"
	"github.com/Staninbui/stars-fetcher/internal/usecase"
)

// starsReport is the JSON shape of a batch run.
type starsReport struct {
	Results []domain.StarCount `json:"results"`
	Summary *domain.Summary    `json:"summary,omitempty"`
}

var starsCmd = &cobra.Command{
	Use:   "stars [owner/repo...]",
	Short: "Fetches star counts for one or more repositories",
	Long: `Fetches the star count for every given "owner/repo" identifier and prints
one line per repository. Identifiers come from the arguments, from a
newline-delimited batch file (--file), or both. A failed lookup is reported
on standard error and the batch continues; the exit code is non-zero if any
lookup failed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := newLogger(cmd)

		filePath, _ := cmd.Flags().GetString("file")
		withSummary, _ := cmd.Flags().GetBool("summary")
		workers, _ := cmd.Flags().GetInt("workers")
		output, _ := cmd.Flags().GetString("output")
		if output != "text" && output != "json" {
			return fmt.Errorf("invalid --output %q: must be \"text\" or \"json\"", output)
		}

		inputs := args
		if filePath != "" {
			// A batch file that cannot be opened or read is fatal before
			// any network call.
			f, err := os.Open(filePath)
			if err != nil {
				return fmt.Errorf("failed to open batch file: %w", err)
			}
			fileInputs, err := usecase.ReadIdentifiers(f)
			f.Close()
			if err != nil {
				return fmt.Errorf("failed to read batch file %s: %w", filePath, err)
			}
			inputs = append(inputs, fileInputs...)
		}
		if len(inputs) == 0 {
			return errors.New("no repositories given: pass owner/repo arguments or --file")
		}

		gw, err := newGateway(cmd, logger, false)
		if err != nil {
			return err
		}
		runner := usecase.NewRunner(gw, logger, workers)
		results := runner.Run(ctx, inputs)

		var summary *domain.Summary
		if withSummary {
			summary, err = usecase.Summarize(results)
			if err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		errOut := cmd.ErrOrStderr()
		failed := 0
		counts := make([]domain.StarCount, 0, len(results))
		for _, res := range results {
			if res.Err != nil {
				fmt.Fprintf(errOut, "%s: %v\n", res.Input, res.Err)
				failed++
				continue
			}
			counts = append(counts, *res.Count)
		}

		switch output {
		case "json":
			jsonData, err := json.MarshalIndent(starsReport{Results: counts, Summary: summary}, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal results to JSON: %w", err)
			}
			fmt.Fprintln(out, string(jsonData))
		default:
			for _, count := range counts {
				fmt.Fprintf(out, "%s: %d\n", count.Repo, count.Stars)
			}
			if summary != nil {
				fmt.Fprintf(out, "summary: repos=%d min=%g max=%g mean=%g median=%g\n",
					summary.Repos, summary.Min, summary.Max, summary.Mean, summary.Median)
			}
		}

		if failed > 0 {
			return fmt.Errorf("%w: %d of %d", domain.ErrPartialFailure, failed, len(results))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(starsCmd)
	starsCmd.Flags().StringP("file", "f", "", "Path to a newline-delimited file of owner/repo identifiers")
	starsCmd.Flags().Bool("summary", false, "Print min/max/mean/median of the fetched star counts")
	starsCmd.Flags().Int("workers", 1, "Number of concurrent lookups (1 = sequential)")
	starsCmd.Flags().StringP("output", "o", "text", "Output format: text or json")
}
