// Package usecase contains the business logic of the application.
package usecase

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"

	"github.com/Staninbui/stars-fetcher/internal/domain"
	"github.com/Staninbui/stars-fetcher/internal/gateway"
)

// Result is the outcome of a single lookup in a batch. Exactly one of
// Count and Err is set.
type Result struct {
	Input string
	Count *domain.StarCount
	Err   error
}

// Runner executes star-count lookups for a batch of raw identifiers.
// A failure for one identifier never aborts the rest, and results are
// reported in input order regardless of the worker count.
type Runner struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
	workers int
}

// NewRunner creates a new Runner instance. workers <= 1 means strictly
// sequential execution, one request resolved before the next starts.
func NewRunner(fetcher gateway.Fetcher, logger *log.Logger, workers int) *Runner {
	return &Runner{
		fetcher: fetcher,
		logger:  logger,
		workers: workers,
	}
}

// Run looks up every identifier and returns one Result per input, in
// input order.
func (r *Runner) Run(ctx context.Context, inputs []string) []Result {
	r.logger.Printf("Usecase: Starting batch of %d lookups (workers=%d)...", len(inputs), r.workers)
	results := make([]Result, len(inputs))

	if r.workers <= 1 {
		for i, input := range inputs {
			results[i] = r.lookup(ctx, input)
		}
		r.logger.Println("Usecase: Batch complete.")
		return results
	}

	// Plain errgroup, not WithContext: one failed lookup must not cancel
	// the remaining ones. Each goroutine owns its own slice index.
	eg := new(errgroup.Group)
	eg.SetLimit(r.workers)
	for i, input := range inputs {
		i, input := i, input
		eg.Go(func() error {
			results[i] = r.lookup(ctx, input)
			return nil
		})
	}
	_ = eg.Wait()
	r.logger.Println("Usecase: Batch complete.")
	return results
}

func (r *Runner) lookup(ctx context.Context, input string) Result {
	id, err := domain.ParseIdentifier(input)
	if err != nil {
		return Result{Input: input, Err: err}
	}
	count, err := r.fetcher.FetchStars(ctx, id)
	if err != nil {
		return Result{Input: input, Err: err}
	}
	return Result{
		Input: input,
		Count: &domain.StarCount{Repo: id.String(), Stars: count},
	}
}

// ReadIdentifiers reads newline-delimited identifiers, skipping blank and
// whitespace-only lines. Malformed lines are kept; they surface as
// per-identifier parse failures when the batch runs.
func ReadIdentifiers(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	var inputs []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read identifiers: %w", err)
	}
	return inputs, nil
}

// Summarize computes descriptive statistics over the successful star counts
// of a batch. It returns nil when no lookup succeeded.
func Summarize(results []Result) (*domain.Summary, error) {
	var counts []float64
	for _, res := range results {
		if res.Err == nil && res.Count != nil {
			counts = append(counts, float64(res.Count.Stars))
		}
	}
	if len(counts) == 0 {
		return nil, nil
	}

	min, err := stats.Min(counts)
	if err != nil {
		return nil, fmt.Errorf("failed to compute min: %w", err)
	}
	max, err := stats.Max(counts)
	if err != nil {
		return nil, fmt.Errorf("failed to compute max: %w", err)
	}
	mean, err := stats.Mean(counts)
	if err != nil {
		return nil, fmt.Errorf("failed to compute mean: %w", err)
	}
	median, err := stats.Median(counts)
	if err != nil {
		return nil, fmt.Errorf("failed to compute median: %w", err)
	}

	return &domain.Summary{
		Repos:  len(counts),
		Min:    min,
		Max:    max,
		Mean:   mean,
		Median: median,
	}, nil
}
