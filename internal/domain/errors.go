package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across the application. They map to distinct
// exit codes in the CLI so the tool stays scriptable.
var (
	// ErrInvalidIdentifier indicates a repository identifier that is not
	// of the form "owner/repo".
	ErrInvalidIdentifier = errors.New("invalid repository identifier")

	// ErrPartialFailure indicates that at least one lookup in a batch failed.
	ErrPartialFailure = errors.New("one or more lookups failed")

	// ErrTokenRequired indicates a command that needs an authenticated
	// client was run without a token configured.
	ErrTokenRequired = errors.New("a GitHub token is required for this command")
)

// StatusError reports a non-success HTTP status from the GitHub API.
// It carries the repository identifier so a batch can report which
// lookup failed without aborting the rest.
type StatusError struct {
	Repo       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("github api returned status %d for %s", e.StatusCode, e.Repo)
}
