// Package domain contains the core data structures and domain logic for the application.
package domain

import (
	"fmt"
	"strings"
)

// Identifier names a repository on the API host as an owner/name pair.
type Identifier struct {
	Owner string
	Name  string
}

// ParseIdentifier parses an "owner/repo" string into an Identifier.
// The string must contain a "/" splitting it into two non-empty segments;
// anything else fails with ErrInvalidIdentifier.
func ParseIdentifier(s string) (Identifier, error) {
	owner, name, ok := strings.Cut(s, "/")
	if !ok || owner == "" || name == "" {
		return Identifier{}, fmt.Errorf("%w: %q (expected owner/repo)", ErrInvalidIdentifier, s)
	}
	return Identifier{Owner: owner, Name: name}, nil
}

func (id Identifier) String() string {
	return id.Owner + "/" + id.Name
}

// StarCount holds the star total for a single repository.
// It is the core domain entity of this application.
type StarCount struct {
	Repo  string `json:"repo"`
	Stars int    `json:"stars"`
}

// RepoDetail holds the extended metadata shown by the detail command.
type RepoDetail struct {
	Repo        string `json:"repo"`
	Stars       int    `json:"stars"`
	Description string `json:"description,omitempty"`
	HTMLURL     string `json:"html_url"`
}

// Starred is one entry of the authenticated user's starred repositories.
type Starred struct {
	Repo        string `json:"repo"`
	Stars       int    `json:"stars"`
	Description string `json:"description,omitempty"`
}

// Summary holds descriptive statistics over the star counts of a batch.
type Summary struct {
	Repos  int     `json:"repos"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
}
