// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/Staninbui/stars-fetcher/internal/config"
	"github.com/Staninbui/stars-fetcher/internal/domain"
)

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	FetchStars(ctx context.Context, id domain.Identifier) (int, error)
	FetchDetail(ctx context.Context, id domain.Identifier) (*domain.RepoDetail, error)
	ListStarred(ctx context.Context) ([]domain.Starred, error)
	Star(ctx context.Context, id domain.Identifier) error
	Unstar(ctx context.Context, id domain.Identifier) error
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	logger        *log.Logger
}

// repoDetailQuery fetches the metadata shown by the detail command in one round trip.
type repoDetailQuery struct {
	Repository struct {
		StargazerCount githubv4.Int
		Description    githubv4.String
		URL            githubv4.URI
	} `graphql:"repository(owner: $owner, name: $name)"`
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// An empty token yields an unauthenticated client. apiEndpoint rebases both
// clients onto a non-default host (GitHub Enterprise or a test server).
func NewGitHubGateway(token, apiEndpoint string, logger *log.Logger) (Fetcher, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	var transport http.RoundTripper = rateLimitWaiter
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		transport = &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		}
	}
	httpClient := &http.Client{
		Transport: transport,
		Timeout:   30 * time.Second,
	}

	restClient := github.NewClient(httpClient)
	graphqlClient := githubv4.NewClient(httpClient)
	if apiEndpoint != "" && apiEndpoint != config.DefaultAPIEndpoint {
		trimmed := strings.TrimSuffix(apiEndpoint, "/")
		baseURL, err := url.Parse(trimmed + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid api endpoint %q: %w", apiEndpoint, err)
		}
		restClient.BaseURL = baseURL
		graphqlClient = githubv4.NewEnterpriseClient(trimmed+"/graphql", httpClient)
	}

	return &GitHubGateway{
		restClient:    restClient,
		graphqlClient: graphqlClient,
		logger:        logger,
	}, nil
}

// FetchStars returns the stargazer count for a single repository.
func (g *GitHubGateway) FetchStars(ctx context.Context, id domain.Identifier) (int, error) {
	g.logger.Printf("Fetching star count for %s using REST API...", id)
	repo, _, err := g.restClient.Repositories.Get(ctx, id.Owner, id.Name)
	if err != nil {
		if statusErr := asStatusError(id, err); statusErr != nil {
			return 0, statusErr
		}
		return 0, fmt.Errorf("failed to fetch repository %s: %w", id, err)
	}
	return repo.GetStargazersCount(), nil
}

// FetchDetail returns extended repository metadata via the GraphQL API.
func (g *GitHubGateway) FetchDetail(ctx context.Context, id domain.Identifier) (*domain.RepoDetail, error) {
	g.logger.Printf("Fetching detail for %s using GraphQL API...", id)
	variables := map[string]interface{}{
		"owner": githubv4.String(id.Owner),
		"name":  githubv4.String(id.Name),
	}
	var q repoDetailQuery
	if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
		return nil, fmt.Errorf("failed to execute GraphQL query for %s: %w", id, err)
	}
	detail := &domain.RepoDetail{
		Repo:        id.String(),
		Stars:       int(q.Repository.StargazerCount),
		Description: string(q.Repository.Description),
	}
	if q.Repository.URL.URL != nil {
		detail.HTMLURL = q.Repository.URL.String()
	}
	return detail, nil
}

// ListStarred returns the authenticated user's starred repositories.
func (g *GitHubGateway) ListStarred(ctx context.Context) ([]domain.Starred, error) {
	g.logger.Println("Fetching starred repositories using REST API...")
	opts := &github.ActivityListStarredOptions{ListOptions: github.ListOptions{PerPage: 100}}
	repos, _, err := g.restClient.Activity.ListStarred(ctx, "", opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list starred repositories: %w", err)
	}
	starred := make([]domain.Starred, 0, len(repos))
	for _, starredRepo := range repos {
		repo := starredRepo.GetRepository()
		starred = append(starred, domain.Starred{
			Repo:        repo.GetFullName(),
			Stars:       repo.GetStargazersCount(),
			Description: repo.GetDescription(),
		})
	}
	return starred, nil
}

// Star stars a repository for the authenticated user.
func (g *GitHubGateway) Star(ctx context.Context, id domain.Identifier) error {
	g.logger.Printf("Starring %s...", id)
	if _, err := g.restClient.Activity.Star(ctx, id.Owner, id.Name); err != nil {
		if statusErr := asStatusError(id, err); statusErr != nil {
			return statusErr
		}
		return fmt.Errorf("failed to star %s: %w", id, err)
	}
	return nil
}

// Unstar removes a star from a repository for the authenticated user.
func (g *GitHubGateway) Unstar(ctx context.Context, id domain.Identifier) error {
	g.logger.Printf("Unstarring %s...", id)
	if _, err := g.restClient.Activity.Unstar(ctx, id.Owner, id.Name); err != nil {
		if statusErr := asStatusError(id, err); statusErr != nil {
			return statusErr
		}
		return fmt.Errorf("failed to unstar %s: %w", id, err)
	}
	return nil
}

// asStatusError converts go-github API errors into a domain.StatusError
// carrying the identifier and status code. Transport failures return nil
// so the caller wraps them instead.
func asStatusError(id domain.Identifier, err error) error {
	var apiErr *github.ErrorResponse
	if errors.As(err, &apiErr) && apiErr.Response != nil {
		return &domain.StatusError{Repo: id.String(), StatusCode: apiErr.Response.StatusCode}
	}
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) && rateErr.Response != nil {
		return &domain.StatusError{Repo: id.String(), StatusCode: rateErr.Response.StatusCode}
	}
	return nil
}
