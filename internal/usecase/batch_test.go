package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Staninbui/stars-fetcher/internal/domain"
)

// mockFetcher is a mock implementation of the gateway.Fetcher interface.
// It allows us to simulate the behavior of the GitHub gateway without making real API calls.
type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) FetchStars(ctx context.Context, id domain.Identifier) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *mockFetcher) FetchDetail(ctx context.Context, id domain.Identifier) (*domain.RepoDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RepoDetail), args.Error(1)
}

func (m *mockFetcher) ListStarred(ctx context.Context) ([]domain.Starred, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Starred), args.Error(1)
}

func (m *mockFetcher) Star(ctx context.Context, id domain.Identifier) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockFetcher) Unstar(ctx context.Context, id domain.Identifier) error {
	return m.Called(ctx, id).Error(0)
}

func TestRunner_Run(t *testing.T) {
	notFound := &domain.StatusError{Repo: "owner/nonexistent", StatusCode: 404}

	testCases := []struct {
		name    string
		workers int
		inputs  []string
		stars   map[string]int
		fails   map[string]error
		// expected outcome per input, in input order: star count or error
		expectedStars []int
		expectedErrs  []error
	}{
		{
			name:          "happy path - all lookups succeed in input order",
			workers:       1,
			inputs:        []string{"rust-lang/rust", "tokio-rs/tokio"},
			stars:         map[string]int{"rust-lang/rust": 12345, "tokio-rs/tokio": 678},
			expectedStars: []int{12345, 678},
			expectedErrs:  []error{nil, nil},
		},
		{
			name:          "a 404 mid-batch does not abort the following lookup",
			workers:       1,
			inputs:        []string{"owner/nonexistent", "rust-lang/rust"},
			stars:         map[string]int{"rust-lang/rust": 12345},
			fails:         map[string]error{"owner/nonexistent": notFound},
			expectedStars: []int{0, 12345},
			expectedErrs:  []error{notFound, nil},
		},
		{
			name:          "malformed identifier fails without a network call",
			workers:       1,
			inputs:        []string{"notarepo", "rust-lang/rust"},
			stars:         map[string]int{"rust-lang/rust": 12345},
			expectedStars: []int{0, 12345},
			expectedErrs:  []error{domain.ErrInvalidIdentifier, nil},
		},
		{
			name:          "worker pool keeps input order and error isolation",
			workers:       4,
			inputs:        []string{"a/one", "b/two", "owner/nonexistent", "c/three"},
			stars:         map[string]int{"a/one": 1, "b/two": 2, "c/three": 3},
			fails:         map[string]error{"owner/nonexistent": notFound},
			expectedStars: []int{1, 2, 0, 3},
			expectedErrs:  []error{nil, nil, notFound, nil},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger := log.New(io.Discard, "", 0)
			fetcher := new(mockFetcher)
			for repo, count := range tc.stars {
				id, err := domain.ParseIdentifier(repo)
				assert.NoError(t, err)
				fetcher.On("FetchStars", mock.Anything, id).Return(count, nil)
			}
			for repo, fetchErr := range tc.fails {
				id, err := domain.ParseIdentifier(repo)
				assert.NoError(t, err)
				fetcher.On("FetchStars", mock.Anything, id).Return(0, fetchErr)
			}

			runner := NewRunner(fetcher, logger, tc.workers)
			results := runner.Run(context.Background(), tc.inputs)

			assert.Len(t, results, len(tc.inputs))
			for i, res := range results {
				assert.Equal(t, tc.inputs[i], res.Input)
				if tc.expectedErrs[i] != nil {
					assert.ErrorIs(t, res.Err, tc.expectedErrs[i])
					assert.Nil(t, res.Count)
					continue
				}
				assert.NoError(t, res.Err)
				assert.Equal(t, tc.expectedStars[i], res.Count.Stars)
				assert.Equal(t, tc.inputs[i], res.Count.Repo)
			}
			fetcher.AssertExpectations(t)
		})
	}
}

func TestRunner_Run_SkipsNoLookups(t *testing.T) {
	// A malformed line must never reach the fetcher.
	logger := log.New(io.Discard, "", 0)
	fetcher := new(mockFetcher)

	runner := NewRunner(fetcher, logger, 1)
	results := runner.Run(context.Background(), []string{"malformed", "/alsobad", "bad/"})

	assert.Len(t, results, 3)
	for _, res := range results {
		assert.ErrorIs(t, res.Err, domain.ErrInvalidIdentifier)
	}
	fetcher.AssertNotCalled(t, "FetchStars", mock.Anything, mock.Anything)
}

func TestReadIdentifiers(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "blank lines are skipped",
			input:    "rust-lang/rust\n\ntokio-rs/tokio\n",
			expected: []string{"rust-lang/rust", "tokio-rs/tokio"},
		},
		{
			name:     "whitespace-only lines are skipped and entries trimmed",
			input:    "  rust-lang/rust  \n   \n",
			expected: []string{"rust-lang/rust"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "malformed lines are kept for per-line reporting",
			input:    "notarepo\nrust-lang/rust\n",
			expected: []string{"notarepo", "rust-lang/rust"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			inputs, err := ReadIdentifiers(strings.NewReader(tc.input))
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, inputs)
		})
	}
}

func TestReadIdentifiers_BatchDoesExactlyTwoLookups(t *testing.T) {
	logger := log.New(io.Discard, "", 0)
	fetcher := new(mockFetcher)
	fetcher.On("FetchStars", mock.Anything, domain.Identifier{Owner: "rust-lang", Name: "rust"}).Return(12345, nil).Once()
	fetcher.On("FetchStars", mock.Anything, domain.Identifier{Owner: "tokio-rs", Name: "tokio"}).Return(678, nil).Once()

	inputs, err := ReadIdentifiers(strings.NewReader("rust-lang/rust\n\ntokio-rs/tokio\n"))
	assert.NoError(t, err)

	results := NewRunner(fetcher, logger, 1).Run(context.Background(), inputs)

	assert.Len(t, results, 2)
	fetcher.AssertExpectations(t)
}

func TestSummarize(t *testing.T) {
	results := []Result{
		{Input: "a/one", Count: &domain.StarCount{Repo: "a/one", Stars: 10}},
		{Input: "bad", Err: errors.New("boom")},
		{Input: "b/two", Count: &domain.StarCount{Repo: "b/two", Stars: 20}},
		{Input: "c/three", Count: &domain.StarCount{Repo: "c/three", Stars: 60}},
	}

	summary, err := Summarize(results)
	assert.NoError(t, err)
	assert.Equal(t, &domain.Summary{
		Repos:  3,
		Min:    10,
		Max:    60,
		Mean:   30,
		Median: 20,
	}, summary)
}

func TestSummarize_NoSuccesses(t *testing.T) {
	summary, err := Summarize([]Result{{Input: "bad", Err: errors.New("boom")}})
	assert.NoError(t, err)
	assert.Nil(t, summary)
}
