package tracker

import (
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// CommandExecutor is a function type that executes a command and returns its
// combined output. This allows for dependency injection in tests.
type CommandExecutor func(name string, args ...string) ([]byte, error)

// defaultExecutor runs commands using os/exec.
var defaultExecutor CommandExecutor = func(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	return cmd.CombinedOutput()
}

// GitHubTracker implements IssueTracker for GitHub using the gh CLI.
// gh handles authentication and repository resolution; when repo is empty,
// gh resolves the repository from the current working directory.
type GitHubTracker struct {
	executor CommandExecutor
	repo     string
}

// NewGitHubTracker creates a GitHubTracker targeting the given repository
// ("OWNER/REPO", or empty for cwd resolution).
func NewGitHubTracker(repo string) *GitHubTracker {
	return &GitHubTracker{
		executor: defaultExecutor,
		repo:     repo,
	}
}

// NewGitHubTrackerWithExecutor creates a GitHubTracker with a custom command
// executor for testing.
func NewGitHubTrackerWithExecutor(repo string, executor CommandExecutor) *GitHubTracker {
	return &GitHubTracker{
		executor: executor,
		repo:     repo,
	}
}

// CreateIssue creates a GitHub issue using the gh CLI. The labels are passed
// as a single comma-joined --label argument. On success gh prints the issue
// URL on stdout, which becomes the returned reference.
func (g *GitHubTracker) CreateIssue(opts IssueOptions) (IssueRef, error) {
	if opts.Title == "" {
		return IssueRef{}, fmt.Errorf("issue title is required")
	}

	args := []string{"issue", "create",
		"--title", opts.Title,
		"--body", opts.Body,
	}
	if len(opts.Labels) > 0 {
		args = append(args, "--label", strings.Join(opts.Labels, ","))
	}
	if g.repo != "" {
		args = append(args, "--repo", g.repo)
	}

	output, err := g.executor("gh", args...)
	if err != nil {
		return IssueRef{}, g.classifyError(err, output)
	}

	url := strings.TrimSpace(string(output))

	// The issue number is informational; gh output that carries no number
	// still yields a usable reference.
	num, err := parseIssueNumber(url)
	if err != nil {
		return IssueRef{URL: url}, nil
	}

	return IssueRef{Number: num, URL: url}, nil
}

// SupportsLabels returns true as GitHub supports issue labels.
func (g *GitHubTracker) SupportsLabels() bool {
	return true
}

// classifyError analyzes the error and output from a gh command and returns
// a more specific error type when possible. Errors are wrapped to preserve
// context while enabling errors.Is() checks.
func (g *GitHubTracker) classifyError(err error, output []byte) error {
	outStr := strings.ToLower(string(output))

	// "executable file not found" indicates gh is not installed
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, execErr)
	}

	switch {
	case strings.Contains(outStr, "not logged in") ||
		strings.Contains(outStr, "authentication required") ||
		strings.Contains(outStr, "gh auth login"):
		return fmt.Errorf("%w: %s", ErrAuthRequired, strings.TrimSpace(string(output)))

	case strings.Contains(outStr, "could not resolve to a repository"):
		return fmt.Errorf("%w: %s", ErrRepoNotFound, strings.TrimSpace(string(output)))
	}

	// Return the original error with output for diagnostics
	return fmt.Errorf("gh command failed: %w\n%s", err, string(output))
}

// issueURLRegex extracts the issue number from gh output URLs like
// https://github.com/owner/repo/issues/123
var issueURLRegex = regexp.MustCompile(`/issues/(\d+)`)

func parseIssueNumber(output string) (int, error) {
	matches := issueURLRegex.FindStringSubmatch(output)
	if len(matches) < 2 {
		return 0, fmt.Errorf("could not parse issue number from: %s", output)
	}

	num, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, fmt.Errorf("invalid issue number: %w", err)
	}

	return num, nil
}

// Ensure GitHubTracker implements IssueTracker
var _ IssueTracker = (*GitHubTracker)(nil)
