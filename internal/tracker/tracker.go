// Package tracker provides an abstraction for the external issue tracking
// service. It defines the IssueTracker interface so the batch runner can be
// tested against a stub instead of a real tracker, and a GitHub
// implementation that shells out to the gh CLI.
package tracker

// IssueRef is a reference to a created issue.
type IssueRef struct {
	// Number is the human-readable issue number, parsed from the URL when
	// possible. Zero when the URL did not carry one.
	Number int

	// URL is the web URL of the created issue.
	URL string
}

// IssueOptions contains the parameters for creating an issue.
type IssueOptions struct {
	// Title is the issue title (required).
	Title string

	// Body is the issue description in markdown.
	Body string

	// Labels are the labels to apply to the issue.
	Labels []string
}

// IssueTracker defines the operations the batch runner needs from an issue
// tracking backend. Each call is synchronous and independent; there is no
// retry or batching at this layer.
type IssueTracker interface {
	// CreateIssue creates a new issue and returns its reference.
	CreateIssue(opts IssueOptions) (IssueRef, error)

	// SupportsLabels returns true if the backend supports issue labels.
	SupportsLabels() bool
}
