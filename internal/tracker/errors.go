package tracker

import "errors"

// Sentinel errors for issue tracker operations.
var (
	// ErrProviderUnavailable indicates that the provider tool is not
	// installed or not in PATH.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrAuthRequired indicates that the provider requires authentication.
	ErrAuthRequired = errors.New("authentication required")

	// ErrRepoNotFound indicates that the target repository does not exist or
	// is not accessible.
	ErrRepoNotFound = errors.New("repository not found or not accessible")
)
