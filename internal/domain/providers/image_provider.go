package providers

import "context"

// ImageProvider is one stock-photo search backend.
type ImageProvider interface {
	// Name identifies the provider in logs
	Name() string

	// Configured is false when the credential is missing or a placeholder;
	// unconfigured providers are skipped without a network call
	Configured() bool

	// SearchImage returns the URL of the first landscape result, or "" when
	// the provider has no result for the query
	SearchImage(ctx context.Context, query string) (string, error)
}
