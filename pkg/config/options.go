package config

import (
	"io/fs"
	"net/http"
	"time"
)

// LoaderOptions carries the pre-resolved settings loader implementations
// consume.
type LoaderOptions struct {
	// FileSystem backs fs sources. Nil disables fs loading.
	FileSystem fs.FS
	// HTTPClient overrides the client used for URL sources.
	HTTPClient *http.Client
	// AllowHTTPFallback enables URL loading with a default client when no
	// HTTPClient is supplied.
	AllowHTTPFallback bool
	// RequestTimeout bounds URL fetches.
	RequestTimeout time.Duration
}

// NewLoaderOptions returns the default loader settings: file loading enabled,
// HTTP enabled with a conservative timeout.
func NewLoaderOptions() LoaderOptions {
	return LoaderOptions{
		AllowHTTPFallback: true,
		RequestTimeout:    30 * time.Second,
	}
}
