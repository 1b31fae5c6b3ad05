package podnote

import "context"

// Fetcher retrieves raw HTML from URLs.
// Implementations may use browser automation for hosts that render their
// pages with JavaScript.
type Fetcher interface {
	// Fetch performs a GET against the URL and returns the response body.
	// The context controls timeout and cancellation. Transport failures
	// of any kind (DNS, timeout, non-2xx) are reported uniformly as
	// errors; there is no per-status branching and no retry.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
