package podnote

import "context"

// Extractor extracts episode metadata from a podcast-episode page.
type Extractor interface {
	// Extract applies the host-specific strategy to the page HTML and
	// returns the episode metadata. A lookup failure on any single field
	// leaves that field at its sentinel or empty default and extraction
	// continues; partial extraction is success, not error. Extract
	// returns an error only when the input cannot be parsed at all.
	//
	// Some hosts expose show notes via a follow-up endpoint; Extract may
	// issue one secondary fetch for those (the context covers it).
	Extract(ctx context.Context, html string, host Host, sourceURL string) (*Episode, error)
}
