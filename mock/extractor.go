package mock

import (
	"context"

	"podnote"
)

var _ podnote.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of podnote.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, html string, host podnote.Host, sourceURL string) (*podnote.Episode, error)
}

func (e *Extractor) Extract(ctx context.Context, html string, host podnote.Host, sourceURL string) (*podnote.Episode, error) {
	return e.ExtractFn(ctx, html, host, sourceURL)
}
