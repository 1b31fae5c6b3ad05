// Package goquery provides a CSS-selector based implementation of
// podnote.Extractor with one extraction strategy per hosting service.
package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"podnote"
)

// Ensure Extractor implements podnote.Extractor at compile time.
var _ podnote.Extractor = (*Extractor)(nil)

// strategy populates an episode record from a parsed document. Strategies
// never fail: a missing element or attribute leaves the corresponding
// field at its default and extraction continues with the remaining fields.
type strategy func(ctx context.Context, e *Extractor, doc *goquery.Document, ep *podnote.Episode)

// strategies maps each hosting service to its extraction strategy.
// Hosts without an entry use the generic og-tag strategy. Adding a host
// is a pure addition here plus the substring table in the root package.
var strategies = map[podnote.Host]strategy{
	podnote.HostApple:       extractApple,
	podnote.HostAirr:        extractAirr,
	podnote.HostOvercast:    extractOvercast,
	podnote.HostYouTube:     extractYouTube,
	podnote.HostPocketCasts: extractPocketCasts,
	podnote.HostCastro:      extractCastro,
}

// Extractor extracts episode metadata from podcast-episode pages using
// host-specific CSS selector strategies.
type Extractor struct {
	notes podnote.Fetcher
	conv  podnote.Converter
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithShowNotesFetcher sets the fetcher used for the secondary show-notes
// request some hosts require. Without it, show notes stay empty.
func WithShowNotesFetcher(f podnote.Fetcher) Option {
	return func(e *Extractor) {
		e.notes = f
	}
}

// WithConverter sets the HTML-to-Markdown converter used for show notes.
// Without it, show notes stay empty.
func WithConverter(c podnote.Converter) Option {
	return func(e *Extractor) {
		e.conv = c
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses the page HTML and applies the strategy for the host.
// Every field miss degrades to the sentinel or empty default; the error
// return is reserved for unparseable input.
func (e *Extractor) Extract(ctx context.Context, html string, host podnote.Host, sourceURL string) (*podnote.Episode, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, podnote.Errorf(podnote.EINVALID, "failed to parse HTML: %v", err)
	}

	ep := podnote.NewEpisode(sourceURL)

	s, ok := strategies[host]
	if !ok {
		s = extractGeneric
	}
	s(ctx, e, doc, ep)

	ep.ImageURL = podnote.SecureImageURL(ep.ImageURL)

	return ep, nil
}

// metaOG returns the content attribute of a meta tag whose given attribute
// equals "og:<name>", or an empty string when absent.
func metaOG(doc *goquery.Document, attribute, name string) string {
	content, _ := doc.Find("meta[" + attribute + "='og:" + name + "']").First().Attr("content")
	return content
}

// setIfFound overwrites dst only when the lookup produced a value, so
// sentinel defaults survive field-level misses.
func setIfFound(dst *string, val string) {
	if val != "" {
		*dst = val
	}
}
