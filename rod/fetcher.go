// Package rod provides a browser-based implementation of podnote.Fetcher.
// Some hosts (Spotify, YouTube) render episode pages with JavaScript, so
// the metadata only exists after a real browser has executed the page.
package rod

import (
	"context"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"podnote"
)

// Ensure Fetcher implements podnote.Fetcher at compile time.
var _ podnote.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser
// automation. Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser *rod.Browser
}

// NewFetcher creates a new Fetcher that launches a headless Chrome
// browser. Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher() (*Fetcher, error) {
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Fetcher{browser: browser}, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", podnote.Errorf(podnote.EUNAVAILABLE, "opening page for %s: %v", url, err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", podnote.Errorf(podnote.EUNAVAILABLE, "navigating to %s: %v", url, err)
	}

	if err := page.WaitLoad(); err != nil {
		return "", podnote.Errorf(podnote.EUNAVAILABLE, "loading %s: %v", url, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", podnote.Errorf(podnote.EUNAVAILABLE, "reading %s: %v", url, err)
	}

	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.browser.Close()
}
