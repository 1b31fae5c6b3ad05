package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"podnote"
)

// extractYouTube handles youtube.com watch pages. The title comes from the
// page <title> element; the description sits in a positionally-indexed
// meta tag inside the watch content container.
func extractYouTube(_ context.Context, _ *Extractor, doc *goquery.Document, ep *podnote.Episode) {
	setIfFound(&ep.Title, strings.TrimSpace(doc.Find("title").First().Text()))

	if content, ok := doc.Find("#watch7-content > meta:nth-child(3)").First().Attr("content"); ok {
		setIfFound(&ep.Description, content)
	}

	setIfFound(&ep.ImageURL, metaOG(doc, "property", "image"))
}
