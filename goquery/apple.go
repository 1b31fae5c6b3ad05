package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"podnote"
)

// extractApple handles podcasts.apple.com episode pages.
// The description lives in the hero section rather than a meta tag, and
// the artwork is published as a responsive srcset whose first URL token
// is the image.
func extractApple(_ context.Context, _ *Extractor, doc *goquery.Document, ep *podnote.Episode) {
	setIfFound(&ep.Title, metaOG(doc, "property", "title"))

	if desc, err := doc.Find(".product-hero-desc__section p").First().Html(); err == nil {
		setIfFound(&ep.Description, desc)
	}

	if srcset, ok := doc.Find(".we-artwork__source").First().Attr("srcset"); ok {
		if tokens := strings.Fields(srcset); len(tokens) > 0 {
			ep.ImageURL = tokens[0]
		}
	}
}
