package goquery

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"podnote"
)

// extractGeneric handles hosts that publish standard Open Graph metadata
// (Spotify, Google, Castbox, Podcast Addict) and any matched host without
// a specialized strategy.
func extractGeneric(_ context.Context, _ *Extractor, doc *goquery.Document, ep *podnote.Episode) {
	setIfFound(&ep.Title, metaOG(doc, "property", "title"))
	setIfFound(&ep.Description, metaOG(doc, "property", "description"))
	setIfFound(&ep.ImageURL, metaOG(doc, "property", "image"))
}

// extractAirr reads the description from a name-attributed og tag; Airr
// mixes property and name attributes on its meta tags.
func extractAirr(_ context.Context, _ *Extractor, doc *goquery.Document, ep *podnote.Episode) {
	setIfFound(&ep.Title, metaOG(doc, "property", "title"))
	setIfFound(&ep.Description, metaOG(doc, "name", "description"))
	setIfFound(&ep.ImageURL, metaOG(doc, "property", "image"))
}

// extractOvercast reads all og tags through the name attribute.
func extractOvercast(_ context.Context, _ *Extractor, doc *goquery.Document, ep *podnote.Episode) {
	setIfFound(&ep.Title, metaOG(doc, "name", "title"))
	setIfFound(&ep.Description, metaOG(doc, "name", "description"))
	setIfFound(&ep.ImageURL, metaOG(doc, "name", "image"))
}
