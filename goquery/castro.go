package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"podnote"
)

// extractCastro handles castro.fm episode pages. Show notes come from a
// fixed container's inner markup, converted to markdown in place.
func extractCastro(_ context.Context, e *Extractor, doc *goquery.Document, ep *podnote.Episode) {
	setIfFound(&ep.Title, metaOG(doc, "property", "title"))
	setIfFound(&ep.Description, metaOG(doc, "property", "description"))
	setIfFound(&ep.ImageURL, metaOG(doc, "property", "image"))

	if e.conv == nil {
		return
	}
	notesHTML, err := doc.Find(".co-supertop-castro-show-notes").First().Html()
	if err != nil || strings.TrimSpace(notesHTML) == "" {
		return
	}
	if md, err := e.conv.Convert(notesHTML); err == nil {
		ep.ShowNotes = md
	}
}
