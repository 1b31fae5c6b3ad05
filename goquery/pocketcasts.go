package goquery

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"podnote"
)

// ShowNotesEndpoint is the Pocket Casts cache endpoint serving show notes
// as JSON, keyed by episode UUID.
const ShowNotesEndpoint = "https://cache.pocketcasts.com/share/episode/show_notes/"

// episodeUUIDRE matches the episode UUID assignment in the inline script
// Pocket Casts embeds in its share pages.
var episodeUUIDRE = regexp.MustCompile(`EPISODE_UUID = '(.*)'`)

// extractPocketCasts handles pca.st share pages. Besides the standard og
// tags it scrapes the episode UUID from an inline script and issues one
// secondary fetch against the show-notes endpoint; a failure anywhere in
// that chain leaves show notes empty.
func extractPocketCasts(ctx context.Context, e *Extractor, doc *goquery.Document, ep *podnote.Episode) {
	setIfFound(&ep.Title, metaOG(doc, "property", "title"))
	setIfFound(&ep.Description, metaOG(doc, "property", "description"))
	setIfFound(&ep.ImageURL, metaOG(doc, "property", "image"))
	setIfFound(&ep.EpisodeDate, strings.TrimSpace(doc.Find("#episode_date").First().Text()))

	ep.ShowNotes = e.fetchShowNotes(ctx, doc)
}

// fetchShowNotes scrapes the episode UUID, fetches the show-notes JSON,
// and converts the HTML payload to markdown. Returns an empty string on
// any failure.
func (e *Extractor) fetchShowNotes(ctx context.Context, doc *goquery.Document) string {
	if e.notes == nil || e.conv == nil {
		return ""
	}

	var uuid string
	doc.Find("body > script").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if m := episodeUUIDRE.FindStringSubmatch(sel.Text()); m != nil {
			uuid = m[1]
			return false
		}
		return true
	})
	if uuid == "" {
		return ""
	}

	body, err := e.notes.Fetch(ctx, ShowNotesEndpoint+uuid)
	if err != nil {
		return ""
	}

	var payload struct {
		ShowNotes string `json:"show_notes"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return ""
	}
	if strings.TrimSpace(payload.ShowNotes) == "" {
		return ""
	}

	md, err := e.conv.Convert(payload.ShowNotes)
	if err != nil {
		return ""
	}
	return md
}
