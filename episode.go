package podnote

import (
	"strings"
	"time"
)

// Sentinel values used when a field cannot be extracted from the page.
const (
	TitleNotFound       = "Title not found"
	DescriptionNotFound = "Description not found"
)

// Episode holds the metadata extracted from one podcast-episode page.
// Fields that could not be extracted keep their sentinel or empty defaults;
// a partially-filled episode is a valid extraction result.
type Episode struct {
	Title       string
	Description string
	ImageURL    string
	ShowNotes   string
	EpisodeDate string
	SourceURL   string

	// CapturedDate is the extraction's wall-clock date (YYYY-MM-DD),
	// not the episode's publish date.
	CapturedDate string
}

// NewEpisode returns an episode with sentinel defaults for the given
// source URL, captured now.
func NewEpisode(sourceURL string) *Episode {
	return &Episode{
		Title:        TitleNotFound,
		Description:  DescriptionNotFound,
		SourceURL:    sourceURL,
		CapturedDate: time.Now().Format("2006-01-02"),
	}
}

// SecureImageURL rewrites a non-https scheme prefix to https. The
// note-rendering surface can only embed secure-origin images. Empty
// strings are returned unchanged.
func SecureImageURL(url string) string {
	if url == "" || strings.HasPrefix(url, "https") {
		return url
	}
	return strings.Replace(url, "http", "https", 1)
}

// Note is a rendered podcast note. Title feeds filename derivation;
// Content is the final substituted template text.
type Note struct {
	Title   string
	Content string
}
