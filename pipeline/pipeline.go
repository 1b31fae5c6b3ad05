// Package pipeline composes classification, fetching, extraction, and
// rendering into the two user-facing workflows: single URL to note and
// selection text to rewritten selection with note links.
package pipeline

import (
	"context"
	"log/slog"
	"strings"

	"podnote"
)

// Placement selects where a rendered note ends up.
type Placement int

// Placement modes.
const (
	// NewNote persists the rendered note as a new file.
	NewNote Placement = iota

	// AtCursor inserts the rendered note at the editor cursor.
	AtCursor
)

// User-facing notices.
const (
	NoticeLoading      = "Loading podcast info"
	NoticeUnsupported  = "This podcast service is not supported."
	NoticeNoConnection = "Error loading podcast: no connection."
	NoticeNoEditor     = "You have to be in the editor to do this."
)

// Config carries the per-invocation settings for a workflow. It is passed
// explicitly into the entry points; the pipeline holds no ambient state.
type Config struct {
	// Template is the note-body template. Empty means the default.
	Template string

	// FilenameTemplate derives the note name from the episode title.
	// Empty means the default.
	FilenameTemplate string

	// Placement selects new-note or at-cursor delivery.
	Placement Placement
}

func (c Config) withDefaults() Config {
	if c.Template == "" {
		c.Template = podnote.DefaultTemplate
	}
	if c.FilenameTemplate == "" {
		c.FilenameTemplate = podnote.DefaultFilenameTemplate
	}
	return c
}

// Pipeline orchestrates the extraction workflows. It is the only
// component that talks to the external collaborators (editor, note
// store, notifications). Every workflow completes: failures degrade to a
// fallback note rather than aborting.
type Pipeline struct {
	Fetcher   podnote.Fetcher
	Extractor podnote.Extractor
	Notes     podnote.NoteWriter
	Editor    podnote.Editor
	Notifier  podnote.Notifier

	// Limiter optionally throttles fetches per domain.
	Limiter *DomainLimiter

	// Logger optionally records degradations; user-visible signals go
	// through Notifier instead.
	Logger *slog.Logger
}

// CreateFromURL turns one podcast URL into a note, delivered according to
// the placement mode. Unsupported services and fetch failures produce a
// minimal fallback note containing the original link; the workflow never
// silently does nothing.
func (p *Pipeline) CreateFromURL(ctx context.Context, url string, cfg Config) error {
	cfg = cfg.withDefaults()

	p.notify(NoticeLoading)

	if !podnote.Supported(url) {
		p.notify(NoticeUnsupported)
		return p.deliver(ctx, fallbackNote(url), cfg)
	}

	return p.deliver(ctx, p.episodeNote(ctx, url, cfg), cfg)
}

// CreateFromSelection scans the current editor selection for podcast
// links, creates one note per supported link, and replaces the selection
// with a copy where each link is rewritten to a wiki reference to its
// note. Candidates are processed strictly in order: each rewrite needs
// the filename produced by the preceding creation.
func (p *Pipeline) CreateFromSelection(ctx context.Context, cfg Config) error {
	cfg = cfg.withDefaults()

	if p.Editor == nil {
		p.notify(NoticeNoEditor)
		return podnote.Errorf(podnote.ENOTFOUND, "no active editor")
	}
	text, err := p.Editor.Selection()
	if err != nil {
		p.notify(NoticeNoEditor)
		return err
	}

	p.notify(NoticeLoading)

	for _, candidate := range podnote.ScanLinks(text) {
		if !podnote.Supported(candidate.URL) {
			p.notify(NoticeUnsupported)
			continue
		}

		note := p.episodeNote(ctx, candidate.URL, cfg)
		name, err := p.Notes.CreateNote(ctx, podnote.RenderFilename(cfg.FilenameTemplate, note.Title), note.Content)
		if err != nil {
			return err
		}

		text = strings.Replace(text, candidate.Span, "[["+name+candidate.Alias+"]]", 1)
	}

	return p.Editor.ReplaceSelection(text)
}

// episodeNote fetches, extracts, and renders one supported URL, degrading
// to the fallback note when the fetch or parse fails.
func (p *Pipeline) episodeNote(ctx context.Context, url string, cfg Config) podnote.Note {
	if p.Limiter != nil {
		if err := p.Limiter.Wait(ctx, domainOf(url)); err != nil {
			p.logger().Warn("rate limit wait canceled", "url", url, "err", err)
			p.notify(NoticeNoConnection)
			return fallbackNote(url)
		}
	}

	html, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		p.logger().Warn("fetch failed", "url", url, "err", err)
		p.notify(NoticeNoConnection)
		return fallbackNote(url)
	}

	ep, err := p.Extractor.Extract(ctx, html, podnote.Classify(url), url)
	if err != nil {
		p.logger().Warn("extraction failed", "url", url, "err", err)
		p.notify(NoticeNoConnection)
		return fallbackNote(url)
	}

	return podnote.Note{
		Title:   ep.Title,
		Content: podnote.Render(cfg.Template, ep),
	}
}

// deliver routes a note to its placement target.
func (p *Pipeline) deliver(ctx context.Context, note podnote.Note, cfg Config) error {
	if cfg.Placement == AtCursor {
		if p.Editor == nil {
			p.notify(NoticeNoEditor)
			return podnote.Errorf(podnote.ENOTFOUND, "no active editor")
		}
		return p.Editor.InsertAtCursor(note.Content)
	}

	_, err := p.Notes.CreateNote(ctx, podnote.RenderFilename(cfg.FilenameTemplate, note.Title), note.Content)
	return err
}

// fallbackNote builds the minimal note used when extraction cannot
// proceed: just the original link under a fixed heading.
func fallbackNote(url string) podnote.Note {
	return podnote.Note{
		Title:   podnote.TitleNotFound,
		Content: "## Podcast Note\n\n[Podcast Link](" + url + ")\n",
	}
}

func (p *Pipeline) notify(message string) {
	if p.Notifier != nil {
		p.Notifier.Notify(message)
	}
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.New(slog.DiscardHandler)
}
