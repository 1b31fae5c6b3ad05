package podnote

import (
	"strconv"
	"strings"
	"time"
)

// Default templates, applied when the user has not configured their own.
const (
	DefaultTemplate = "---\ntags: [Podcast]\ndate: {{Date}}\n---\n" +
		"# {{Title}}\n![]({{ImageURL}})\n## Description:\n{{Description}}\n" +
		"-> [Podcast Link]({{PodcastURL}})\n\n## Notes:\n"

	DefaultFilenameTemplate = "{{Title}} - Notes"
)

// Placeholders recognized by Render. Substitution is literal and global;
// tokens outside this set are left verbatim in the output.
//
//	{{Title}} {{ImageURL}} {{Description}} {{ShowNotes}} {{EpisodeDate}}
//	{{PodcastURL}} {{Date}} {{Timestamp}}
//
// {{Date}} is the capture date; {{Timestamp}} is the current epoch
// milliseconds, evaluated once per render call.
func Render(template string, ep *Episode) string {
	r := strings.NewReplacer(
		"{{Title}}", ep.Title,
		"{{ImageURL}}", ep.ImageURL,
		"{{Description}}", ep.Description,
		"{{ShowNotes}}", ep.ShowNotes,
		"{{EpisodeDate}}", ep.EpisodeDate,
		"{{PodcastURL}}", ep.SourceURL,
		"{{Date}}", ep.CapturedDate,
		"{{Timestamp}}", timestampMillis(),
	)
	return r.Replace(template)
}

// RenderFilename renders a filename template for the given episode title
// and strips characters that are illegal in file paths. Filename templates
// recognize {{Title}}, {{Date}} and {{Timestamp}}.
func RenderFilename(template, title string) string {
	r := strings.NewReplacer(
		"{{Title}}", title,
		"{{Timestamp}}", timestampMillis(),
		"{{Date}}", time.Now().Format("2006-01-02"),
	)
	return sanitizeFilename(r.Replace(template))
}

// sanitizeFilename removes every occurrence of the characters
// \ / : " * ? < > | from the name.
func sanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\\', '/', ':', '"', '*', '?', '<', '>', '|':
			return -1
		}
		return r
	}, name)
}

func timestampMillis() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}
