package podnote

import (
	"regexp"
	"unicode"
)

// markdownLinkRE matches [alias](url) constructs. The alias may be empty;
// the URL may not contain a literal closing parenthesis.
var markdownLinkRE = regexp.MustCompile(`\[([^\]]*)\]\(([^)]+)\)`)

// LinkCandidate is one scanned link occurrence in a block of text.
type LinkCandidate struct {
	// URL is the link target.
	URL string

	// Alias is "|" + the markdown link text, or empty for bare URLs.
	// It is appended to the wiki reference that replaces the span.
	Alias string

	// Span is the exact substring to be replaced in the source text:
	// the full markdown construct, or the bare URL token.
	Span string
}

// ScanLinks extracts link candidates from a block of text in two passes:
// markdown links first in document order, then bare https:// tokens in
// document order, skipping tokens already captured inside a markdown
// link. The cross-pass ordering is part of the contract; callers rely on
// it when rewriting the text in place.
func ScanLinks(text string) []LinkCandidate {
	var candidates []LinkCandidate

	matches := markdownLinkRE.FindAllStringSubmatchIndex(text, -1)
	for _, m := range matches {
		span := text[m[0]:m[1]]
		alias := text[m[2]:m[3]]
		url := text[m[4]:m[5]]
		candidates = append(candidates, LinkCandidate{
			URL:   url,
			Alias: "|" + alias,
			Span:  span,
		})
	}

	inMarkdown := func(start, end int) bool {
		for _, m := range matches {
			if start < m[1] && end > m[0] {
				return true
			}
		}
		return false
	}

	// Bare-URL pass: whitespace-delimited tokens starting with https://.
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		token := text[start:end]
		if len(token) >= 8 && token[:8] == "https://" && !inMarkdown(start, end) {
			candidates = append(candidates, LinkCandidate{
				URL:  token,
				Span: token,
			})
		}
		start = -1
	}
	for i, r := range text {
		if unicode.IsSpace(r) {
			flush(i)
		} else if start < 0 {
			start = i
		}
	}
	flush(len(text))

	return candidates
}
