package podnote

// Converter converts HTML to Markdown. It is used for show notes only:
// the hosts that expose supplementary episode text serve it as HTML
// fragments that must be rewritten into the note's markup dialect.
type Converter interface {
	Convert(html string) (string, error)
}
