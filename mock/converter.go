package mock

import "podnote"

var _ podnote.Converter = (*Converter)(nil)

// Converter is a mock implementation of podnote.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
