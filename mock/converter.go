package mock

import "github.com/fwojciec/pagelink"

var _ pagelink.Converter = (*Converter)(nil)

// Converter is a mock implementation of pagelink.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
