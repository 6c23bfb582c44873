package mock

import "github.com/fwojciec/favmeta"

var _ favmeta.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of favmeta.Extractor.
type Extractor struct {
	ExtractFn func(html string, baseURL string) *favmeta.Page
}

func (e *Extractor) Extract(html string, baseURL string) *favmeta.Page {
	return e.ExtractFn(html, baseURL)
}
