// Package goquery implements favmeta.Extractor using CSS selectors over a
// permissively parsed HTML document.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/favmeta"
	"golang.org/x/net/html"
)

// IconSelector pairs a CSS selector with the size recorded when a matching
// element has no sizes attribute.
type IconSelector struct {
	Selector    string
	DefaultSize string
}

// DefaultIconSelectors is the prioritized selector list: explicit sizes from
// largest to smallest, then the generic icon relations.
var DefaultIconSelectors = []IconSelector{
	{Selector: `link[sizes="512x512"]`, DefaultSize: "512x512"},
	{Selector: `link[sizes="256x256"]`, DefaultSize: "256x256"},
	{Selector: `link[sizes="192x192"]`, DefaultSize: "192x192"},
	{Selector: `link[sizes="180x180"]`, DefaultSize: "180x180"},
	{Selector: `link[sizes="128x128"]`, DefaultSize: "128x128"},
	{Selector: `link[sizes="96x96"]`, DefaultSize: "96x96"},
	{Selector: `link[sizes="64x64"]`, DefaultSize: "64x64"},
	{Selector: `link[sizes="32x32"]`, DefaultSize: "32x32"},
	{Selector: `link[sizes="16x16"]`, DefaultSize: "16x16"},
	{Selector: `link[rel="icon"]`, DefaultSize: "default"},
	{Selector: `link[rel="shortcut icon"]`, DefaultSize: "default"},
	{Selector: `link[rel="apple-touch-icon"]`, DefaultSize: "180x180"},
	{Selector: `link[rel="apple-touch-icon-precomposed"]`, DefaultSize: "180x180"},
}

// Ensure Extractor implements favmeta.Extractor at compile time.
var _ favmeta.Extractor = (*Extractor)(nil)

// Extractor extracts title, meta keywords, meta description and icon
// candidates from HTML.
type Extractor struct {
	selectors []IconSelector
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithIconSelectors replaces DefaultIconSelectors.
func WithIconSelectors(selectors []IconSelector) Option {
	return func(e *Extractor) {
		e.selectors = selectors
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		selectors: DefaultIconSelectors,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses rawHTML and returns the page fields. Malformed markup is
// repaired by the HTML5 parsing algorithm; absent elements yield empty fields.
// The title text is trimmed of surrounding whitespace, so a whitespace-only
// title counts as absent.
func (e *Extractor) Extract(rawHTML string, baseURL string) *favmeta.Page {
	doc := parseDocument(rawHTML)

	return &favmeta.Page{
		Title:       strings.TrimSpace(doc.Find("title").First().Text()),
		Keywords:    metaContent(doc, "keywords"),
		Description: metaContent(doc, "description"),
		Icons:       e.extractIcons(doc, baseURL),
	}
}

func (e *Extractor) extractIcons(doc *goquery.Document, baseURL string) []favmeta.IconCandidate {
	var icons []favmeta.IconCandidate

	for _, config := range e.selectors {
		doc.Find(config.Selector).Each(func(_ int, sel *goquery.Selection) {
			href, exists := sel.Attr("href")
			if !exists || href == "" {
				return
			}

			resolved := favmeta.ResolveHref(baseURL, href)
			if resolved == "" {
				return
			}

			size := sel.AttrOr("sizes", "")
			if size == "" {
				size = config.DefaultSize
			}
			rel := sel.AttrOr("rel", "")
			if rel == "" {
				rel = "icon"
			}

			icons = append(icons, favmeta.IconCandidate{
				URL:  resolved,
				Size: size,
				Type: rel,
			})
		})
	}

	return icons
}

func metaContent(doc *goquery.Document, name string) string {
	return doc.Find(`meta[name="` + name + `"]`).First().AttrOr("content", "")
}

// parseDocument never fails: html.Parse only returns reader errors, and a
// strings.Reader has none. An empty document is used as a last resort.
func parseDocument(rawHTML string) *goquery.Document {
	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		root = &html.Node{Type: html.DocumentNode}
	}
	return goquery.NewDocumentFromNode(root)
}
