package favmeta

// Page holds the raw fields extracted from a document.
// An empty Title, Keywords or Description means the element was absent.
type Page struct {
	Title       string
	Keywords    string
	Description string

	// Icons are unranked candidates in selector order, then document order.
	Icons []IconCandidate
}

// Extractor parses HTML and extracts page metadata and icon candidates.
type Extractor interface {
	// Extract parses html permissively and never fails. Relative icon hrefs
	// are resolved against baseURL.
	Extract(html string, baseURL string) *Page
}
