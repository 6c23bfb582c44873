package favmeta

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ExtractionResult is the display model of one successful lookup.
// It is built fresh for each lookup and never merged with a previous one.
type ExtractionResult struct {
	PageTitle   string          `json:"pageTitle"`
	Keywords    string          `json:"keywords"`
	Description string          `json:"description"`
	Icons       []IconCandidate `json:"icons"`
}

// NewExtractionResult ranks the page's icon candidates against baseURL and
// returns the result. Absent fields stay empty.
func NewExtractionResult(page *Page, baseURL string) *ExtractionResult {
	if page == nil {
		page = &Page{}
	}
	return &ExtractionResult{
		PageTitle:   page.Title,
		Keywords:    page.Keywords,
		Description: page.Description,
		Icons:       RankIcons(page.Icons, baseURL),
	}
}

// Fingerprint returns a stable hash of the ranked icon URLs. Two lookups with
// the same fingerprint discovered the same icons in the same order.
func (r *ExtractionResult) Fingerprint() string {
	if r == nil || len(r.Icons) == 0 {
		return ""
	}
	urls := make([]string, 0, len(r.Icons))
	for _, icon := range r.Icons {
		urls = append(urls, icon.URL)
	}
	return strconv.FormatUint(xxhash.Sum64String(strings.Join(urls, "\n")), 16)
}

// WithFallbacks returns a copy of r whose absent fields are replaced by the
// localized fallback markers.
func WithFallbacks(r *ExtractionResult, loc Localizer) *ExtractionResult {
	if r == nil {
		return nil
	}
	out := *r
	if out.PageTitle == "" {
		out.PageTitle = loc.Message(MsgNoTitle)
	}
	if out.Keywords == "" {
		out.Keywords = loc.Message(MsgNoKeywords)
	}
	if out.Description == "" {
		out.Description = loc.Message(MsgNoDescription)
	}
	return &out
}

// Outcome is the immutable result of one lookup: either a Result or an Err.
// Seq increases monotonically per issued lookup so that consumers can discard
// outcomes that arrive after a newer lookup was started.
type Outcome struct {
	Seq    uint64
	ID     string
	Input  string
	URL    string // normalized; empty if normalization failed
	Result *ExtractionResult
	Err    error
}

// OK reports whether the lookup succeeded.
func (o *Outcome) OK() bool {
	return o.Err == nil && o.Result != nil
}
