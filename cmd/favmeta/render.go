package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/favmeta"
	"github.com/fwojciec/favmeta/i18n"
)

// outcomeJSON is the JSON line printed for one outcome with --json.
type outcomeJSON struct {
	Seq         uint64                  `json:"seq"`
	ID          string                  `json:"id"`
	Input       string                  `json:"input"`
	URL         string                  `json:"url,omitempty"`
	PageTitle   string                  `json:"pageTitle,omitempty"`
	Keywords    string                  `json:"keywords,omitempty"`
	Description string                  `json:"description,omitempty"`
	Icons       []favmeta.IconCandidate `json:"icons,omitempty"`
	Fingerprint string                  `json:"fingerprint,omitempty"`
	Error       *errorJSON              `json:"error,omitempty"`
}

type errorJSON struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeOutcome prints o to stdout, or its localized error to stderr, and
// returns o.Err.
func writeOutcome(deps *Dependencies, o *favmeta.Outcome) error {
	if deps.JSON {
		if err := json.NewEncoder(deps.Stdout).Encode(newOutcomeJSON(o, deps.Localizer)); err != nil {
			return err
		}
		return o.Err
	}

	if o.Err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", deps.Localizer.Message(favmeta.ErrorMessageKey(o.Err)))
		return o.Err
	}

	writeResult(deps.Stdout, favmeta.WithFallbacks(o.Result, deps.Localizer), deps.Localizer)
	return nil
}

func newOutcomeJSON(o *favmeta.Outcome, loc favmeta.Localizer) *outcomeJSON {
	out := &outcomeJSON{
		Seq:   o.Seq,
		ID:    o.ID,
		Input: o.Input,
		URL:   o.URL,
	}
	if o.Err != nil {
		out.Error = &errorJSON{
			Code:    favmeta.ErrorCode(o.Err),
			Message: loc.Message(favmeta.ErrorMessageKey(o.Err)),
		}
		return out
	}
	r := favmeta.WithFallbacks(o.Result, loc)
	out.PageTitle = r.PageTitle
	out.Keywords = r.Keywords
	out.Description = r.Description
	out.Icons = r.Icons
	out.Fingerprint = o.Result.Fingerprint()
	return out
}

func writeResult(w io.Writer, r *favmeta.ExtractionResult, loc favmeta.Localizer) {
	fmt.Fprintf(w, "%s: %s\n", loc.Message(i18n.MsgPageTitle), r.PageTitle)

	fmt.Fprintf(w, "%s:\n", loc.Message(i18n.MsgFavicon))
	sizeWidth, typeWidth := 0, 0
	for _, icon := range r.Icons {
		sizeWidth = max(sizeWidth, len(icon.Size))
		typeWidth = max(typeWidth, len(icon.Type))
	}
	for _, icon := range r.Icons {
		fmt.Fprintf(w, "  %-*s  %-*s  %s\n", sizeWidth, icon.Size, typeWidth, icon.Type, icon.URL)
	}

	fmt.Fprintf(w, "%s: %s\n", loc.Message(i18n.MsgKeywords), r.Keywords)
	fmt.Fprintf(w, "%s: %s\n", loc.Message(i18n.MsgDescription), oneLine(r.Description))
}

// oneLine collapses whitespace runs so multi-line descriptions print on one line.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
