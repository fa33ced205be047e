package engine

import (
	"sort"

	"github.com/clauseguard-server/internal/domain"
)

// detectRedFlags evaluates every red flag pattern against the raw text,
// independent of document type. Each distinct match span yields its own
// flag; a single clause tripping several patterns is reported under each.
// The evidence snippet is the matched span itself, verifiable at the
// reported byte offset, so the list is never normalized or capped the way
// the risk score is.
func (e *Engine) detectRedFlags(doc *document) []domain.RedFlag {
	flags := []domain.RedFlag{}

	for _, p := range e.cat.RedFlags {
		for _, loc := range p.Regexp.FindAllStringIndex(doc.raw, -1) {
			flags = append(flags, domain.RedFlag{
				Category:    p.Category,
				Description: p.Description,
				Severity:    p.Severity,
				Evidence: domain.Evidence{
					Snippet: truncateSnippet(doc.raw[loc[0]:loc[1]]),
					Offset:  loc[0],
				},
			})
		}
	}

	sort.SliceStable(flags, func(i, j int) bool {
		if flags[i].Severity.Rank() != flags[j].Severity.Rank() {
			return flags[i].Severity.Rank() > flags[j].Severity.Rank()
		}
		return flags[i].Evidence.Offset < flags[j].Evidence.Offset
	})

	return flags
}
