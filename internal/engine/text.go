package engine

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// maxSnippetLen bounds every evidence snippet so a greedy pattern spanning
// half a paragraph still yields a readable, verifiable prefix of the match.
const maxSnippetLen = 200

var wsRun = regexp.MustCompile(`\s+`)

// document is the per-call scan state. All offsets reported in evidence
// refer to the raw input text so callers can verify snippets by byte
// position.
type document struct {
	raw   string
	lower string

	sentences []string
}

func newDocument(raw string) *document {
	return &document{
		raw:   raw,
		lower: strings.ToLower(raw),
	}
}

func (d *document) wordCount() int {
	return len(strings.Fields(d.raw))
}

// splitSentences lazily splits the raw text on terminal punctuation
// followed by whitespace, keeping the punctuation with its sentence.
func (d *document) splitSentences() []string {
	if d.sentences != nil {
		return d.sentences
	}
	var out []string
	start := 0
	for i := 0; i < len(d.raw); i++ {
		c := d.raw[i]
		if c != '.' && c != '!' && c != '?' {
			continue
		}
		if i+1 < len(d.raw) && !isSpace(d.raw[i+1]) {
			continue
		}
		out = append(out, d.raw[start:i+1])
		start = i + 1
	}
	if start < len(d.raw) {
		out = append(out, d.raw[start:])
	}
	d.sentences = out
	return out
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// has reports whether any of the compiled patterns matches the document.
func (d *document) has(patterns ...*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(d.raw) {
			return true
		}
	}
	return false
}

// findEvidence returns up to maxResults distinct sentences containing any
// of the patterns. Very short fragments and very long run-on sentences are
// skipped to keep evidence quotable.
func (d *document) findEvidence(maxResults int, patterns ...*regexp.Regexp) []string {
	var found []string
	seen := make(map[string]bool)
	for _, s := range d.splitSentences() {
		s = strings.TrimSpace(wsRun.ReplaceAllString(s, " "))
		if len(s) < 20 || len(s) > 500 {
			continue
		}
		matched := false
		for _, p := range patterns {
			if p.MatchString(s) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		key := strings.ToLower(s)
		if len(key) > 80 {
			key = key[:80]
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		found = append(found, s)
		if len(found) >= maxResults {
			break
		}
	}
	return found
}

// truncateSnippet cuts a matched span to maxSnippetLen bytes at a rune
// boundary, so the snippet stays a verifiable prefix of the match.
func truncateSnippet(s string) string {
	if len(s) <= maxSnippetLen {
		return s
	}
	cut := maxSnippetLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// rx compiles a case-insensitive pattern at package init. Detector trigger
// patterns live next to their detectors as package-level variables, so a
// malformed pattern fails the process at startup, never mid-analysis.
func rx(expr string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + expr)
}
