package engine

import (
	"github.com/cloudflare/ahocorasick"

	"github.com/clauseguard-server/internal/catalog"
	"github.com/clauseguard-server/internal/domain"
)

// classifier scores the document against every type's weighted keyword
// table. A multi-pattern literal matcher over the catalog's trigger
// strings prefilters candidate types, so regex counting only runs for
// types with at least one literal hit in the text.
type classifier struct {
	cat *catalog.Catalog
	cfg domain.EngineConfig

	matcher *ahocorasick.Matcher
	// owners[i] lists the classification rule indexes that registered
	// the i-th dictionary trigger.
	owners [][]int
}

func newClassifier(cat *catalog.Catalog, cfg domain.EngineConfig) *classifier {
	var dict []string
	index := make(map[string]int)
	owners := make([][]int, 0, 64)

	for ruleIdx, rule := range cat.Classification {
		for _, p := range rule.Patterns {
			di, ok := index[p.Trigger]
			if !ok {
				di = len(dict)
				index[p.Trigger] = di
				dict = append(dict, p.Trigger)
				owners = append(owners, nil)
			}
			owners[di] = append(owners[di], ruleIdx)
		}
	}

	return &classifier{
		cat:     cat,
		cfg:     cfg,
		matcher: ahocorasick.NewStringMatcher(dict),
		owners:  owners,
	}
}

// classify returns exactly one document type and the winning score. Ties
// break toward the rule listed first in the catalog's priority order; a
// winning score below the confidence threshold falls back to the general
// type so category-aware components degrade to their generic rule sets.
func (c *classifier) classify(doc *document) (domain.DocumentType, int) {
	candidates := make(map[int]bool)
	for _, di := range c.matcher.Match([]byte(doc.lower)) {
		for _, ruleIdx := range c.owners[di] {
			candidates[ruleIdx] = true
		}
	}

	bestIdx, bestScore := -1, 0
	for ruleIdx := range c.cat.Classification {
		if !candidates[ruleIdx] {
			continue
		}
		score := 0
		for _, p := range c.cat.Classification[ruleIdx].Patterns {
			score += p.Weight * len(p.Regexp.FindAllStringIndex(doc.raw, -1))
		}
		// Strictly greater keeps the earlier (more specific) type on ties.
		if score > bestScore {
			bestIdx, bestScore = ruleIdx, score
		}
	}

	if bestIdx < 0 || bestScore < c.cfg.MinClassifyScore {
		return domain.DocTypeGeneral, bestScore
	}
	return c.cat.Classification[bestIdx].Type, bestScore
}
