package engine

import (
	"math"
	"sort"

	"github.com/clauseguard-server/internal/domain"
)

const (
	riskReasonHigh   = "Contains several aggressive clauses such as liability waivers, arbitration requirements, or data-sharing terms."
	riskReasonMedium = "Has some notable clauses around liability, data use, or cancellation that deserve attention."
	riskReasonLow    = "Mostly standard terms with no particularly aggressive conditions detected."
)

// scoreRisk sums pattern weights over every distinct match location, then
// maps the raw sum through a saturating transform onto 0-100. Repetition
// of aggressive language counts: ten "sole discretion" clauses weigh more
// than one. Evidence truncation only shortens the list, never the score.
func (e *Engine) scoreRisk(doc *document) domain.RiskAssessment {
	raw := 0
	var evidence []domain.RiskEvidence

	for _, p := range e.cat.Risk {
		locs := p.Regexp.FindAllStringIndex(doc.raw, -1)
		raw += p.Weight * len(locs)
		for _, loc := range locs {
			evidence = append(evidence, domain.RiskEvidence{
				Description: p.Description,
				Category:    p.Category,
				Weight:      p.Weight,
				Snippet:     truncateSnippet(doc.raw[loc[0]:loc[1]]),
				Offset:      loc[0],
			})
		}
	}

	sort.SliceStable(evidence, func(i, j int) bool {
		if evidence[i].Weight != evidence[j].Weight {
			return evidence[i].Weight > evidence[j].Weight
		}
		return evidence[i].Offset < evidence[j].Offset
	})
	if len(evidence) > e.cfg.RiskEvidenceLimit {
		evidence = evidence[:e.cfg.RiskEvidenceLimit]
	}

	score := saturate(raw, e.cfg.RiskSaturationK)
	level, reason := riskLevel(score)

	return domain.RiskAssessment{
		Score:    score,
		Level:    level,
		Reason:   reason,
		Evidence: evidence,
	}
}

// saturate maps an unbounded raw weight sum onto 0-100 with diminishing
// returns: min(100, round(100 * (1 - e^(-raw/k)))). A handful of severe
// clauses cannot max the score, while a relentlessly aggressive document
// still approaches 100. The transform is monotonic, so adding matches
// never lowers the score.
func saturate(raw int, k float64) int {
	if raw <= 0 {
		return 0
	}
	if k <= 0 {
		k = 40
	}
	s := math.Round(100 * (1 - math.Exp(-float64(raw)/k)))
	if s > 100 {
		s = 100
	}
	return int(s)
}

func riskLevel(score int) (domain.RiskLevel, string) {
	switch {
	case score >= 50:
		return domain.RiskHigh, riskReasonHigh
	case score >= 25:
		return domain.RiskMedium, riskReasonMedium
	default:
		return domain.RiskLow, riskReasonLow
	}
}
