package engine

import (
	"github.com/clauseguard-server/internal/catalog"
	"github.com/clauseguard-server/internal/domain"
)

// buildChecklist evaluates the checklist rules against the findings of
// this analysis, never against the raw text, so every item is backed by a
// key point, red flag, or the risk level the report actually contains.
// The baseline item always leads; fired items follow in rule priority
// order, deduplicated by text and capped.
func (e *Engine) buildChecklist(
	docType domain.DocumentType,
	risk domain.RiskAssessment,
	keyPoints []domain.KeyPoint,
	redFlags []domain.RedFlag,
) []string {
	max := e.cfg.MaxChecklistItems
	if max <= 0 {
		max = 7
	}

	items := []string{e.cat.BaselineChecklistItem}
	seen := map[string]bool{e.cat.BaselineChecklistItem: true}

	for _, rule := range e.cat.Checklist {
		if len(items) >= max {
			break
		}
		if seen[rule.Item] {
			continue
		}
		if ruleFires(rule, docType, risk, keyPoints, redFlags) {
			seen[rule.Item] = true
			items = append(items, rule.Item)
		}
	}
	return items
}

func ruleFires(
	rule catalog.ChecklistRule,
	docType domain.DocumentType,
	risk domain.RiskAssessment,
	keyPoints []domain.KeyPoint,
	redFlags []domain.RedFlag,
) bool {
	if rule.AnyFinding {
		return len(keyPoints) > 0 || len(redFlags) > 0
	}
	if rule.MinRisk != "" && riskAtLeast(risk.Level, rule.MinRisk) {
		return true
	}
	for _, dt := range rule.DocTypes {
		if dt == docType {
			return true
		}
	}
	for _, cat := range rule.KeyPoints {
		for _, kp := range keyPoints {
			if kp.Category == cat {
				return true
			}
		}
	}
	for _, cat := range rule.RedFlags {
		for _, rf := range redFlags {
			if rf.Category == cat {
				return true
			}
		}
	}
	return false
}

func riskAtLeast(level, min domain.RiskLevel) bool {
	rank := map[domain.RiskLevel]int{
		domain.RiskLow:    1,
		domain.RiskMedium: 2,
		domain.RiskHigh:   3,
	}
	return rank[level] >= rank[min]
}
