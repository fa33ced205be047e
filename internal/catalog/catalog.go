// Package catalog holds the static, versioned rule tables that drive the
// analysis engine: classification keywords, risk patterns, red flag
// patterns and checklist rules. The catalog is pure data; it is compiled
// once at startup into an immutable structure and shared read-only by
// every analysis call. A malformed pattern is a startup defect, never a
// mid-analysis failure.
package catalog

import (
	"fmt"
	"regexp"

	"github.com/clauseguard-server/internal/domain"
)

// Version identifies the rule set revision carried in exported reports.
const Version = "2025.08"

// ClassificationPattern is one weighted keyword or phrase pattern belonging
// to a document type. Trigger is a lowercase literal substring that appears
// in every match of Expr; it feeds the Aho-Corasick prefilter so the
// classifier only evaluates regexes for candidate types.
type ClassificationPattern struct {
	Trigger string
	Expr    string
	Weight  int

	// Regexp is the compiled case-insensitive pattern, set by Load.
	Regexp *regexp.Regexp
}

// ClassificationRule binds a document type to its ordered pattern set.
// Rule order in Classification below is the tie-break priority order.
type ClassificationRule struct {
	Type     domain.DocumentType
	Patterns []ClassificationPattern
}

// RiskPattern is one aggressiveness signal with its severity weight.
type RiskPattern struct {
	Expr        string
	Weight      int
	Category    string
	Description string

	Regexp *regexp.Regexp
}

// RedFlagPattern is one high-concern clause pattern with a severity tier.
// Red flag categories are a disjoint namespace from risk categories even
// where patterns overlap in intent.
type RedFlagPattern struct {
	Expr        string
	Category    string
	Severity    domain.Severity
	Description string

	Regexp *regexp.Regexp
}

// ChecklistRule contributes one pre-signing item when its condition over
// the document's actual findings is satisfied. A rule fires when any of
// its referenced key point categories or red flag categories is present
// in the results (and the document type and risk level constraints hold).
// Rules never inspect the raw text.
type ChecklistRule struct {
	Item string

	// Any-of conditions; a rule with none of these set plus no MinRisk and
	// no AnyFinding would fire unconditionally, which Load rejects.
	DocTypes   []domain.DocumentType
	KeyPoints  []domain.KeyPointCategory
	RedFlags   []string
	MinRisk    domain.RiskLevel
	AnyFinding bool
}

// Catalog is the compiled, immutable rule set.
type Catalog struct {
	Classification []ClassificationRule
	Risk           []RiskPattern
	RedFlags       []RedFlagPattern
	Checklist      []ChecklistRule
	Summaries      map[domain.DocumentType]string

	// BaselineChecklistItem is always present in a checklist, findings or not.
	BaselineChecklistItem string
}

// Load compiles every pattern table into a Catalog. It fails fast on the
// first malformed pattern or inconsistent table entry.
func Load() (*Catalog, error) {
	c := &Catalog{
		Classification:        classificationRules(),
		Risk:                  riskPatterns(),
		RedFlags:              redFlagPatterns(),
		Checklist:             checklistRules(),
		Summaries:             summaryTemplates(),
		BaselineChecklistItem: baselineChecklistItem,
	}

	for i := range c.Classification {
		rule := &c.Classification[i]
		if !rule.Type.IsValid() {
			return nil, fmt.Errorf("classification rule %d: unknown document type %q", i, rule.Type)
		}
		for j := range rule.Patterns {
			p := &rule.Patterns[j]
			re, err := regexp.Compile("(?i)" + p.Expr)
			if err != nil {
				return nil, fmt.Errorf("classification pattern %q for %s: %w", p.Expr, rule.Type, err)
			}
			if p.Weight <= 0 {
				return nil, fmt.Errorf("classification pattern %q for %s: weight must be positive", p.Expr, rule.Type)
			}
			if p.Trigger == "" {
				return nil, fmt.Errorf("classification pattern %q for %s: empty trigger", p.Expr, rule.Type)
			}
			p.Regexp = re
		}
	}

	for i := range c.Risk {
		p := &c.Risk[i]
		re, err := regexp.Compile("(?i)" + p.Expr)
		if err != nil {
			return nil, fmt.Errorf("risk pattern %q: %w", p.Expr, err)
		}
		if p.Weight <= 0 {
			return nil, fmt.Errorf("risk pattern %q: weight must be positive", p.Expr)
		}
		p.Regexp = re
	}

	for i := range c.RedFlags {
		p := &c.RedFlags[i]
		re, err := regexp.Compile("(?i)" + p.Expr)
		if err != nil {
			return nil, fmt.Errorf("red flag pattern %q: %w", p.Expr, err)
		}
		if !p.Severity.IsValid() {
			return nil, fmt.Errorf("red flag pattern %q: invalid severity %q", p.Expr, p.Severity)
		}
		p.Regexp = re
	}

	redFlagCategories := make(map[string]bool, len(c.RedFlags))
	for _, p := range c.RedFlags {
		redFlagCategories[p.Category] = true
	}

	for i, rule := range c.Checklist {
		if rule.Item == "" {
			return nil, fmt.Errorf("checklist rule %d: empty item text", i)
		}
		if len(rule.DocTypes) == 0 && len(rule.KeyPoints) == 0 && len(rule.RedFlags) == 0 &&
			rule.MinRisk == "" && !rule.AnyFinding {
			return nil, fmt.Errorf("checklist rule %d (%q): no condition", i, rule.Item)
		}
		for _, kp := range rule.KeyPoints {
			if !kp.IsValid() {
				return nil, fmt.Errorf("checklist rule %d: unknown key point category %q", i, kp)
			}
		}
		for _, rf := range rule.RedFlags {
			if !redFlagCategories[rf] {
				return nil, fmt.Errorf("checklist rule %d: unknown red flag category %q", i, rf)
			}
		}
	}

	for _, dt := range domain.AllDocumentTypes {
		if _, ok := c.Summaries[dt]; !ok {
			return nil, fmt.Errorf("missing summary template for %s", dt)
		}
	}

	return c, nil
}

// MustLoad is Load for process initialization paths where a catalog defect
// should abort startup.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return c
}
