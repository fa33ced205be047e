// Package engine implements the deterministic document analysis pipeline:
// classification, risk scoring, key point extraction, red flag detection
// and checklist synthesis. The engine holds only immutable state (the
// compiled catalog and tuning constants), so a single instance is safe
// for concurrent use from any number of goroutines.
package engine

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/clauseguard-server/internal/catalog"
	"github.com/clauseguard-server/internal/domain"
)

// Engine runs the full analysis pipeline over plain text. Construct one
// per process with New and share it.
type Engine struct {
	cat    *catalog.Catalog
	cfg    domain.EngineConfig
	logger *logrus.Logger

	classifier *classifier
}

// New builds an Engine from a loaded catalog. The catalog must not be
// mutated afterwards.
func New(cat *catalog.Catalog, cfg domain.EngineConfig, logger *logrus.Logger) *Engine {
	if logger == nil {
		logger = logrus.New()
	}
	return &Engine{
		cat:        cat,
		cfg:        cfg,
		logger:     logger,
		classifier: newClassifier(cat, cfg),
	}
}

// Analyze runs the full pipeline and returns a fresh result owned by the
// caller. It never fails: empty or degenerate input yields the fallback
// result with the baseline checklist, and pattern absence is data, not an
// error.
func (e *Engine) Analyze(text string) *domain.AnalysisResult {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < e.cfg.MinTextLength {
		return e.fallbackResult(trimmed)
	}

	doc := newDocument(text)

	docType, typeScore := e.classifier.classify(doc)
	risk := e.scoreRisk(doc)
	keyPoints := e.extractKeyPoints(doc, docType)
	redFlags := e.detectRedFlags(doc)
	checklist := e.buildChecklist(docType, risk, keyPoints, redFlags)

	result := &domain.AnalysisResult{
		DocumentType: docType,
		TypeScore:    typeScore,
		Summary:      e.summarize(docType, doc),
		Risk:         risk,
		Readability:  computeReadability(doc),
		KeyPoints:    keyPoints,
		RedFlags:     redFlags,
		Checklist:    checklist,
		WordCount:    doc.wordCount(),
		CharCount:    len(text),
	}

	e.logger.WithFields(logrus.Fields{
		"document_type": docType,
		"type_score":    typeScore,
		"risk_score":    risk.Score,
		"risk_level":    risk.Level,
		"key_points":    len(keyPoints),
		"red_flags":     len(redFlags),
		"chars":         len(text),
	}).Debug("Document analyzed")

	return result
}

// fallbackResult is the deterministic degenerate case for empty or
// too-short input. It is a well-formed report, not an error.
func (e *Engine) fallbackResult(trimmed string) *domain.AnalysisResult {
	return &domain.AnalysisResult{
		DocumentType: domain.DocTypeGeneral,
		TypeScore:    0,
		Summary:      e.cat.Summaries[domain.DocTypeGeneral],
		Risk: domain.RiskAssessment{
			Score:  0,
			Level:  domain.RiskLow,
			Reason: riskReasonLow,
		},
		KeyPoints: []domain.KeyPoint{},
		RedFlags:  []domain.RedFlag{},
		Checklist: []string{e.cat.BaselineChecklistItem},
		WordCount: len(strings.Fields(trimmed)),
		CharCount: len(trimmed),
	}
}

func (e *Engine) summarize(docType domain.DocumentType, doc *document) string {
	summary := e.cat.Summaries[docType]
	if doc.wordCount() > 3000 {
		summary += " The document is comprehensive; take time to read key sections carefully."
	}
	return summary
}

// Catalog exposes the engine's rule set for report metadata.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}
