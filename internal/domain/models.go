package domain

// Evidence is the literal text span supporting a finding. Snippet is a
// verbatim substring of the analyzed text starting at byte Offset, so a
// consumer can always locate the clause in the original document.
type Evidence struct {
	Snippet string `json:"snippet"`
	Offset  int    `json:"offset"`
}

// RiskEvidence is one weighted pattern match contributing to the risk score.
type RiskEvidence struct {
	Description string `json:"description"`
	Category    string `json:"category"`
	Weight      int    `json:"weight"`
	Snippet     string `json:"snippet"`
	Offset      int    `json:"offset"`
}

// RiskAssessment is the bounded aggressiveness metric with its supporting
// evidence. Score is always within [0,100]; Evidence is sorted by weight
// descending then document position ascending and truncated to a fixed cap
// that never affects the numeric score.
type RiskAssessment struct {
	Score    int            `json:"score"`
	Level    RiskLevel      `json:"level"`
	Reason   string         `json:"reason"`
	Evidence []RiskEvidence `json:"evidence,omitempty"`
}

// KeyPoint is a structured, evidenced finding tied to one contractual
// concern category. A detector emits at most one KeyPoint per category and
// consolidates evidence from all of its matches.
type KeyPoint struct {
	Category KeyPointCategory  `json:"category"`
	Icon     string            `json:"icon"`
	Title    string            `json:"title"`
	Detail   string            `json:"detail"`
	WatchOut bool              `json:"watch_out"`
	Evidence []string          `json:"evidence,omitempty"`
	Fields   map[string]string `json:"fields,omitempty"`
}

// RedFlag is a severity-tagged concerning clause, detected independently of
// document type. One entry is produced per distinct match span.
type RedFlag struct {
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Evidence    Evidence `json:"evidence"`
}

// ReadabilityScore summarizes how hard the document is to read, using the
// Flesch and Gunning Fog formulas over simple token statistics.
type ReadabilityScore struct {
	FleschEase     float64 `json:"flesch_ease"`
	FleschGrade    float64 `json:"flesch_grade"`
	GunningFog     float64 `json:"gunning_fog"`
	AvgSentenceLen float64 `json:"avg_sentence_len"`
	AvgWordLen     float64 `json:"avg_word_len"`
	ComplexWordPct float64 `json:"complex_word_pct"`
	GradeLabel     string  `json:"grade_label"`
	EaseLabel      string  `json:"ease_label"`
}

// AnalysisResult is the complete report for one document. It is created
// fresh per analysis call, owned solely by the caller and never cached or
// mutated by the engine after return.
type AnalysisResult struct {
	DocumentType DocumentType     `json:"document_type"`
	TypeScore    int              `json:"type_score"`
	Summary      string           `json:"document_summary"`
	Risk         RiskAssessment   `json:"risk"`
	Readability  ReadabilityScore `json:"readability"`
	KeyPoints    []KeyPoint       `json:"key_points"`
	RedFlags     []RedFlag        `json:"red_flags"`
	Checklist    []string         `json:"before_signing"`
	WordCount    int              `json:"word_count"`
	CharCount    int              `json:"char_count"`
}

// WatchOutCount returns how many key points are flagged as needing attention.
func (r *AnalysisResult) WatchOutCount() int {
	n := 0
	for _, kp := range r.KeyPoints {
		if kp.WatchOut {
			n++
		}
	}
	return n
}

// HasKeyPoint reports whether a key point with the given category is present.
func (r *AnalysisResult) HasKeyPoint(category KeyPointCategory) bool {
	for _, kp := range r.KeyPoints {
		if kp.Category == category {
			return true
		}
	}
	return false
}

// HasRedFlag reports whether a red flag with the given catalog category is present.
func (r *AnalysisResult) HasRedFlag(category string) bool {
	for _, rf := range r.RedFlags {
		if rf.Category == category {
			return true
		}
	}
	return false
}
