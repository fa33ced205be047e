package engine

import (
	"reflect"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clauseguard-server/internal/catalog"
	"github.com/clauseguard-server/internal/domain"
)

const insurancePolicy = "This insurance policy's premium may be unilaterally modified by the Insurer at any time without notice. Arbitration is mandatory and you waive your right to a jury trial."

const aggressiveTerms = `Terms of Service. By using this website you agree to binding arbitration
and a class action waiver. We may sell your personal data or information to partners, and we may
share your data with third parties at our sole discretion. All fees are non-refundable and there
is no refund under any circumstances. We may amend these terms at any time without notice.
Your account may be terminated without prior notice. You agree to indemnify us including
attorney fees. Subscriptions auto-renew each billing cycle until cancelled.`

func testEngine(t *testing.T) *Engine {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	return New(cat, domain.EngineConfig{
		RiskSaturationK:       40,
		MinClassifyScore:      4,
		RiskEvidenceLimit:     20,
		MinTextLength:         20,
		MaxChecklistItems:     7,
		MaxEvidencePerFinding: 2,
	}, logger)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	e := testEngine(t)

	first := e.Analyze(aggressiveTerms)
	second := e.Analyze(aggressiveTerms)
	assert.True(t, reflect.DeepEqual(first, second),
		"two analyses of the same text must be identical")
}

func TestRiskScoreBounds(t *testing.T) {
	e := testEngine(t)

	inputs := []string{
		"",
		"hello",
		insurancePolicy,
		aggressiveTerms,
		strings.Repeat(aggressiveTerms+" ", 50),
	}
	for _, text := range inputs {
		r := e.Analyze(text)
		assert.GreaterOrEqual(t, r.Risk.Score, 0)
		assert.LessOrEqual(t, r.Risk.Score, 100)
	}
}

func TestRiskScoreMonotonicity(t *testing.T) {
	e := testEngine(t)

	base := "This agreement covers standard service terms. Payment is due each month and you may cancel at any time with a full refund of unused periods."
	before := e.Analyze(base).Risk.Score
	after := e.Analyze(base + " All disputes are subject to binding arbitration and you waive your right to a jury trial.").Risk.Score

	assert.GreaterOrEqual(t, after, before,
		"appending a high-weight clause must never decrease the score")
}

func TestClassificationTotality(t *testing.T) {
	e := testEngine(t)

	for _, text := range []string{"", "   ", "x", "lorem ipsum dolor", insurancePolicy} {
		r := e.Analyze(text)
		assert.True(t, r.DocumentType.IsValid(), "input %q yielded %q", text, r.DocumentType)
	}
}

func TestChecklistSoundness(t *testing.T) {
	e := testEngine(t)
	r := e.Analyze(aggressiveTerms)

	byText := make(map[string]catalog.ChecklistRule)
	for _, rule := range e.cat.Checklist {
		byText[rule.Item] = rule
	}

	for _, item := range r.Checklist {
		if item == e.cat.BaselineChecklistItem {
			continue
		}
		rule, ok := byText[item]
		require.True(t, ok, "checklist item %q has no rule", item)
		assert.True(t, ruleFires(rule, r.DocumentType, r.Risk, r.KeyPoints, r.RedFlags),
			"item %q present but its condition is not satisfied by the findings", item)
	}
}

func TestRedFlagEvidenceLocality(t *testing.T) {
	e := testEngine(t)

	for _, text := range []string{insurancePolicy, aggressiveTerms} {
		r := e.Analyze(text)
		require.NotEmpty(t, r.RedFlags)
		for _, rf := range r.RedFlags {
			off := rf.Evidence.Offset
			snip := rf.Evidence.Snippet
			require.GreaterOrEqual(t, off, 0)
			require.LessOrEqual(t, off+len(snip), len(text))
			assert.Equal(t, text[off:off+len(snip)], snip,
				"%s evidence must be a verifiable substring at its offset", rf.Category)
		}
	}
}

func TestInsurancePolicyScenario(t *testing.T) {
	e := testEngine(t)
	r := e.Analyze(insurancePolicy)

	assert.Equal(t, domain.DocTypeInsurance, r.DocumentType)
	assert.Greater(t, r.Risk.Score, 0)

	assert.True(t, r.HasRedFlag("unilateral-modification"), "red flags: %+v", r.RedFlags)
	assert.True(t, r.HasRedFlag("mandatory-arbitration") || r.HasRedFlag("jury-trial-waiver"))

	arbitrationItem := false
	for _, item := range r.Checklist {
		if strings.Contains(item, "sue in court") {
			arbitrationItem = true
		}
	}
	assert.True(t, arbitrationItem, "checklist should include an arbitration item: %v", r.Checklist)
}

func TestEmptyInputScenario(t *testing.T) {
	e := testEngine(t)

	for _, text := range []string{"", "   \n\t  "} {
		r := e.Analyze(text)
		assert.Equal(t, domain.DocTypeGeneral, r.DocumentType)
		assert.Equal(t, 0, r.Risk.Score)
		assert.Empty(t, r.KeyPoints)
		assert.Empty(t, r.RedFlags)
		assert.Equal(t, []string{e.cat.BaselineChecklistItem}, r.Checklist)
	}
}

func TestRemovingRedFlagClauseLowersRisk(t *testing.T) {
	e := testEngine(t)

	clause := " All payments are final and there is no refund under any circumstances."
	base := "This subscription agreement renews each billing cycle. Payment is collected monthly and you may cancel with thirty days notice."

	with := e.Analyze(base + clause)
	without := e.Analyze(base)

	assert.Less(t, without.Risk.Score, with.Risk.Score)
	assert.Less(t, len(without.RedFlags), len(with.RedFlags))
}

func TestRiskEvidenceOrderingAndTruncation(t *testing.T) {
	e := testEngine(t)
	r := e.Analyze(strings.Repeat(aggressiveTerms+" ", 10))

	assert.LessOrEqual(t, len(r.Risk.Evidence), 20)
	for i := 1; i < len(r.Risk.Evidence); i++ {
		prev, cur := r.Risk.Evidence[i-1], r.Risk.Evidence[i]
		if prev.Weight == cur.Weight {
			assert.LessOrEqual(t, prev.Offset, cur.Offset)
		} else {
			assert.Greater(t, prev.Weight, cur.Weight)
		}
	}
}

func TestRepeatedClausesIncreaseRawScore(t *testing.T) {
	e := testEngine(t)

	once := e.Analyze("Decisions are made at our sole discretion. This document describes the service.")
	thrice := e.Analyze("Decisions are made at our sole discretion. Fees change at our sole discretion. Accounts close at our sole discretion.")

	assert.Greater(t, thrice.Risk.Score, once.Risk.Score,
		"repetition of aggressive language is itself a signal")
}

func TestKeyPointsFollowCategoryOrder(t *testing.T) {
	e := testEngine(t)
	r := e.Analyze(aggressiveTerms)
	require.NotEmpty(t, r.KeyPoints)

	pos := make(map[domain.KeyPointCategory]int)
	for i, cat := range domain.KeyPointCategoryOrder {
		pos[cat] = i
	}
	for i := 1; i < len(r.KeyPoints); i++ {
		assert.Less(t, pos[r.KeyPoints[i-1].Category], pos[r.KeyPoints[i].Category])
	}

	seen := make(map[domain.KeyPointCategory]bool)
	for _, kp := range r.KeyPoints {
		assert.False(t, seen[kp.Category], "duplicate key point category %s", kp.Category)
		seen[kp.Category] = true
	}
}

func TestChecklistCapAndBaseline(t *testing.T) {
	e := testEngine(t)

	r := e.Analyze(strings.Repeat(aggressiveTerms+" ", 3))
	assert.LessOrEqual(t, len(r.Checklist), 7)
	require.NotEmpty(t, r.Checklist)
	assert.Equal(t, e.cat.BaselineChecklistItem, r.Checklist[0])

	seen := make(map[string]bool)
	for _, item := range r.Checklist {
		assert.False(t, seen[item], "duplicate checklist item %q", item)
		seen[item] = true
	}
}

func TestSaturate(t *testing.T) {
	assert.Equal(t, 0, saturate(0, 40))
	assert.Equal(t, 0, saturate(-5, 40))
	assert.Equal(t, 100, saturate(100000, 40))

	// Strictly increasing before saturation.
	prev := 0
	for raw := 1; raw <= 200; raw += 10 {
		s := saturate(raw, 40)
		assert.GreaterOrEqual(t, s, prev)
		prev = s
	}
}
