package compare

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clauseguard-server/internal/catalog"
	"github.com/clauseguard-server/internal/domain"
	"github.com/clauseguard-server/internal/engine"
)

const safeDoc = "This agreement describes the service, the monthly payment schedule, and how to contact support. You may cancel at any time and receive a refund for unused periods."

const riskyDoc = `By signing you agree to binding arbitration and a class action waiver. We may sell
your personal data to partners at our sole discretion. All fees are non-refundable and there is
no refund. We may amend these terms at any time without notice.`

const middlingDoc = "This subscription renews automatically each billing cycle. A limitation of liability clause applies and disputes follow the governing law of the provider's home state."

func testService(t *testing.T) *Service {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	eng := engine.New(cat, domain.EngineConfig{
		RiskSaturationK:       40,
		MinClassifyScore:      4,
		RiskEvidenceLimit:     20,
		MinTextLength:         20,
		MaxChecklistItems:     7,
		MaxEvidencePerFinding: 2,
	}, logger)
	return NewService(eng, logger)
}

func TestRankOrdersByRiskDescending(t *testing.T) {
	svc := testService(t)

	res, err := svc.Rank(context.Background(), []Document{
		{Name: "safe", Text: safeDoc},
		{Name: "risky", Text: riskyDoc},
		{Name: "middling", Text: middlingDoc},
	})
	require.NoError(t, err)
	require.Len(t, res.Rankings, 3)

	for i := 1; i < len(res.Rankings); i++ {
		assert.GreaterOrEqual(t,
			res.Rankings[i-1].Result.Risk.Score,
			res.Rankings[i].Result.Risk.Score)
		assert.Equal(t, i+1, res.Rankings[i].Rank)
	}
	assert.Equal(t, "risky", res.RiskiestName)
	assert.Equal(t, "risky", res.Rankings[0].Name)
	assert.Equal(t, res.Rankings[len(res.Rankings)-1].Name, res.SafestName)
}

func TestRankDocumentCountLimits(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	_, err := svc.Rank(ctx, []Document{{Name: "only", Text: safeDoc}})
	assert.ErrorIs(t, err, domain.ErrTooFewDocs)

	docs := make([]Document, MaxDocuments+1)
	for i := range docs {
		docs[i] = Document{Name: fmt.Sprintf("doc-%d", i), Text: safeDoc}
	}
	_, err = svc.Rank(ctx, docs)
	assert.ErrorIs(t, err, domain.ErrTooManyDocs)
}

func TestRankIsDeterministic(t *testing.T) {
	svc := testService(t)
	docs := []Document{
		{Name: "a", Text: riskyDoc},
		{Name: "b", Text: safeDoc},
		{Name: "c", Text: middlingDoc},
		{Name: "d", Text: riskyDoc},
	}

	first, err := svc.Rank(context.Background(), docs)
	require.NoError(t, err)
	second, err := svc.Rank(context.Background(), docs)
	require.NoError(t, err)

	assert.True(t, reflect.DeepEqual(first, second),
		"concurrent per-document analysis must still merge deterministically")
}

func TestRankTieBreaksByNameForIdenticalDocs(t *testing.T) {
	svc := testService(t)

	res, err := svc.Rank(context.Background(), []Document{
		{Name: "zeta", Text: riskyDoc},
		{Name: "alpha", Text: riskyDoc},
	})
	require.NoError(t, err)

	assert.Equal(t, "alpha", res.Rankings[0].Name)
	assert.Equal(t, "zeta", res.Rankings[1].Name)
}

func TestRankMatrixCoversAllDocuments(t *testing.T) {
	svc := testService(t)

	res, err := svc.Rank(context.Background(), []Document{
		{Name: "safe", Text: safeDoc},
		{Name: "risky", Text: riskyDoc},
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Matrix)

	pos := make(map[domain.KeyPointCategory]int)
	for i, cat := range domain.KeyPointCategoryOrder {
		pos[cat] = i
	}
	for i, row := range res.Matrix {
		assert.Len(t, row.Cells, 2)
		if i > 0 {
			assert.Less(t, pos[res.Matrix[i-1].Category], pos[row.Category])
		}
	}
}

func TestCompareVerdictPicksSaferDocument(t *testing.T) {
	svc := testService(t)

	res, err := svc.Compare(context.Background(),
		Document{Name: "safe", Text: safeDoc},
		Document{Name: "risky", Text: riskyDoc})
	require.NoError(t, err)

	assert.Equal(t, "safe", res.Left.Name)
	assert.Equal(t, "risky", res.Right.Name)
	assert.Contains(t, res.Verdict, "safe is the safer choice")
	assert.Less(t, res.Left.Result.Risk.Score, res.Right.Result.Risk.Score)
}

func TestCompareUnnamedDocumentsStayDistinct(t *testing.T) {
	svc := testService(t)

	res, err := svc.Compare(context.Background(),
		Document{Text: safeDoc},
		Document{Text: riskyDoc})
	require.NoError(t, err)

	assert.Less(t, res.Left.Result.Risk.Score, res.Right.Result.Risk.Score,
		"each side must keep its own analysis when names are empty")
}

func TestCompareDuplicateNamesKeepInputOrder(t *testing.T) {
	svc := testService(t)

	res, err := svc.Compare(context.Background(),
		Document{Name: "contract", Text: riskyDoc},
		Document{Name: "contract", Text: safeDoc})
	require.NoError(t, err)

	assert.Greater(t, res.Left.Result.Risk.Score, res.Right.Result.Risk.Score)
}

func TestMatrixCellTruncatesOnRuneBoundary(t *testing.T) {
	result := &domain.AnalysisResult{
		KeyPoints: []domain.KeyPoint{{
			Category: domain.CategoryPrivacy,
			Detail:   "a" + strings.Repeat("é", matrixDetailLimit),
		}},
	}

	cell := cellFor(result, domain.CategoryPrivacy)
	assert.True(t, cell.Present)
	assert.LessOrEqual(t, len(cell.Detail), matrixDetailLimit)
	assert.True(t, utf8.ValidString(cell.Detail))
}

func TestRecommendationNamesSafestAndRiskiest(t *testing.T) {
	svc := testService(t)

	res, err := svc.Rank(context.Background(), []Document{
		{Name: "safe", Text: safeDoc},
		{Name: "risky", Text: riskyDoc},
	})
	require.NoError(t, err)

	assert.Contains(t, res.Recommendation, "safe")
	assert.NotEmpty(t, res.SafestReason)
}

func TestRankCancelledContext(t *testing.T) {
	svc := testService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Rank(ctx, []Document{
		{Name: "a", Text: safeDoc},
		{Name: "b", Text: riskyDoc},
	})
	assert.Error(t, err)
}
