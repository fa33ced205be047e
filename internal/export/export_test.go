package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clauseguard-server/internal/catalog"
	"github.com/clauseguard-server/internal/domain"
	"github.com/clauseguard-server/internal/engine"
)

func sampleResult(t *testing.T) *domain.AnalysisResult {
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

	return eng.Analyze("This subscription auto-renews each billing cycle. All fees are non-refundable and disputes go to binding arbitration. We may amend these terms at any time without notice.")
}

func TestCSVStartsWithBOM(t *testing.T) {
	data, err := CSV(sampleResult(t))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))
	assert.Contains(t, string(data), "SECTION,FIELD,VALUE")
	assert.Contains(t, string(data), "RED FLAGS")
	assert.Contains(t, string(data), "BEFORE SIGNING CHECKLIST")
}

func TestJSONRoundTrips(t *testing.T) {
	result := sampleResult(t)
	data, err := JSON(result)
	require.NoError(t, err)

	var decoded domain.AnalysisResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, result.DocumentType, decoded.DocumentType)
	assert.Equal(t, result.Risk.Score, decoded.Risk.Score)
	assert.Len(t, decoded.RedFlags, len(result.RedFlags))
}

func TestTextIncludesAllSections(t *testing.T) {
	out := string(Text(sampleResult(t)))
	assert.Contains(t, out, "Document Type:")
	assert.Contains(t, out, "KEY POINTS")
	assert.Contains(t, out, "RED FLAGS")
	assert.Contains(t, out, "BEFORE YOU SIGN")
}

func TestExportDispatch(t *testing.T) {
	result := sampleResult(t)

	for _, f := range []Format{FormatCSV, FormatJSON, FormatText} {
		data, err := Export(result, f)
		require.NoError(t, err)
		assert.NotEmpty(t, data)
		assert.True(t, f.IsValid())
		assert.NotEmpty(t, f.ContentType())
	}

	_, err := Export(result, Format("pdf"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExportsAreDeterministic(t *testing.T) {
	result := sampleResult(t)

	a, err := CSV(result)
	require.NoError(t, err)
	b, err := CSV(result)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
