package mcp

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clauseguard-server/internal/catalog"
	"github.com/clauseguard-server/internal/compare"
	"github.com/clauseguard-server/internal/domain"
	"github.com/clauseguard-server/internal/engine"
	"github.com/clauseguard-server/internal/feedback"
)

const termsFixture = `This subscription renews automatically each month until cancelled.
All fees are non-refundable. Any dispute shall be resolved through binding
arbitration, and you waive your right to a jury trial.`

func newTestMCPServer(t *testing.T) *Server {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	cfg := domain.EngineConfig{
		RiskSaturationK:       40,
		MinClassifyScore:      4,
		RiskEvidenceLimit:     20,
		MinTextLength:         20,
		MaxChecklistItems:     7,
		MaxEvidencePerFinding: 2,
	}
	eng := engine.New(catalog.MustLoad(), cfg, logger)

	store, err := feedback.NewSQLiteStore(filepath.Join(t.TempDir(), "feedback.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return NewServer(eng, compare.NewService(eng, logger), store, logger)
}

func textContent(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	require.NotEmpty(t, result.Content)
	tc, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected text content")
	return tc.Text
}

func TestAnalyzeDocumentTool(t *testing.T) {
	s := newTestMCPServer(t)

	result, _, err := s.analyzeDocument(context.Background(), nil, analyzeInput{
		Text: termsFixture,
		Name: "gym-terms.txt",
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	var parsed domain.AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &parsed))
	assert.True(t, parsed.DocumentType.IsValid())
	assert.True(t, parsed.HasRedFlag("mandatory-arbitration"))
	assert.NotEmpty(t, parsed.Checklist)
}

func TestAnalyzeDocumentToolRequiresText(t *testing.T) {
	s := newTestMCPServer(t)

	result, _, err := s.analyzeDocument(context.Background(), nil, analyzeInput{})
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestCompareDocumentsTool(t *testing.T) {
	s := newTestMCPServer(t)

	result, _, err := s.compareDocuments(context.Background(), nil, compareInput{
		LeftName:  "aggressive",
		LeftText:  termsFixture,
		RightName: "mild",
		RightText: "You may cancel at any time. Refunds are available within 30 days of purchase.",
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	var parsed compare.CompareResult
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &parsed))
	assert.NotEmpty(t, parsed.Verdict)
}

func TestRankDocumentsToolBounds(t *testing.T) {
	s := newTestMCPServer(t)

	result, _, err := s.rankDocuments(context.Background(), nil, rankInput{
		Documents: []rankDocument{{Name: "only", Text: termsFixture}},
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestRecordFeedbackTool(t *testing.T) {
	s := newTestMCPServer(t)

	result, _, err := s.recordFeedback(context.Background(), nil, feedbackInput{
		Text:     termsFixture,
		UserType: string(domain.DocTypeSubscription),
		Notes:    "gym membership terms",
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	var parsed feedback.Feedback
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &parsed))
	assert.Equal(t, domain.DocTypeSubscription, parsed.UserType)
	assert.Equal(t, feedback.Fingerprint(termsFixture), parsed.Fingerprint)

	count, err := s.store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRecordFeedbackToolRejectsUnknownType(t *testing.T) {
	s := newTestMCPServer(t)

	result, _, err := s.recordFeedback(context.Background(), nil, feedbackInput{
		Text:     termsFixture,
		UserType: "tax-return",
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
