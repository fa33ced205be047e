package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clauseguard-server/internal/cache"
	"github.com/clauseguard-server/internal/catalog"
	"github.com/clauseguard-server/internal/compare"
	"github.com/clauseguard-server/internal/domain"
	"github.com/clauseguard-server/internal/engine"
	"github.com/clauseguard-server/internal/feedback"
)

const sampleTerms = `This subscription renews automatically each month until cancelled.
All fees are non-refundable. We may modify these terms at any time without notice.
Any dispute shall be resolved through binding arbitration, and you waive your right
to a jury trial. This agreement is governed by the laws of the State of Delaware.`

func testConfig() *domain.Config {
	return &domain.Config{
		Server: domain.ServerConfig{
			Host:           "127.0.0.1",
			Port:           0,
			RateLimitRPS:   1000,
			RateLimitBurst: 1000,
			MaxUploadBytes: 1 << 20,
		},
		Engine: domain.EngineConfig{
			RiskSaturationK:       40,
			MinClassifyScore:      4,
			RiskEvidenceLimit:     20,
			MinTextLength:         20,
			MaxChecklistItems:     7,
			MaxEvidencePerFinding: 2,
		},
		Cache:   domain.CacheConfig{MaxEntries: 32},
		Logging: domain.LoggingConfig{Level: "error"},
	}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	cfg := testConfig()
	eng := engine.New(catalog.MustLoad(), cfg.Engine, logger)
	comparer := compare.NewService(eng, logger)

	results, err := cache.New[domain.AnalysisResult](cfg.Cache, "analysis", logger)
	require.NoError(t, err)
	t.Cleanup(func() { results.Close() })

	store, err := feedback.NewSQLiteStore(filepath.Join(t.TempDir(), "feedback.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return NewServer(cfg, eng, comparer, results, store, logger)
}

func doJSON(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, catalog.Version, body["catalog_version"])
}

func TestAnalyzeReturnsResultAndID(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/analyze", analyzeRequest{
		Name: "gym-terms.txt",
		Text: sampleTerms,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp analyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	require.NotNil(t, resp.Result)
	assert.True(t, resp.Result.DocumentType.IsValid())
	assert.GreaterOrEqual(t, resp.Result.Risk.Score, 0)
	assert.LessOrEqual(t, resp.Result.Risk.Score, 100)
	assert.True(t, resp.Result.HasRedFlag("mandatory-arbitration"))
}

func TestAnalyzeRejectsMissingText(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/analyze", map[string]string{"name": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeMultipartUpload(t *testing.T) {
	s := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "terms.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte(sampleTerms))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp analyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "terms.txt", resp.Name)
}

func TestGetAnalysisRoundTrip(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/analyze", analyzeRequest{Text: sampleTerms})
	require.Equal(t, http.StatusOK, w.Code)

	var created analyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, s, http.MethodGet, "/api/v1/analysis/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched analyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, created.Result.DocumentType, fetched.Result.DocumentType)
	assert.Equal(t, created.Result.Risk.Score, fetched.Result.Risk.Score)
}

func TestGetAnalysisUnknownID(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/api/v1/analysis/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportFormats(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/analyze", analyzeRequest{Text: sampleTerms})
	require.Equal(t, http.StatusOK, w.Code)

	var created analyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	for _, format := range []string{"csv", "json", "txt"} {
		w = doJSON(t, s, http.MethodGet, fmt.Sprintf("/api/v1/analysis/%s/export/%s", created.ID, format), nil)
		require.Equal(t, http.StatusOK, w.Code, "format %s", format)
		assert.NotEmpty(t, w.Body.Bytes())
		assert.Contains(t, w.Header().Get("Content-Disposition"), created.ID)
	}

	w = doJSON(t, s, http.MethodGet, "/api/v1/analysis/"+created.ID+"/export/docx", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompareEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/compare", compareRequest{
		Left:  compareDocument{Name: "aggressive", Text: sampleTerms},
		Right: compareDocument{Name: "mild", Text: "You may cancel at any time. Refunds are available within 30 days of purchase."},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result compare.CompareResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.NotEmpty(t, result.Verdict)
}

func TestRankEndpointBounds(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/rank", rankRequest{
		Documents: []compareDocument{{Name: "only", Text: sampleTerms}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFeedbackLifecycle(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/feedback", feedbackRequest{
		Text:         sampleTerms,
		DocumentName: "gym-terms.txt",
		UserType:     string(domain.DocTypeSubscription),
		Notes:        "looks like a gym membership agreement",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, s, http.MethodGet, "/api/v1/feedback", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listing struct {
		Items []*feedback.Feedback `json:"items"`
		Total int64                `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Equal(t, int64(1), listing.Total)
	require.Len(t, listing.Items, 1)
	assert.Equal(t, "gym-terms.txt", listing.Items[0].DocumentName)

	w = doJSON(t, s, http.MethodGet, "/api/v1/feedback/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats feedback.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.Total)
}

func TestFeedbackRejectsUnknownType(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/v1/feedback", feedbackRequest{
		Text:     sampleTerms,
		UserType: "tax-return",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
