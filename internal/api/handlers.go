package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/clauseguard-server/internal/catalog"
	"github.com/clauseguard-server/internal/compare"
	"github.com/clauseguard-server/internal/domain"
	"github.com/clauseguard-server/internal/export"
	"github.com/clauseguard-server/internal/feedback"
	"github.com/clauseguard-server/pkg/extract"
)

type analyzeRequest struct {
	Name string `json:"name"`
	Text string `json:"text" binding:"required"`
}

type analyzeResponse struct {
	ID     string                 `json:"id"`
	Name   string                 `json:"name,omitempty"`
	Result *domain.AnalysisResult `json:"result"`
}

type compareRequest struct {
	Left  compareDocument `json:"left" binding:"required"`
	Right compareDocument `json:"right" binding:"required"`
}

type rankRequest struct {
	Documents []compareDocument `json:"documents" binding:"required"`
}

type compareDocument struct {
	Name string `json:"name"`
	Text string `json:"text" binding:"required"`
}

type feedbackRequest struct {
	Text         string `json:"text" binding:"required"`
	DocumentName string `json:"document_name"`
	UserType     string `json:"user_type" binding:"required"`
	Notes        string `json:"notes"`
}

// handleHealth handles health check requests
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":          "healthy",
		"catalog_version": catalog.Version,
		"timestamp":       time.Now().UTC(),
	})
}

// handleAnalyze analyzes a document submitted either as JSON text or as a
// multipart file upload, caches the result and returns it with its ID.
func (s *Server) handleAnalyze(c *gin.Context) {
	name, text, ok := s.readDocument(c)
	if !ok {
		return
	}

	start := time.Now()
	result := s.engine.Analyze(text)
	s.metrics.observeAnalysis(result, time.Since(start))

	id := uuid.New().String()
	s.results.Put(c.Request.Context(), id, *result)

	s.log.WithFields(logrus.Fields{
		"analysis_id":   id,
		"document_type": result.DocumentType,
		"risk_score":    result.Risk.Score,
		"request_id":    c.GetString("request_id"),
	}).Info("Document analyzed")

	c.JSON(http.StatusOK, analyzeResponse{ID: id, Name: name, Result: result})
}

// readDocument pulls the document text out of the request, from either the
// JSON body or an uploaded file.
func (s *Server) readDocument(c *gin.Context) (name, text string, ok bool) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing file upload"})
			return "", "", false
		}
		if fileHeader.Size > s.cfg.Server.MaxUploadBytes {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file exceeds upload limit"})
			return "", "", false
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read file upload"})
			return "", "", false
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read file upload"})
			return "", "", false
		}

		text, err = extract.Text(fileHeader.Filename, data)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no text could be extracted from the file"})
			return "", "", false
		}
		return fileHeader.Filename, text, true
	}

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return "", "", false
	}
	return req.Name, req.Text, true
}

// handleGetAnalysis returns a previously cached analysis by ID.
func (s *Server) handleGetAnalysis(c *gin.Context) {
	id := c.Param("id")
	result, found := s.results.Get(c.Request.Context(), id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found or expired"})
		return
	}
	c.JSON(http.StatusOK, analyzeResponse{ID: id, Result: &result})
}

// handleExport renders a cached analysis as csv, json or text.
func (s *Server) handleExport(c *gin.Context) {
	format := export.Format(c.Param("format"))
	if !format.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported export format: " + c.Param("format")})
		return
	}

	id := c.Param("id")
	result, found := s.results.Get(c.Request.Context(), id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found or expired"})
		return
	}

	data, err := export.Export(&result, format)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}

	s.metrics.exportsTotal.WithLabelValues(string(format)).Inc()
	c.Header("Content-Disposition", `attachment; filename="analysis-`+id+`.`+string(format)+`"`)
	c.Data(http.StatusOK, format.ContentType(), data)
}

// handleCompare analyzes two documents and returns the side-by-side verdict.
func (s *Server) handleCompare(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "both left and right documents are required"})
		return
	}

	result, err := s.comparer.Compare(c.Request.Context(),
		compare.Document{Name: req.Left.Name, Text: req.Left.Text},
		compare.Document{Name: req.Right.Name, Text: req.Right.Text},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "comparison failed"})
		return
	}

	s.metrics.comparisonsTotal.Inc()
	c.JSON(http.StatusOK, result)
}

// handleRank analyzes up to eight documents and ranks them riskiest first.
func (s *Server) handleRank(c *gin.Context) {
	var req rankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "documents are required"})
		return
	}

	docs := make([]compare.Document, 0, len(req.Documents))
	for _, d := range req.Documents {
		docs = append(docs, compare.Document{Name: d.Name, Text: d.Text})
	}

	result, err := s.comparer.Rank(c.Request.Context(), docs)
	if err != nil {
		if errors.Is(err, domain.ErrTooFewDocs) || errors.Is(err, domain.ErrTooManyDocs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "ranking failed"})
		return
	}

	s.metrics.comparisonsTotal.Inc()
	c.JSON(http.StatusOK, result)
}

// handleCreateFeedback records the user's agreement or correction of the
// detected document type. Only a fingerprint of the text is persisted.
func (s *Server) handleCreateFeedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text and user_type are required"})
		return
	}

	userType := domain.DocumentType(req.UserType)
	if !userType.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown document type: " + req.UserType})
		return
	}

	result := s.engine.Analyze(req.Text)
	fb := &feedback.Feedback{
		Fingerprint:   feedback.Fingerprint(req.Text),
		DocumentName:  req.DocumentName,
		SuggestedType: result.DocumentType,
		UserType:      userType,
		UserAgreed:    userType == result.DocumentType,
		RiskScore:     result.Risk.Score,
		Notes:         req.Notes,
	}

	if err := s.store.Save(c.Request.Context(), fb); err != nil {
		s.log.WithError(err).Error("Failed to save classification feedback")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save feedback"})
		return
	}

	c.JSON(http.StatusCreated, fb)
}

// handleListFeedback returns stored feedback newest first, paginated.
func (s *Server) handleListFeedback(c *gin.Context) {
	limit := queryInt(c, "limit", 50)
	offset := queryInt(c, "offset", 0)
	if limit < 1 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	items, err := s.store.List(c.Request.Context(), limit, offset)
	if err != nil {
		s.log.WithError(err).Error("Failed to list classification feedback")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list feedback"})
		return
	}

	total, err := s.store.Count(c.Request.Context())
	if err != nil {
		s.log.WithError(err).Error("Failed to count classification feedback")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list feedback"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":  items,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// handleFeedbackStats returns the aggregate agreement rate.
func (s *Server) handleFeedbackStats(c *gin.Context) {
	stats, err := s.store.Stats(c.Request.Context())
	if err != nil {
		s.log.WithError(err).Error("Failed to compute feedback stats")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func queryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
