// Package mcp exposes the document analysis engine as MCP tools over stdio,
// so AI assistants can analyze, compare and rank documents directly.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"github.com/clauseguard-server/internal/compare"
	"github.com/clauseguard-server/internal/domain"
	"github.com/clauseguard-server/internal/engine"
	"github.com/clauseguard-server/internal/feedback"
)

const serverVersion = "v1.0.0"

// Server wires the analysis services into an MCP stdio server.
type Server struct {
	engine   *engine.Engine
	comparer *compare.Service
	store    feedback.Store
	server   *mcp.Server
	logger   *logrus.Logger
}

type analyzeInput struct {
	Text string `json:"text" jsonschema:"the full document text to analyze"`
	Name string `json:"name,omitempty" jsonschema:"optional document name for logging"`
}

type compareInput struct {
	LeftName  string `json:"left_name,omitempty" jsonschema:"name of the first document"`
	LeftText  string `json:"left_text" jsonschema:"full text of the first document"`
	RightName string `json:"right_name,omitempty" jsonschema:"name of the second document"`
	RightText string `json:"right_text" jsonschema:"full text of the second document"`
}

type rankDocument struct {
	Name string `json:"name,omitempty" jsonschema:"document name used in the ranking output"`
	Text string `json:"text" jsonschema:"full document text"`
}

type rankInput struct {
	Documents []rankDocument `json:"documents" jsonschema:"between two and eight documents to rank by risk"`
}

type feedbackInput struct {
	Text         string `json:"text" jsonschema:"the document text the classification was produced for"`
	DocumentName string `json:"document_name,omitempty" jsonschema:"optional document name"`
	UserType     string `json:"user_type" jsonschema:"the document type the user believes is correct"`
	Notes        string `json:"notes,omitempty" jsonschema:"optional free-form notes"`
}

// NewServer creates the MCP server and registers all tools.
func NewServer(eng *engine.Engine, comparer *compare.Service, store feedback.Store, logger *logrus.Logger) *Server {
	s := &Server{
		engine:   eng,
		comparer: comparer,
		store:    store,
		logger:   logger,
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "clauseguard",
		Version: serverVersion,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_document",
		Description: "Analyze a contract or terms-of-service document: classify it, score its risk, and list key points, red flags and a pre-signing checklist.",
	}, s.analyzeDocument)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "compare_documents",
		Description: "Compare two documents side by side and say which one is safer to sign.",
	}, s.compareDocuments)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "rank_documents",
		Description: "Rank between two and eight documents from riskiest to safest, with strengths and weaknesses for each.",
	}, s.rankDocuments)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "record_feedback",
		Description: "Record whether the user agrees with the detected document type. Only a fingerprint of the text is stored.",
	}, s.recordFeedback)

	s.server = server
	return s
}

// Run serves MCP over stdio until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("MCP server listening on stdio")
	if err := s.server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}

func (s *Server) analyzeDocument(ctx context.Context, req *mcp.CallToolRequest, input analyzeInput) (*mcp.CallToolResult, any, error) {
	if input.Text == "" {
		return errorResult("text is required"), nil, nil
	}

	result := s.engine.Analyze(input.Text)
	s.logger.WithFields(logrus.Fields{
		"tool":          "analyze_document",
		"document_name": input.Name,
		"document_type": result.DocumentType,
		"risk_score":    result.Risk.Score,
	}).Info("Tool executed")

	return jsonResult(result)
}

func (s *Server) compareDocuments(ctx context.Context, req *mcp.CallToolRequest, input compareInput) (*mcp.CallToolResult, any, error) {
	if input.LeftText == "" || input.RightText == "" {
		return errorResult("left_text and right_text are required"), nil, nil
	}

	result, err := s.comparer.Compare(ctx,
		compare.Document{Name: input.LeftName, Text: input.LeftText},
		compare.Document{Name: input.RightName, Text: input.RightText},
	)
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}

	s.logger.WithField("tool", "compare_documents").Info("Tool executed")
	return jsonResult(result)
}

func (s *Server) rankDocuments(ctx context.Context, req *mcp.CallToolRequest, input rankInput) (*mcp.CallToolResult, any, error) {
	docs := make([]compare.Document, 0, len(input.Documents))
	for _, d := range input.Documents {
		docs = append(docs, compare.Document{Name: d.Name, Text: d.Text})
	}

	result, err := s.comparer.Rank(ctx, docs)
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}

	s.logger.WithFields(logrus.Fields{
		"tool":      "rank_documents",
		"documents": len(docs),
	}).Info("Tool executed")
	return jsonResult(result)
}

func (s *Server) recordFeedback(ctx context.Context, req *mcp.CallToolRequest, input feedbackInput) (*mcp.CallToolResult, any, error) {
	if input.Text == "" {
		return errorResult("text is required"), nil, nil
	}

	userType := domain.DocumentType(input.UserType)
	if !userType.IsValid() {
		return errorResult("unknown document type: " + input.UserType), nil, nil
	}

	result := s.engine.Analyze(input.Text)
	fb := &feedback.Feedback{
		Fingerprint:   feedback.Fingerprint(input.Text),
		DocumentName:  input.DocumentName,
		SuggestedType: result.DocumentType,
		UserType:      userType,
		UserAgreed:    userType == result.DocumentType,
		RiskScore:     result.Risk.Score,
		Notes:         input.Notes,
	}

	if err := s.store.Save(ctx, fb); err != nil {
		s.logger.WithError(err).Error("Failed to save classification feedback")
		return errorResult("failed to save feedback"), nil, nil
	}

	s.logger.WithFields(logrus.Fields{
		"tool":        "record_feedback",
		"user_agreed": fb.UserAgreed,
	}).Info("Tool executed")
	return jsonResult(fb)
}

// jsonResult renders a value as pretty-printed JSON text content.
func jsonResult(v interface{}) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("failed to encode result"), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}, nil, nil
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: msg},
		},
	}
}
