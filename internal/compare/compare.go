// Package compare ranks and contrasts multiple analyzed documents. The
// analysis engine is called once per document; invocations are
// independent and run concurrently, with results merged back by input
// index so the output stays deterministic.
package compare

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/clauseguard-server/internal/domain"
	"github.com/clauseguard-server/internal/engine"
)

const (
	// MinDocuments and MaxDocuments bound a ranking request.
	MinDocuments = 2
	MaxDocuments = 8
)

// Document is one named input to a comparison or ranking request.
type Document struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// DocRanking is a single document's position in the leaderboard.
// Rank 1 is the riskiest document; the safest ranks last.
type DocRanking struct {
	Rank       int                    `json:"rank"`
	Name       string                 `json:"name"`
	Result     *domain.AnalysisResult `json:"result"`
	WatchCount int                    `json:"watch_count"`
	Strengths  []string               `json:"strengths"`
	Weaknesses []string               `json:"weaknesses"`

	// inputIndex is the document's position in the request. Names are
	// optional and may repeat, so rejoining ranked output to inputs goes
	// through the index.
	inputIndex int
}

// MatrixCell is one document's standing for one category row.
type MatrixCell struct {
	Present  bool   `json:"present"`
	WatchOut bool   `json:"watch_out"`
	Detail   string `json:"detail"`
}

// State renders the cell for presentation layers.
func (c MatrixCell) State() string {
	switch {
	case !c.Present:
		return "missing"
	case c.WatchOut:
		return "warn"
	default:
		return "good"
	}
}

// CategoryRow is one key point category across every ranked document,
// cells in rank order.
type CategoryRow struct {
	Category domain.KeyPointCategory `json:"category"`
	Icon     string                  `json:"icon"`
	Cells    []MatrixCell            `json:"cells"`
}

// RankResult is the full leaderboard for 2-8 documents.
type RankResult struct {
	Rankings       []DocRanking  `json:"rankings"`
	Matrix         []CategoryRow `json:"matrix"`
	SafestName     string        `json:"safest_name"`
	RiskiestName   string        `json:"riskiest_name"`
	SafestReason   string        `json:"safest_reason"`
	Recommendation string        `json:"recommendation"`
}

// CompareResult is the head-to-head view of exactly two documents.
type CompareResult struct {
	Left    DocRanking    `json:"left"`
	Right   DocRanking    `json:"right"`
	Matrix  []CategoryRow `json:"matrix"`
	Verdict string        `json:"verdict"`
}

// Service runs ranking and comparison flows on top of the engine.
type Service struct {
	engine *engine.Engine
	logger *logrus.Logger
}

func NewService(eng *engine.Engine, logger *logrus.Logger) *Service {
	if logger == nil {
		logger = logrus.New()
	}
	return &Service{engine: eng, logger: logger}
}

// Rank analyzes every document concurrently and orders the leaderboard by
// risk score descending, breaking ties by red flag count descending and
// finally by name, so equal inputs always produce the same board.
func (s *Service) Rank(ctx context.Context, docs []Document) (*RankResult, error) {
	if len(docs) < MinDocuments {
		return nil, fmt.Errorf("ranking %d documents: %w", len(docs), domain.ErrTooFewDocs)
	}
	if len(docs) > MaxDocuments {
		return nil, fmt.Errorf("ranking %d documents: %w", len(docs), domain.ErrTooManyDocs)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]*domain.AnalysisResult, len(docs))
	var wg sync.WaitGroup
	for i := range docs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s.engine.Analyze(docs[i].Text)
		}(i)
	}
	wg.Wait()

	rankings := make([]DocRanking, len(docs))
	for i, doc := range docs {
		rankings[i] = DocRanking{
			Name:       doc.Name,
			Result:     results[i],
			WatchCount: results[i].WatchOutCount(),
			inputIndex: i,
		}
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		ri, rj := rankings[i], rankings[j]
		if ri.Result.Risk.Score != rj.Result.Risk.Score {
			return ri.Result.Risk.Score > rj.Result.Risk.Score
		}
		if len(ri.Result.RedFlags) != len(rj.Result.RedFlags) {
			return len(ri.Result.RedFlags) > len(rj.Result.RedFlags)
		}
		return ri.Name < rj.Name
	})
	for i := range rankings {
		rankings[i].Rank = i + 1
	}
	for i := range rankings {
		rankings[i].Strengths = strengths(rankings[i], rankings)
		rankings[i].Weaknesses = weaknesses(rankings[i], rankings)
	}

	safest := rankings[len(rankings)-1]
	riskiest := rankings[0]
	reason, recommendation := buildRecommendation(rankings)

	s.logger.WithFields(logrus.Fields{
		"documents": len(docs),
		"safest":    safest.Name,
		"riskiest":  riskiest.Name,
	}).Debug("Documents ranked")

	return &RankResult{
		Rankings:       rankings,
		Matrix:         buildMatrix(rankings),
		SafestName:     safest.Name,
		RiskiestName:   riskiest.Name,
		SafestReason:   reason,
		Recommendation: recommendation,
	}, nil
}

// Compare is the head-to-head flow for exactly two documents.
func (s *Service) Compare(ctx context.Context, left, right Document) (*CompareResult, error) {
	ranked, err := s.Rank(ctx, []Document{left, right})
	if err != nil {
		return nil, err
	}

	var leftRank, rightRank DocRanking
	for _, r := range ranked.Rankings {
		if r.inputIndex == 0 {
			leftRank = r
		} else {
			rightRank = r
		}
	}

	return &CompareResult{
		Left:    leftRank,
		Right:   rightRank,
		Matrix:  ranked.Matrix,
		Verdict: verdict(leftRank, rightRank),
	}, nil
}

func verdict(left, right DocRanking) string {
	ls, rs := left.Result.Risk.Score, right.Result.Risk.Score
	switch {
	case ls == rs:
		return fmt.Sprintf("%s and %s carry comparable risk (%d/100 each); review the category matrix for the differences that matter to you.", left.Name, right.Name, ls)
	case ls < rs:
		return fmt.Sprintf("%s is the safer choice: it scores %d/100 on risk versus %d/100 for %s.", left.Name, ls, rs, right.Name)
	default:
		return fmt.Sprintf("%s is the safer choice: it scores %d/100 on risk versus %d/100 for %s.", right.Name, rs, ls, left.Name)
	}
}
