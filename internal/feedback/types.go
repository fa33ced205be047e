// Package feedback stores user corrections of document classifications.
// Only a fingerprint of the analyzed text is persisted, never the
// document itself, so the store can be shared without leaking contract
// contents. Corrections are the raw material for recalibrating the
// classification keyword weights.
package feedback

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/clauseguard-server/internal/domain"
)

// Feedback is one user verdict on a classification result.
type Feedback struct {
	ID            int64               `json:"id,omitempty"`
	Fingerprint   string              `json:"fingerprint"`
	DocumentName  string              `json:"document_name,omitempty"`
	SuggestedType domain.DocumentType `json:"suggested_type"`
	UserType      domain.DocumentType `json:"user_type"`
	UserAgreed    bool                `json:"user_agreed"`
	RiskScore     int                 `json:"risk_score"`
	Notes         string              `json:"notes,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// Stats summarizes how often users agree with the classifier.
type Stats struct {
	Total         int64   `json:"total"`
	Agreed        int64   `json:"agreed"`
	AgreementRate float64 `json:"agreement_rate"`
}

// Store is the persistence interface for classification feedback.
type Store interface {
	// Save upserts feedback keyed by document fingerprint.
	Save(ctx context.Context, fb *Feedback) error

	// Get returns the feedback for a fingerprint, or nil when absent.
	Get(ctx context.Context, fingerprint string) (*Feedback, error)

	// List returns feedback entries newest first, with pagination.
	List(ctx context.Context, limit, offset int) ([]*Feedback, error)

	// Count returns the total number of feedback entries.
	Count(ctx context.Context) (int64, error)

	// Stats returns aggregate agreement figures.
	Stats(ctx context.Context) (*Stats, error)

	// Delete removes an entry by id.
	Delete(ctx context.Context, id int64) error

	// Close releases the underlying connection.
	Close() error
}

// Fingerprint derives the stable identifier stored in place of the
// document text.
func Fingerprint(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
