package feedback

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/clauseguard-server/internal/domain"
)

// PostgresStore implements Store on PostgreSQL for multi-instance
// deployments. The schema is created via migrations, not by the store.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore wraps an existing connection. The schema must already
// exist.
func NewPostgresStore(db *sql.DB) (*PostgresStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// NewPostgresStoreFromURL opens a pooled connection from a URL.
func NewPostgresStoreFromURL(databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	store, err := NewPostgresStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// Save upserts feedback keyed by fingerprint.
func (s *PostgresStore) Save(ctx context.Context, fb *Feedback) error {
	now := time.Now().UTC()
	if fb.CreatedAt.IsZero() {
		fb.CreatedAt = now
	}
	fb.UpdatedAt = now

	query := `
		INSERT INTO classification_feedback (
			fingerprint, document_name, suggested_type, user_type,
			user_agreed, risk_score, notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (fingerprint) DO UPDATE SET
			document_name = EXCLUDED.document_name,
			suggested_type = EXCLUDED.suggested_type,
			user_type = EXCLUDED.user_type,
			user_agreed = EXCLUDED.user_agreed,
			risk_score = EXCLUDED.risk_score,
			notes = EXCLUDED.notes,
			updated_at = EXCLUDED.updated_at
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		fb.Fingerprint,
		fb.DocumentName,
		string(fb.SuggestedType),
		string(fb.UserType),
		fb.UserAgreed,
		fb.RiskScore,
		fb.Notes,
		fb.CreatedAt,
		fb.UpdatedAt,
	).Scan(&fb.ID)
	if err != nil {
		return fmt.Errorf("upserting feedback: %w", err)
	}
	return nil
}

// Get returns the feedback for a fingerprint, or nil when absent.
func (s *PostgresStore) Get(ctx context.Context, fingerprint string) (*Feedback, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, fingerprint, document_name, suggested_type, user_type,
			user_agreed, risk_score, notes, created_at, updated_at
		FROM classification_feedback
		WHERE fingerprint = $1
		LIMIT 1
	`, fingerprint)

	fb := &Feedback{}
	var suggested, user string
	err := row.Scan(
		&fb.ID, &fb.Fingerprint, &fb.DocumentName,
		&suggested, &user, &fb.UserAgreed,
		&fb.RiskScore, &fb.Notes, &fb.CreatedAt, &fb.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning feedback: %w", err)
	}
	fb.SuggestedType = domain.DocumentType(suggested)
	fb.UserType = domain.DocumentType(user)
	return fb, nil
}

// List returns feedback entries newest first.
func (s *PostgresStore) List(ctx context.Context, limit, offset int) ([]*Feedback, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, fingerprint, document_name, suggested_type, user_type,
			user_agreed, risk_score, notes, created_at, updated_at
		FROM classification_feedback
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("querying feedback: %w", err)
	}
	defer rows.Close()

	var result []*Feedback
	for rows.Next() {
		fb := &Feedback{}
		var suggested, user string
		if err := rows.Scan(
			&fb.ID, &fb.Fingerprint, &fb.DocumentName,
			&suggested, &user, &fb.UserAgreed,
			&fb.RiskScore, &fb.Notes, &fb.CreatedAt, &fb.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		fb.SuggestedType = domain.DocumentType(suggested)
		fb.UserType = domain.DocumentType(user)
		result = append(result, fb)
	}
	return result, rows.Err()
}

// Count returns the total number of entries.
func (s *PostgresStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM classification_feedback").Scan(&count)
	return count, err
}

// Stats returns aggregate agreement figures.
func (s *PostgresStore) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(CASE WHEN user_agreed THEN 1 ELSE 0 END), 0)
		FROM classification_feedback
	`).Scan(&stats.Total, &stats.Agreed)
	if err != nil {
		return nil, fmt.Errorf("querying stats: %w", err)
	}
	if stats.Total > 0 {
		stats.AgreementRate = float64(stats.Agreed) / float64(stats.Total)
	}
	return stats, nil
}

// Delete removes an entry by id.
func (s *PostgresStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM classification_feedback WHERE id = $1", id)
	return err
}

// Close closes the database.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
