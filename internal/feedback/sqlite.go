package feedback

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/clauseguard-server/internal/domain"
)

// SQLiteStore implements Store on a local SQLite file. It is the default
// backend for single-instance deployments.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore opens (and if needed creates) the database file and its
// schema. WAL mode keeps concurrent readers from blocking writes.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db, dbPath: dbPath}, nil
}

func createSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS classification_feedback (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		fingerprint TEXT NOT NULL UNIQUE,
		document_name TEXT DEFAULT '',
		suggested_type TEXT NOT NULL,
		user_type TEXT NOT NULL,
		user_agreed INTEGER NOT NULL DEFAULT 0,
		risk_score INTEGER NOT NULL DEFAULT 0,
		notes TEXT DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_feedback_fingerprint ON classification_feedback(fingerprint);
	CREATE INDEX IF NOT EXISTS idx_feedback_created_at ON classification_feedback(created_at);
	`
	_, err := db.Exec(schema)
	return err
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanFeedback(s scanner) (*Feedback, error) {
	fb := &Feedback{}
	var suggested, user string

	err := s.Scan(
		&fb.ID, &fb.Fingerprint, &fb.DocumentName,
		&suggested, &user, &fb.UserAgreed,
		&fb.RiskScore, &fb.Notes, &fb.CreatedAt, &fb.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	fb.SuggestedType = domain.DocumentType(suggested)
	fb.UserType = domain.DocumentType(user)
	return fb, nil
}

// Save upserts feedback keyed by fingerprint.
func (s *SQLiteStore) Save(ctx context.Context, fb *Feedback) error {
	now := time.Now().UTC()

	var existingID int64
	err := s.db.QueryRowContext(ctx,
		"SELECT id FROM classification_feedback WHERE fingerprint = ?",
		fb.Fingerprint,
	).Scan(&existingID)

	if err == nil {
		fb.ID = existingID
		fb.UpdatedAt = now
		_, err = s.db.ExecContext(ctx, `
			UPDATE classification_feedback SET
				document_name = ?,
				suggested_type = ?,
				user_type = ?,
				user_agreed = ?,
				risk_score = ?,
				notes = ?,
				updated_at = ?
			WHERE id = ?
		`,
			fb.DocumentName,
			string(fb.SuggestedType),
			string(fb.UserType),
			fb.UserAgreed,
			fb.RiskScore,
			fb.Notes,
			now,
			existingID,
		)
		return err
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("checking existing feedback: %w", err)
	}

	fb.CreatedAt = now
	fb.UpdatedAt = now

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO classification_feedback (
			fingerprint, document_name, suggested_type, user_type,
			user_agreed, risk_score, notes, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		fb.Fingerprint,
		fb.DocumentName,
		string(fb.SuggestedType),
		string(fb.UserType),
		fb.UserAgreed,
		fb.RiskScore,
		fb.Notes,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("inserting feedback: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading insert id: %w", err)
	}
	fb.ID = id
	return nil
}

// Get returns the feedback for a fingerprint, or nil when absent.
func (s *SQLiteStore) Get(ctx context.Context, fingerprint string) (*Feedback, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, fingerprint, document_name, suggested_type, user_type,
			user_agreed, risk_score, notes, created_at, updated_at
		FROM classification_feedback
		WHERE fingerprint = ?
		LIMIT 1
	`, fingerprint)

	fb, err := scanFeedback(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning feedback: %w", err)
	}
	return fb, nil
}

// List returns feedback entries newest first.
func (s *SQLiteStore) List(ctx context.Context, limit, offset int) ([]*Feedback, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, fingerprint, document_name, suggested_type, user_type,
			user_agreed, risk_score, notes, created_at, updated_at
		FROM classification_feedback
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("querying feedback: %w", err)
	}
	defer rows.Close()

	var result []*Feedback
	for rows.Next() {
		fb, err := scanFeedback(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		result = append(result, fb)
	}
	return result, rows.Err()
}

// Count returns the total number of entries.
func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM classification_feedback").Scan(&count)
	return count, err
}

// Stats returns aggregate agreement figures.
func (s *SQLiteStore) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(user_agreed), 0)
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
func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM classification_feedback WHERE id = ?", id)
	return err
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
