package feedback

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clauseguard-server/internal/domain"
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	store, err := NewPostgresStore(db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, mock
}

func TestPostgresSaveUpsert(t *testing.T) {
	store, mock := newMockStore(t)

	fb := sampleFeedback()
	mock.ExpectQuery(`INSERT INTO classification_feedback`).
		WithArgs(
			fb.Fingerprint, fb.DocumentName,
			string(fb.SuggestedType), string(fb.UserType),
			fb.UserAgreed, fb.RiskScore, fb.Notes,
			sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	require.NoError(t, store.Save(context.Background(), fb))
	assert.Equal(t, int64(7), fb.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGet(t *testing.T) {
	store, mock := newMockStore(t)

	now := time.Now().UTC()
	fp := Fingerprint("doc")
	rows := sqlmock.NewRows([]string{
		"id", "fingerprint", "document_name", "suggested_type", "user_type",
		"user_agreed", "risk_score", "notes", "created_at", "updated_at",
	}).AddRow(int64(1), fp, "doc.txt", "Insurance Policy", "Insurance Policy",
		true, 73, "", now, now)

	mock.ExpectQuery(`SELECT id, fingerprint, document_name`).
		WithArgs(fp).
		WillReturnRows(rows)

	got, err := store.Get(context.Background(), fp)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.DocTypeInsurance, got.SuggestedType)
	assert.True(t, got.UserAgreed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetMissing(t *testing.T) {
	store, mock := newMockStore(t)

	fp := Fingerprint("unknown")
	mock.ExpectQuery(`SELECT id, fingerprint, document_name`).
		WithArgs(fp).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "fingerprint", "document_name", "suggested_type", "user_type",
			"user_agreed", "risk_score", "notes", "created_at", "updated_at",
		}))

	got, err := store.Get(context.Background(), fp)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStats(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\), COALESCE`).
		WillReturnRows(sqlmock.NewRows([]string{"count", "agreed"}).AddRow(int64(10), int64(8)))

	stats, err := store.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.Total)
	assert.InDelta(t, 0.8, stats.AgreementRate, 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDelete(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(`DELETE FROM classification_feedback`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Delete(context.Background(), int64(3)))
	assert.NoError(t, mock.ExpectationsWereMet())
}
