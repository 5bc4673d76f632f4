package history

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prevent-risk-mcp-server/pkg/prevent"
)

var recordColumns = []string{"id", "model", "risk", "notes", "calculated_at"}

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store, err := NewPostgresStore(db)
	require.NoError(t, err)
	return store, mock
}

func TestNewPostgresStore_NilDB(t *testing.T) {
	_, err := NewPostgresStore(nil)
	assert.Error(t, err)
}

func TestPostgresStore_Save(t *testing.T) {
	store, mock := newMockStore(t)
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO calculations")).
		WithArgs("calc-1", "base", sqlmock.AnyArg(), sqlmock.AnyArg(), 3, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Save(context.Background(), testRecord("calc-1", at)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Save_Error(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO calculations")).
		WillReturnError(errors.New("connection reset"))

	err := store.Save(context.Background(), testRecord("calc-1", time.Now()))
	assert.ErrorContains(t, err, "failed to save calculation")
}

func TestPostgresStore_Get(t *testing.T) {
	store, mock := newMockStore(t)
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM calculations")).
		WithArgs("calc-1").
		WillReturnRows(sqlmock.NewRows(recordColumns).AddRow(
			"calc-1", "full",
			`{"cvd_10yr":4.2,"cvd_30yr":null,"ascvd_10yr":2.1,"ascvd_30yr":null,"hf_10yr":null,"hf_30yr":null,"model":"full"}`,
			`[{"field":"bmi","reason":"bmi is required for heart failure scores"}]`,
			at,
		))

	got, err := store.Get(context.Background(), "calc-1")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, prevent.FullModel, got.Model)
	require.NotNil(t, got.Risk.CVD10)
	assert.Equal(t, 4.2, *got.Risk.CVD10)
	assert.Nil(t, got.Risk.HF10)
	require.Len(t, got.Notes, 1)
	assert.Equal(t, "bmi", got.Notes[0].Field)
	assert.Equal(t, at, got.CalculatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Get_NotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM calculations")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(recordColumns))

	got, err := store.Get(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestPostgresStore_Get_CorruptRisk(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM calculations")).
		WithArgs("calc-1").
		WillReturnRows(sqlmock.NewRows(recordColumns).AddRow("calc-1", "base", "not json", "", time.Now()))

	_, err := store.Get(context.Background(), "calc-1")
	assert.ErrorContains(t, err, "failed to decode risk")
}

func TestPostgresStore_List(t *testing.T) {
	store, mock := newMockStore(t)
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	risk := `{"cvd_10yr":1.5,"model":"base"}`

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY calculated_at DESC")).
		WithArgs(2, 0).
		WillReturnRows(sqlmock.NewRows(recordColumns).
			AddRow("b", "base", risk, "", at.Add(time.Minute)).
			AddRow("a", "base", risk, "", at))

	got, err := store.List(context.Background(), 2, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Empty(t, got[0].Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Count(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM calculations")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}
