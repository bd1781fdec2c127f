package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxMiddleware_CommitsOnSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	sqlxDB := sqlx.NewDb(db, "sqlmock")

	var sawTx bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawTx = GetTxFromContext(r.Context()) != nil
		w.WriteHeader(http.StatusOK)
	})

	mw := TxMiddleware(sqlxDB)

	req := httptest.NewRequest(http.MethodPost, "/event/create", nil)
	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, sawTx)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxMiddleware_RollsBackOnPanic(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	sqlxDB := sqlx.NewDb(db, "sqlmock")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	mw := TxMiddleware(sqlxDB)

	req := httptest.NewRequest(http.MethodPost, "/event/create", nil)
	rr := httptest.NewRecorder()

	assert.Panics(t, func() {
		mw(next).ServeHTTP(rr, req)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTxFromContext_Empty(t *testing.T) {
	assert.Nil(t, GetTxFromContext(context.Background()))
}
