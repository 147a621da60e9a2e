package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"reviewapi/internal/domain/schema"
	"reviewapi/internal/domain/storage"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApplication(t *testing.T) (*application, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	app := &application{
		config: config{env: "test", apiURL: "localhost:8080"},
		logger: zap.NewNop().Sugar(),
		store:  storage.NewContainer(mock),
		pinger: mock,
	}
	return app, mock
}

func executeRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func expectEnsureSchema(mock pgxmock.PgxPoolIface) {
	mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
		WithArgs(schema.LockKey).
		WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS products`).
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS reviews`).
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
}

// recentUTC matches a time.Time in UTC within a minute of the current time.
type recentUTC struct{}

func (recentUTC) Match(v any) bool {
	ts, ok := v.(time.Time)
	if !ok || ts.Location() != time.UTC {
		return false
	}
	d := time.Since(ts)
	return d >= -time.Minute && d <= time.Minute
}
