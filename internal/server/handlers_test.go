package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordcalc/internal/domain"
	"wordcalc/internal/services/calculator"
	"wordcalc/internal/services/history"
	"wordcalc/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	hist := history.New(store.NewHistoryFileStore(t.TempDir(), zerolog.Nop()), zerolog.Nop())
	calc := calculator.New(hist, nil, zerolog.Nop())
	return New(Config{
		Addr:       ":0",
		Calculator: calc,
		History:    hist,
		Log:        zerolog.Nop(),
	})
}

func TestHandleEvaluate_OK(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/evaluate",
		strings.NewReader(`{"expression":"2+3*4"}`))
	rec := httptest.NewRecorder()
	s.http.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp evaluateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(14), resp.Result)
	assert.Equal(t, "Fourteen", resp.Words)
	assert.Equal(t, "Two plus Three times Four equals Fourteen", resp.Phrase)
}

func TestHandleEvaluate_DisplayGlyphs(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/evaluate",
		strings.NewReader(`{"expression":"8÷2"}`))
	rec := httptest.NewRecorder()
	s.http.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp evaluateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(4), resp.Result)
}

func TestHandleEvaluate_Errors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body string
		code int
	}{
		{"malformed expression", `{"expression":"2++"}`, http.StatusUnprocessableEntity},
		{"division by zero", `{"expression":"5/(3-3)"}`, http.StatusUnprocessableEntity},
		{"empty expression", `{"expression":""}`, http.StatusBadRequest},
		{"bad body", `{`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/evaluate", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			s.http.Handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestHistoryEndpoints(t *testing.T) {
	s := newTestServer(t)

	// Seed one calculation.
	req := httptest.NewRequest(http.MethodPost, "/evaluate",
		strings.NewReader(`{"expression":"1+1"}`))
	s.http.Handler.ServeHTTP(httptest.NewRecorder(), req)

	rec := httptest.NewRecorder()
	s.http.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/history", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var recs []domain.HistoryRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &recs))
	require.Len(t, recs, 1)
	assert.Equal(t, "1+1", recs[0].Expression)

	rec = httptest.NewRecorder()
	s.http.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/history", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	s.http.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/history", nil))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &recs))
	assert.Empty(t, recs)
}
