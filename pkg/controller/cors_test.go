package controller_test

import (
	"gmao/pkg/controller"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireCORSHeaders(t *testing.T, h http.Header) {
	t.Helper()

	require.Equal(t, "*", h.Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", h.Get("Access-Control-Allow-Credentials"))
	require.Contains(t, h.Get("Access-Control-Allow-Headers"), "Authorization")
	require.Contains(t, h.Get("Access-Control-Allow-Headers"), "X-Request-Id")
	require.Contains(t, h.Get("Access-Control-Allow-Methods"), http.MethodPost)
	require.Contains(t, h.Get("Access-Control-Expose-Headers"), "Content-Disposition")
}

func TestWithCORS_SensorRegistrationPreflight(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/v1/sensors", nil)
	req.Header.Set("Origin", "https://gmao.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "authorization, content-type")
	rec := httptest.NewRecorder()

	controller.WithCORS(next).ServeHTTP(rec, req)

	require.False(t, called, "preflight must not reach the API")
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())
	requireCORSHeaders(t, rec.Header())
}

func TestWithCORS_HistoryExport(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", "attachment; filename=history_1.pdf")
		_, _ = w.Write([]byte("%PDF-1.3"))
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/sensors/1/history/export?format=pdf", nil)
	req.Header.Set("Origin", "https://gmao.example.com")
	rec := httptest.NewRecorder()

	controller.WithCORS(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "%PDF-1.3", rec.Body.String())
	require.Equal(t, "attachment; filename=history_1.pdf", rec.Header().Get("Content-Disposition"))
	requireCORSHeaders(t, rec.Header())
}
