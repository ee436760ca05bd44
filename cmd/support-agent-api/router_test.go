package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"supportagent/internal/config"
	"supportagent/internal/observability"
)

func newTestRouter() http.Handler {
	return NewRouter(observability.Nop(), config.DefaultConfig())
}

func TestPreflightReturnsNoContent(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{"/api/v1/search", "/api/v1/ingest", "/api/v1/chat"} {
		req := httptest.NewRequest(http.MethodOptions, path, nil)
		req.Header.Set("Origin", "https://app.example.com")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code, path)
		assert.Empty(t, rec.Body.String(), path)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"), path)
	}
}

func TestHealthEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestSearchWorksWithoutAPIKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/search", strings.NewReader(`{"full_path":"Products > Drives"}`))
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ACS880")
}

func TestIngestReportsMissingCredential(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ingest", strings.NewReader(`{"download_url":"https://example.com/m.pdf"}`))
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Gemini API key not configured")
}
