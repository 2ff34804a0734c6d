package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStatsRequiresAdminToken(t *testing.T) {
	router, _, _ := setupTestRouter(t)

	req := httptest.NewRequest("GET", "/api/v1/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", w.Code)
	}
}

func TestStatsWithAdminToken(t *testing.T) {
	router, store, _ := setupTestRouter(t)
	seedPredictions(t, store, 60, 80, 100)

	req := httptest.NewRequest("GET", "/api/v1/stats", nil)
	req.Header.Set("Authorization", "Bearer test-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp StatsResponse
	_ = json.NewDecoder(w.Body).Decode(&resp)
	if resp.TotalPredictions != 3 {
		t.Errorf("expected 3 predictions, got %d", resp.TotalPredictions)
	}
	if resp.AverageScore != 80 {
		t.Errorf("expected average 80, got %v", resp.AverageScore)
	}
	if resp.BestScore != 100 {
		t.Errorf("expected best 100, got %v", resp.BestScore)
	}
	if resp.Scorer != "heuristic" {
		t.Errorf("expected heuristic scorer, got %q", resp.Scorer)
	}
}

func TestMetricsRouterHealth(t *testing.T) {
	router := NewMetricsRouter()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	var resp map[string]string
	_ = json.NewDecoder(w.Body).Decode(&resp)
	if resp["status"] != "ok" {
		t.Errorf("expected status ok, got %q", resp["status"])
	}
}

func TestMetricsRouterExposesMetrics(t *testing.T) {
	router := NewMetricsRouter()

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}
