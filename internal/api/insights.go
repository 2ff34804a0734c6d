package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ujwal2946/student-mark-prediction/internal/history"
	"github.com/ujwal2946/student-mark-prediction/internal/scoring"
)

type InsightsHandler struct {
	store *history.Store
}

func NewInsightsHandler(s *history.Store) *InsightsHandler {
	return &InsightsHandler{store: s}
}

// AnalysisResponse is the per-entry analysis view: each input graded against
// its optimal band, the top tips, and what is already working.
type AnalysisResponse struct {
	Record    history.PredictionRecord `json:"record"`
	Feedback  string                   `json:"feedback"`
	GlowColor string                   `json:"glow_color"`
	Factors   []scoring.FactorStatus   `json:"factors"`
	Tips      []string                 `json:"tips"`
	Strengths []string                 `json:"strengths"`
}

// Analyze handles GET /api/v1/predictions/{index}/analysis
func (h *InsightsHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	index, ok := parseIndex(w, r)
	if !ok {
		return
	}
	rec, err := h.store.Get(index)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}

	fv := rec.Features()
	writeJSON(w, http.StatusOK, AnalysisResponse{
		Record:    rec,
		Feedback:  scoring.FeedbackLabel(rec.PredictedScore),
		GlowColor: scoring.GlowColor(rec.PredictedScore),
		Factors:   scoring.AnalyzeFactors(fv),
		Tips:      topThree(scoring.ImprovementTips(fv)),
		Strengths: topThree(scoring.Strengths(fv)),
	})
}

// Compare handles GET /api/v1/compare?a=&b=
func (h *InsightsHandler) Compare(w http.ResponseWriter, r *http.Request) {
	a, err := strconv.Atoi(r.URL.Query().Get("a"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid index a"})
		return
	}
	b, err := strconv.Atoi(r.URL.Query().Get("b"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid index b"})
		return
	}

	cmp, err := h.store.Compare(a, b)
	if err != nil {
		status := http.StatusNotFound
		if errors.Is(err, history.ErrSameIndex) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, cmp)
}

// Defaults handles GET /api/v1/defaults — the documented reset values.
func (h *InsightsHandler) Defaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scoring.DefaultInputs())
}

// Export handles GET /api/v1/history/export — the query-parameter encoding
// of the current snapshot, for shareable links.
func (h *InsightsHandler) Export(w http.ResponseWriter, r *http.Request) {
	values, err := history.EncodeQuery(h.store.Snapshot())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"query": values.Encode()})
}

// Import handles POST /api/v1/history/import — restores a snapshot from a
// previously exported query string.
func (h *InsightsHandler) Import(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	values, err := url.ParseQuery(body.Query)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid query string"})
		return
	}
	snap, err := history.DecodeQuery(values)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.store.Restore(r.Context(), snap); err != nil {
		persistenceFailures.Inc()
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"restored": len(snap.History)})
}

func topThree(items []string) []string {
	if len(items) > 3 {
		return items[:3]
	}
	return items
}
