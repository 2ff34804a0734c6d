package api

import (
	"net/http"

	"github.com/ujwal2946/student-mark-prediction/internal/history"
	"github.com/ujwal2946/student-mark-prediction/internal/scoring"
)

type AdminHandler struct {
	store  *history.Store
	scorer *scoring.Scorer
}

func NewAdminHandler(s *history.Store, sc *scoring.Scorer) *AdminHandler {
	return &AdminHandler{store: s, scorer: sc}
}

type StatsResponse struct {
	history.Stats
	Scorer string `json:"scorer"`
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatsResponse{
		Stats:  h.store.Stats(),
		Scorer: h.scorer.Kind(),
	})
}
