package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ujwal2946/student-mark-prediction/internal/events"
	"github.com/ujwal2946/student-mark-prediction/internal/history"
	"github.com/ujwal2946/student-mark-prediction/internal/scoring"
)

type PredictionsHandler struct {
	store  *history.Store
	scorer *scoring.Scorer
	events events.Client
	delay  time.Duration
	logger *slog.Logger
}

func NewPredictionsHandler(s *history.Store, sc *scoring.Scorer, ev events.Client, delay time.Duration, logger *slog.Logger) *PredictionsHandler {
	return &PredictionsHandler{store: s, scorer: sc, events: ev, delay: delay, logger: logger}
}

type CreatePredictionRequest struct {
	StudentName    string  `json:"student_name,omitempty"`
	StudyHours     float64 `json:"study_hours"`
	AttendancePct  int     `json:"attendance_pct"`
	MentalHealth   int     `json:"mental_health"`
	SleepHours     float64 `json:"sleep_hours"`
	HasPartTimeJob bool    `json:"has_part_time_job"`
}

type PredictionResponse struct {
	Record    history.PredictionRecord `json:"record"`
	Index     int                      `json:"index"`
	Feedback  string                   `json:"feedback"`
	GlowColor string                   `json:"glow_color"`
	Tips      []string                 `json:"tips"`
	Scorer    string                   `json:"scorer"`
	Persisted bool                     `json:"persisted"`
}

// HistoryEntry is one history row as rendered by the list endpoints.
type HistoryEntry struct {
	Index     int                      `json:"index"`
	Record    history.PredictionRecord `json:"record"`
	Favorite  bool                     `json:"favorite"`
	Feedback  string                   `json:"feedback"`
	GlowColor string                   `json:"glow_color"`
}

// Create handles POST /api/v1/predictions
func (h *PredictionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	fv := scoring.FeatureVector{
		StudyHours:     req.StudyHours,
		AttendancePct:  req.AttendancePct,
		MentalHealth:   req.MentalHealth,
		SleepHours:     req.SleepHours,
		HasPartTimeJob: req.HasPartTimeJob,
	}
	if err := fv.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if h.delay > 0 {
		time.Sleep(h.delay)
	}

	pred := h.scorer.Predict(fv)

	persisted := true
	rec, index, err := h.store.Append(r.Context(), req.StudentName, fv, pred.Score)
	if err != nil {
		if !errors.Is(err, history.ErrPersist) {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		persisted = false
		persistenceFailures.Inc()
	}

	predictionsTotal.WithLabelValues(pred.Feedback).Inc()
	predictionScores.Observe(pred.Score)

	if h.events != nil {
		_ = h.events.Publish(events.SubjectPredictionCreated(rec.ID.String()), events.PredictionCreatedEvent{
			RecordID: rec.ID.String(),
			Score:    pred.Score,
			Feedback: pred.Feedback,
			Profile:  rec.StudyProfile,
			Scorer:   pred.Scorer,
		})
	}

	writeJSON(w, http.StatusCreated, PredictionResponse{
		Record:    rec,
		Index:     index,
		Feedback:  pred.Feedback,
		GlowColor: pred.GlowColor,
		Tips:      pred.Tips,
		Scorer:    pred.Scorer,
		Persisted: persisted,
	})
}

// List handles GET /api/v1/predictions
func (h *PredictionsHandler) List(w http.ResponseWriter, r *http.Request) {
	favoritesOnly := r.URL.Query().Get("favorites") == "true"

	entries := h.historyEntries()
	if favoritesOnly {
		var favs []HistoryEntry
		for _, e := range entries {
			if e.Favorite {
				favs = append(favs, e)
			}
		}
		entries = favs
	}
	if entries == nil {
		entries = []HistoryEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *PredictionsHandler) historyEntries() []HistoryEntry {
	records := h.store.Records()
	favorites := make(map[int]bool)
	for _, fav := range h.store.Favorites() {
		favorites[fav] = true
	}

	entries := make([]HistoryEntry, 0, len(records))
	for i, rec := range records {
		entries = append(entries, HistoryEntry{
			Index:     i,
			Record:    rec,
			Favorite:  favorites[i],
			Feedback:  scoring.FeedbackLabel(rec.PredictedScore),
			GlowColor: scoring.GlowColor(rec.PredictedScore),
		})
	}
	return entries
}

// Get handles GET /api/v1/predictions/{index}
func (h *PredictionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	index, ok := parseIndex(w, r)
	if !ok {
		return
	}
	rec, err := h.store.Get(index)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, HistoryEntry{
		Index:     index,
		Record:    rec,
		Favorite:  h.store.IsFavorite(index),
		Feedback:  scoring.FeedbackLabel(rec.PredictedScore),
		GlowColor: scoring.GlowColor(rec.PredictedScore),
	})
}

// Delete handles DELETE /api/v1/predictions/{index}
func (h *PredictionsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	index, ok := parseIndex(w, r)
	if !ok {
		return
	}

	removed, err := h.store.Delete(r.Context(), index)
	if err != nil && !errors.Is(err, history.ErrPersist) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	if errors.Is(err, history.ErrPersist) {
		persistenceFailures.Inc()
	}

	if h.events != nil {
		_ = h.events.Publish(events.SubjectEntryDeleted(removed.ID.String()), events.EntryDeletedEvent{
			RecordID: removed.ID.String(),
			Index:    index,
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"deleted":   removed,
		"favorites": h.store.Favorites(),
	})
}

// ToggleFavorite handles POST /api/v1/predictions/{index}/favorite
func (h *PredictionsHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	index, ok := parseIndex(w, r)
	if !ok {
		return
	}

	favorited, err := h.store.ToggleFavorite(r.Context(), index)
	if err != nil && !errors.Is(err, history.ErrPersist) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	if errors.Is(err, history.ErrPersist) {
		persistenceFailures.Inc()
	}

	if h.events != nil {
		if rec, recErr := h.store.Get(index); recErr == nil {
			_ = h.events.Publish(events.SubjectFavoriteToggled(rec.ID.String()), events.FavoriteToggledEvent{
				RecordID:  rec.ID.String(),
				Index:     index,
				Favorited: favorited,
			})
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"index":     index,
		"favorited": favorited,
	})
}

// Clear handles DELETE /api/v1/predictions — wipes history and favorites.
func (h *PredictionsHandler) Clear(w http.ResponseWriter, r *http.Request) {
	removed := h.store.Len()
	if err := h.store.ClearAll(r.Context()); err != nil {
		persistenceFailures.Inc()
	}

	if h.events != nil {
		_ = h.events.Publish(events.SubjectHistoryCleared, events.HistoryClearedEvent{
			RemovedCount: removed,
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"removed": removed})
}

func parseIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid index"})
		return 0, false
	}
	return index, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
