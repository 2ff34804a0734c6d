package history

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ujwal2946/student-mark-prediction/internal/scoring"
)

var (
	// ErrIndexOutOfRange is returned when an operation references a history
	// position that does not exist.
	ErrIndexOutOfRange = errors.New("history index out of range")

	// ErrSameIndex is returned when a comparison names the same entry twice.
	ErrSameIndex = errors.New("cannot compare an entry with itself")

	// ErrPersist wraps medium failures. Operations that return it have
	// already applied their change in memory; callers log and continue.
	ErrPersist = errors.New("persist history")
)

// DefaultStudentName fills in records saved without a name.
const DefaultStudentName = "Student"

// PredictionRecord is one completed scoring event.
type PredictionRecord struct {
	ID             uuid.UUID `json:"id"`
	StudentName    string    `json:"student_name"`
	StudyHours     float64   `json:"study_hours"`
	AttendancePct  int       `json:"attendance_pct"`
	MentalHealth   int       `json:"mental_health"`
	SleepHours     float64   `json:"sleep_hours"`
	HasPartTimeJob bool      `json:"has_part_time_job"`
	PredictedScore float64   `json:"predicted_score"`
	StudyProfile   string    `json:"study_profile"`
	CreatedAt      time.Time `json:"created_at"`
}

// Features returns the record's inputs as a feature vector.
func (r PredictionRecord) Features() scoring.FeatureVector {
	return scoring.FeatureVector{
		StudyHours:     r.StudyHours,
		AttendancePct:  r.AttendancePct,
		MentalHealth:   r.MentalHealth,
		SleepHours:     r.SleepHours,
		HasPartTimeJob: r.HasPartTimeJob,
	}
}

// Snapshot is the durable form of the store: the full record sequence, the
// favorite indices, and when it was written.
type Snapshot struct {
	History   []PredictionRecord `json:"history"`
	Favorites []int              `json:"favorites"`
	LastSaved time.Time          `json:"last_saved"`
}

// Comparison is the side-by-side result of comparing two entries.
// ScoreDiff is second minus first.
type Comparison struct {
	First          PredictionRecord `json:"first"`
	Second         PredictionRecord `json:"second"`
	ScoreDiff      float64          `json:"score_diff"`
	Classification string           `json:"classification"`
}

// Stats summarizes the store for the admin surface.
type Stats struct {
	TotalPredictions int            `json:"total_predictions"`
	FavoriteCount    int            `json:"favorite_count"`
	AverageScore     float64        `json:"average_score"`
	BestScore        float64        `json:"best_score"`
	ProfileCounts    map[string]int `json:"profile_counts"`
}

// Store holds the ordered prediction history and favorite indices, persisting
// through a Medium after every mutation. Each operation runs to completion
// under the lock, so favorite bookkeeping never observes a half-applied
// delete.
type Store struct {
	mu        sync.Mutex
	records   []PredictionRecord
	favorites []int
	medium    Medium
	logger    *slog.Logger
}

// New creates an empty store backed by the given medium.
func New(medium Medium, logger *slog.Logger) *Store {
	return &Store{medium: medium, logger: logger}
}

// Load restores the store from its medium. A missing or corrupt medium
// yields an empty store; corruption is reported as a wrapped ErrPersist so
// the caller can surface a notice without failing.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	s.favorites = nil

	snap, err := s.medium.Load(ctx)
	if err != nil {
		s.logger.Warn("history load failed, starting empty", "error", err)
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	if snap == nil {
		return nil
	}

	for _, r := range snap.History {
		if r.StudentName == "" {
			r.StudentName = DefaultStudentName
		}
		if r.StudyProfile == "" {
			r.StudyProfile = scoring.StudyProfile(r.Features())
		}
		s.records = append(s.records, r)
	}
	for _, idx := range snap.Favorites {
		if idx >= 0 && idx < len(s.records) {
			s.favorites = append(s.favorites, idx)
		}
	}
	return nil
}

// Save writes the current state to the medium.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist(ctx)
}

// persist writes under an already-held lock.
func (s *Store) persist(ctx context.Context) error {
	snap := &Snapshot{
		History:   append([]PredictionRecord(nil), s.records...),
		Favorites: append([]int(nil), s.favorites...),
		LastSaved: time.Now().UTC(),
	}
	if err := s.medium.Save(ctx, snap); err != nil {
		s.logger.Warn("history save failed, continuing in memory", "error", err)
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}

// Append adds a completed prediction to the end of the history and returns
// it with the index it landed at. The study profile and creation timestamp
// are computed here, once, and stored.
func (s *Store) Append(ctx context.Context, studentName string, fv scoring.FeatureVector, score float64) (PredictionRecord, int, error) {
	if studentName == "" {
		studentName = DefaultStudentName
	}

	rec := PredictionRecord{
		ID:             uuid.New(),
		StudentName:    studentName,
		StudyHours:     fv.StudyHours,
		AttendancePct:  fv.AttendancePct,
		MentalHealth:   fv.MentalHealth,
		SleepHours:     fv.SleepHours,
		HasPartTimeJob: fv.HasPartTimeJob,
		PredictedScore: score,
		StudyProfile:   scoring.StudyProfile(fv),
		CreatedAt:      time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	return rec, len(s.records) - 1, s.persist(ctx)
}

// Delete removes the record at index, drops it from favorites if marked, and
// renumbers every favorite past it.
func (s *Store) Delete(ctx context.Context, index int) (PredictionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.records) {
		return PredictionRecord{}, ErrIndexOutOfRange
	}

	removed := s.records[index]
	s.records = append(s.records[:index], s.records[index+1:]...)

	kept := s.favorites[:0]
	for _, fav := range s.favorites {
		switch {
		case fav == index:
			// dropped with the record
		case fav > index:
			kept = append(kept, fav-1)
		default:
			kept = append(kept, fav)
		}
	}
	s.favorites = kept

	return removed, s.persist(ctx)
}

// ToggleFavorite marks or unmarks the record at index. It reports whether
// the entry is a favorite after the toggle.
func (s *Store) ToggleFavorite(ctx context.Context, index int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.records) {
		return false, ErrIndexOutOfRange
	}

	for i, fav := range s.favorites {
		if fav == index {
			s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
			return false, s.persist(ctx)
		}
	}
	s.favorites = append(s.favorites, index)
	return true, s.persist(ctx)
}

// ClearAll empties the history and favorites.
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	s.favorites = nil
	return s.persist(ctx)
}

// Compare returns both records side by side with the signed score difference
// (second minus first).
func (s *Store) Compare(a, b int) (Comparison, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a < 0 || a >= len(s.records) || b < 0 || b >= len(s.records) {
		return Comparison{}, ErrIndexOutOfRange
	}
	if a == b {
		return Comparison{}, ErrSameIndex
	}

	diff := s.records[b].PredictedScore - s.records[a].PredictedScore
	return Comparison{
		First:          s.records[a],
		Second:         s.records[b],
		ScoreDiff:      diff,
		Classification: scoring.ClassifyComparison(diff),
	}, nil
}

// Get returns the record at index.
func (s *Store) Get(index int) (PredictionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.records) {
		return PredictionRecord{}, ErrIndexOutOfRange
	}
	return s.records[index], nil
}

// Records returns a copy of the full history.
func (s *Store) Records() []PredictionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]PredictionRecord(nil), s.records...)
}

// Favorites returns a copy of the favorite indices in marking order.
func (s *Store) Favorites() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.favorites...)
}

// IsFavorite reports whether the record at index is marked.
func (s *Store) IsFavorite(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, fav := range s.favorites {
		if fav == index {
			return true
		}
	}
	return false
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Stats aggregates the current history for the admin surface.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := Stats{
		TotalPredictions: len(s.records),
		FavoriteCount:    len(s.favorites),
		ProfileCounts:    make(map[string]int),
	}
	var sum float64
	for _, r := range s.records {
		sum += r.PredictedScore
		if r.PredictedScore > stats.BestScore {
			stats.BestScore = r.PredictedScore
		}
		stats.ProfileCounts[r.StudyProfile]++
	}
	if len(s.records) > 0 {
		stats.AverageScore = sum / float64(len(s.records))
	}
	return stats
}

// Restore replaces the store contents with a decoded snapshot, applying the
// same defaulting and favorite sanitizing as Load, then persists.
func (s *Store) Restore(ctx context.Context, snap *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	s.favorites = nil
	for _, r := range snap.History {
		if r.StudentName == "" {
			r.StudentName = DefaultStudentName
		}
		if r.StudyProfile == "" {
			r.StudyProfile = scoring.StudyProfile(r.Features())
		}
		s.records = append(s.records, r)
	}
	for _, idx := range snap.Favorites {
		if idx >= 0 && idx < len(s.records) {
			s.favorites = append(s.favorites, idx)
		}
	}
	return s.persist(ctx)
}

// Snapshot returns the current state in durable form.
func (s *Store) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &Snapshot{
		History:   append([]PredictionRecord(nil), s.records...),
		Favorites: append([]int(nil), s.favorites...),
		LastSaved: time.Now().UTC(),
	}
}
