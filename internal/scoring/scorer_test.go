package scoring

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// failingModel always errors, forcing the heuristic fallback.
type failingModel struct{}

func (failingModel) Name() string { return "failing" }

func (failingModel) Predict(FeatureVector) (float64, error) {
	return 0, errors.New("boom")
}

func TestFeatureVectorValidate(t *testing.T) {
	tests := []struct {
		name    string
		fv      FeatureVector
		wantErr bool
	}{
		{"valid", FeatureVector{StudyHours: 3, AttendancePct: 80, MentalHealth: 5, SleepHours: 7}, false},
		{"valid extremes", FeatureVector{StudyHours: 0, AttendancePct: 0, MentalHealth: 1, SleepHours: 0}, false},
		{"valid upper extremes", FeatureVector{StudyHours: 12, AttendancePct: 100, MentalHealth: 10, SleepHours: 12}, false},
		{"negative study", FeatureVector{StudyHours: -1, AttendancePct: 80, MentalHealth: 5, SleepHours: 7}, true},
		{"study too high", FeatureVector{StudyHours: 13, AttendancePct: 80, MentalHealth: 5, SleepHours: 7}, true},
		{"attendance over 100", FeatureVector{StudyHours: 3, AttendancePct: 101, MentalHealth: 5, SleepHours: 7}, true},
		{"mental health zero", FeatureVector{StudyHours: 3, AttendancePct: 80, MentalHealth: 0, SleepHours: 7}, true},
		{"mental health eleven", FeatureVector{StudyHours: 3, AttendancePct: 80, MentalHealth: 11, SleepHours: 7}, true},
		{"sleep too high", FeatureVector{StudyHours: 3, AttendancePct: 80, MentalHealth: 5, SleepHours: 13}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fv.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestFeatureVectorFloats(t *testing.T) {
	fv := FeatureVector{StudyHours: 3.5, AttendancePct: 82, MentalHealth: 7, SleepHours: 6.5, HasPartTimeJob: true}
	feats := fv.Floats()
	want := [5]float64{3.5, 82, 7, 6.5, 1}
	if feats != want {
		t.Errorf("Floats() = %v, want %v", feats, want)
	}

	fv.HasPartTimeJob = false
	if feats := fv.Floats(); feats[4] != 0 {
		t.Errorf("expected job feature 0, got %v", feats[4])
	}
}

func TestLinearModelPredict(t *testing.T) {
	m := &LinearModel{
		ModelName:    "test-regression",
		Intercept:    10,
		Coefficients: [5]float64{5, 0.5, 2, 1, -10},
	}
	fv := FeatureVector{StudyHours: 4, AttendancePct: 80, MentalHealth: 6, SleepHours: 7, HasPartTimeJob: true}

	got, err := m.Predict(fv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 10 + 20 + 40 + 12 + 7 - 10
	if math.Abs(got-79) > 0.0001 {
		t.Errorf("expected 79, got %v", got)
	}
}

func TestLinearModelName(t *testing.T) {
	if got := (&LinearModel{ModelName: "ridge"}).Name(); got != "ridge" {
		t.Errorf("got %q", got)
	}
	if got := (&LinearModel{}).Name(); got != "LinearModel" {
		t.Errorf("expected default name, got %q", got)
	}
}

func TestLoadModelFile(t *testing.T) {
	t.Run("valid artifact", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "model.json")
		artifact := `{"name":"exam-regression","intercept":12.5,"coefficients":[3,0.4,1.5,2,-8]}`
		if err := os.WriteFile(path, []byte(artifact), 0o644); err != nil {
			t.Fatal(err)
		}

		m, err := LoadModelFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Name() != "exam-regression" {
			t.Errorf("expected name 'exam-regression', got %q", m.Name())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadModelFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadModelFile(path); err == nil {
			t.Error("expected error for malformed file")
		}
	})
}

func TestScorerHeuristicFallback(t *testing.T) {
	s := NewScorer(nil, discardLogger())

	if s.Kind() != "heuristic" {
		t.Errorf("expected heuristic kind, got %q", s.Kind())
	}

	fv := FeatureVector{StudyHours: 3, AttendancePct: 75, MentalHealth: 5, SleepHours: 7.5}
	if got := s.Score(fv); got != HeuristicScore(fv) {
		t.Errorf("expected heuristic score %v, got %v", HeuristicScore(fv), got)
	}
}

func TestScorerUsesModel(t *testing.T) {
	m := &LinearModel{ModelName: "linear", Intercept: 50, Coefficients: [5]float64{2, 0, 0, 0, 0}}
	s := NewScorer(m, discardLogger())

	if s.Kind() != "linear" {
		t.Errorf("expected model kind, got %q", s.Kind())
	}

	fv := FeatureVector{StudyHours: 10, AttendancePct: 80, MentalHealth: 5, SleepHours: 7}
	if got := s.Score(fv); got != 70.0 {
		t.Errorf("expected 70.0, got %v", got)
	}
}

func TestScorerModelErrorDegrades(t *testing.T) {
	s := NewScorer(failingModel{}, discardLogger())
	fv := FeatureVector{StudyHours: 3, AttendancePct: 75, MentalHealth: 5, SleepHours: 7.5}
	if got := s.Score(fv); got != HeuristicScore(fv) {
		t.Errorf("expected heuristic fallback %v, got %v", HeuristicScore(fv), got)
	}
}

func TestScorerModelScoreClamped(t *testing.T) {
	m := &LinearModel{Intercept: 500}
	s := NewScorer(m, discardLogger())
	fv := FeatureVector{StudyHours: 3, AttendancePct: 75, MentalHealth: 5, SleepHours: 7}
	if got := s.Score(fv); got != 100.0 {
		t.Errorf("expected clamp to 100.0, got %v", got)
	}
}

func TestPredictAttachesClassifications(t *testing.T) {
	s := NewScorer(nil, discardLogger())
	fv := FeatureVector{StudyHours: 4, AttendancePct: 90, MentalHealth: 8, SleepHours: 7.5}

	p := s.Predict(fv)
	if p.Score != 100.0 {
		t.Errorf("expected 100.0, got %v", p.Score)
	}
	if p.Feedback != "Outstanding" {
		t.Errorf("expected Outstanding, got %q", p.Feedback)
	}
	if p.Profile != ProfileHighPerformer {
		t.Errorf("expected high performer, got %q", p.Profile)
	}
	if p.GlowColor != "#9c27b0" {
		t.Errorf("unexpected glow color %q", p.GlowColor)
	}
	if len(p.Tips) == 0 {
		t.Error("expected at least the generic tip")
	}
	if p.Scorer != "heuristic" {
		t.Errorf("expected heuristic scorer tag, got %q", p.Scorer)
	}
}
