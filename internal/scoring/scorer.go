package scoring

import (
	"log/slog"
)

// Prediction is the complete scoring output for one feature vector.
type Prediction struct {
	Score     float64  `json:"score"`
	Feedback  string   `json:"feedback"`
	Profile   string   `json:"profile"`
	GlowColor string   `json:"glow_color"`
	Tips      []string `json:"tips"`
	Scorer    string   `json:"scorer"`
}

// Scorer maps a feature vector to a bounded exam score. It delegates to an
// external model when one loaded successfully and falls back to the
// deterministic heuristic otherwise.
type Scorer struct {
	model  Model
	logger *slog.Logger
}

// NewScorer creates a Scorer. A nil model selects the heuristic fallback.
func NewScorer(model Model, logger *slog.Logger) *Scorer {
	return &Scorer{model: model, logger: logger}
}

// Kind reports which implementation is active.
func (s *Scorer) Kind() string {
	if s.model != nil {
		return s.model.Name()
	}
	return "heuristic"
}

// Score computes the clamped one-decimal score for a feature vector.
// A model prediction error degrades to the heuristic rather than failing.
func (s *Scorer) Score(fv FeatureVector) float64 {
	if s.model != nil {
		raw, err := s.model.Predict(fv)
		if err == nil {
			return RoundScore(raw)
		}
		s.logger.Warn("model prediction failed, using heuristic", "model", s.model.Name(), "error", err)
	}
	return HeuristicScore(fv)
}

// Predict scores a feature vector and attaches every derived classification.
func (s *Scorer) Predict(fv FeatureVector) Prediction {
	score := s.Score(fv)
	return Prediction{
		Score:     score,
		Feedback:  FeedbackLabel(score),
		Profile:   StudyProfile(fv),
		GlowColor: GlowColor(score),
		Tips:      ImprovementTips(fv),
		Scorer:    s.Kind(),
	}
}
