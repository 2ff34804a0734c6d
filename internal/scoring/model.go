package scoring

import (
	"encoding/json"
	"fmt"
	"os"
)

// FeatureVector is the ordered 5-tuple of student metrics fed into a scorer.
type FeatureVector struct {
	StudyHours     float64 `json:"study_hours"`
	AttendancePct  int     `json:"attendance_pct"`
	MentalHealth   int     `json:"mental_health"`
	SleepHours     float64 `json:"sleep_hours"`
	HasPartTimeJob bool    `json:"has_part_time_job"`
}

// Floats returns the vector in model order, with job status encoded as 0/1.
func (fv FeatureVector) Floats() [5]float64 {
	job := 0.0
	if fv.HasPartTimeJob {
		job = 1.0
	}
	return [5]float64{fv.StudyHours, float64(fv.AttendancePct), float64(fv.MentalHealth), fv.SleepHours, job}
}

// Validate checks every input against its documented bounds.
func (fv FeatureVector) Validate() error {
	if fv.StudyHours < 0 || fv.StudyHours > 12 {
		return fmt.Errorf("study_hours %.1f out of range [0,12]", fv.StudyHours)
	}
	if fv.AttendancePct < 0 || fv.AttendancePct > 100 {
		return fmt.Errorf("attendance_pct %d out of range [0,100]", fv.AttendancePct)
	}
	if fv.MentalHealth < 1 || fv.MentalHealth > 10 {
		return fmt.Errorf("mental_health %d out of range [1,10]", fv.MentalHealth)
	}
	if fv.SleepHours < 0 || fv.SleepHours > 12 {
		return fmt.Errorf("sleep_hours %.1f out of range [0,12]", fv.SleepHours)
	}
	return nil
}

// Model is the single capability an external prediction artifact exposes.
type Model interface {
	Name() string
	Predict(fv FeatureVector) (float64, error)
}

// LinearModel is a trained regression artifact: intercept plus one
// coefficient per feature, in feature-vector order.
type LinearModel struct {
	ModelName    string     `json:"name"`
	Intercept    float64    `json:"intercept"`
	Coefficients [5]float64 `json:"coefficients"`
}

func (m *LinearModel) Name() string {
	if m.ModelName == "" {
		return "LinearModel"
	}
	return m.ModelName
}

func (m *LinearModel) Predict(fv FeatureVector) (float64, error) {
	feats := fv.Floats()
	score := m.Intercept
	for i, c := range m.Coefficients {
		score += c * feats[i]
	}
	return score, nil
}

// LoadModelFile deserializes a model artifact from disk. A missing or
// malformed file is an error; the caller decides to fall back.
func LoadModelFile(path string) (Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	var m LinearModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse model artifact: %w", err)
	}
	return &m, nil
}
