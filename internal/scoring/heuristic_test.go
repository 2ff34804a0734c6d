package scoring

import (
	"math"
	"testing"
)

func TestStudyContribution(t *testing.T) {
	tests := []struct {
		name  string
		hours float64
		want  float64
	}{
		{"zero hours", 0, -15},
		{"exactly one hour", 1.0, -15},
		{"just over one hour", 1.0001, -5},
		{"two hours", 2.0, -5},
		{"three hours", 3.0, 9},
		{"four hours", 4.0, 12},
		{"five hours", 5.0, 14},
		{"six hours", 6.0, 16},
		{"eight hours", 8.0, 18},
		{"twelve hours", 12.0, 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StudyContribution(tt.hours)
			if math.Abs(got-tt.want) > 0.0001 {
				t.Errorf("StudyContribution(%v) = %v, want %v", tt.hours, got, tt.want)
			}
		})
	}
}

func TestAttendanceContribution(t *testing.T) {
	tests := []struct {
		name string
		pct  int
		want float64
	}{
		{"zero", 0, -20},
		{"just below sixty", 59, -20},
		{"sixty", 60, 0},
		{"seventy", 70, 8},
		{"seventy four", 74, 11.2},
		{"seventy five", 75, 12},
		{"eighty nine", 89, 28.8},
		{"ninety", 90, 30},
		{"hundred", 100, 35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AttendanceContribution(tt.pct)
			if math.Abs(got-tt.want) > 0.0001 {
				t.Errorf("AttendanceContribution(%d) = %v, want %v", tt.pct, got, tt.want)
			}
		})
	}
}

func TestMentalHealthContribution(t *testing.T) {
	tests := []struct {
		name   string
		rating int
		want   float64
	}{
		{"one", 1, -15},
		{"three", 3, -15},
		{"four", 4, 2.5},
		{"five", 5, 5},
		{"six", 6, 8},
		{"eight", 8, 14},
		{"nine", 9, 16},
		{"ten", 10, 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MentalHealthContribution(tt.rating)
			if math.Abs(got-tt.want) > 0.0001 {
				t.Errorf("MentalHealthContribution(%d) = %v, want %v", tt.rating, got, tt.want)
			}
		})
	}
}

func TestSleepContribution(t *testing.T) {
	tests := []struct {
		name  string
		hours float64
		want  float64
	}{
		{"four hours", 4.0, -20},
		{"just below five", 4.9, -20},
		{"five hours", 5.0, -10},
		{"six hours", 6.0, -5},
		{"just below seven", 6.9, -5},
		{"seven hours", 7.0, 10},
		{"eight hours", 8.0, 10},
		{"eight and a half", 8.5, 5},
		{"nine hours", 9.0, 5},
		{"ten hours", 10.0, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SleepContribution(tt.hours)
			if got != tt.want {
				t.Errorf("SleepContribution(%v) = %v, want %v", tt.hours, got, tt.want)
			}
		})
	}
}

func TestJobContribution(t *testing.T) {
	if got := JobContribution(true); got != -12 {
		t.Errorf("JobContribution(true) = %v, want -12", got)
	}
	if got := JobContribution(false); got != 5 {
		t.Errorf("JobContribution(false) = %v, want 5", got)
	}
}

func TestHeuristicScoreKnownInputs(t *testing.T) {
	t.Run("strong student clamps to 100", func(t *testing.T) {
		// 40 + 12 + 30 + 14 + 10 + 5 = 111 before clamping
		fv := FeatureVector{StudyHours: 4, AttendancePct: 90, MentalHealth: 8, SleepHours: 7.5}
		got := HeuristicScore(fv)
		if got != 100.0 {
			t.Errorf("expected 100.0, got %v", got)
		}

		bd := HeuristicExplain(fv)
		if math.Abs(bd.Raw-111) > 0.0001 {
			t.Errorf("expected raw 111, got %v", bd.Raw)
		}
	})

	t.Run("struggling student clamps to 0", func(t *testing.T) {
		// 40 - 15 - 20 - 15 - 20 - 12 = -42 before clamping
		fv := FeatureVector{StudyHours: 0.5, AttendancePct: 50, MentalHealth: 2, SleepHours: 4, HasPartTimeJob: true}
		got := HeuristicScore(fv)
		if got != 0.0 {
			t.Errorf("expected 0.0, got %v", got)
		}

		bd := HeuristicExplain(fv)
		if math.Abs(bd.Raw-(-42)) > 0.0001 {
			t.Errorf("expected raw -42, got %v", bd.Raw)
		}
	})

	t.Run("mid-range student", func(t *testing.T) {
		// 40 + 9 + 12 + 5 + 10 + 5 = 81
		fv := FeatureVector{StudyHours: 3, AttendancePct: 75, MentalHealth: 5, SleepHours: 7.5}
		got := HeuristicScore(fv)
		if got != 81.0 {
			t.Errorf("expected 81.0, got %v", got)
		}
	})
}

func TestHeuristicExplainBreakdown(t *testing.T) {
	fv := FeatureVector{StudyHours: 3, AttendancePct: 80, MentalHealth: 6, SleepHours: 7}
	bd := HeuristicExplain(fv)

	if bd.Base != 40 {
		t.Errorf("expected base 40, got %v", bd.Base)
	}
	if len(bd.Contributions) != 5 {
		t.Fatalf("expected 5 contributions, got %d", len(bd.Contributions))
	}

	sum := bd.Base
	for _, c := range bd.Contributions {
		sum += c.Points
	}
	if math.Abs(sum-bd.Raw) > 0.0001 {
		t.Errorf("contributions sum to %v, raw says %v", sum, bd.Raw)
	}
	if bd.Score != RoundScore(bd.Raw) {
		t.Errorf("score %v not the rounded raw %v", bd.Score, bd.Raw)
	}
}

func TestHeuristicScoreAlwaysInRange(t *testing.T) {
	for study := 0.0; study <= 12; study += 1.5 {
		for _, att := range []int{0, 40, 60, 75, 90, 100} {
			for _, mental := range []int{1, 4, 7, 10} {
				for sleep := 3.0; sleep <= 12; sleep += 1.5 {
					for _, job := range []bool{true, false} {
						fv := FeatureVector{StudyHours: study, AttendancePct: att, MentalHealth: mental, SleepHours: sleep, HasPartTimeJob: job}
						got := HeuristicScore(fv)
						if got < 0 || got > 100 {
							t.Fatalf("score %v out of range for %+v", got, fv)
						}
					}
				}
			}
		}
	}
}

func TestHeuristicScoreDeterministic(t *testing.T) {
	fv := FeatureVector{StudyHours: 2.5, AttendancePct: 82, MentalHealth: 6, SleepHours: 6.5, HasPartTimeJob: true}
	first := HeuristicScore(fv)
	for i := 0; i < 10; i++ {
		if got := HeuristicScore(fv); got != first {
			t.Fatalf("score changed between calls: %v then %v", first, got)
		}
	}
}

func TestRoundScore(t *testing.T) {
	tests := []struct {
		name string
		raw  float64
		want float64
	}{
		{"negative clamps to zero", -42, 0.0},
		{"over hundred clamps", 111, 100.0},
		{"one decimal rounding", 72.34, 72.3},
		{"rounds up", 72.35, 72.4},
		{"exact stays", 81, 81.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundScore(tt.raw); got != tt.want {
				t.Errorf("RoundScore(%v) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
