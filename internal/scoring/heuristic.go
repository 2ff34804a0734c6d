package scoring

import "math"

// Contribution captures one input's additive contribution to the heuristic score.
type Contribution struct {
	Name   string  `json:"name"`
	Points float64 `json:"points"`
}

// HeuristicBreakdown is the full additive decomposition of a heuristic score.
type HeuristicBreakdown struct {
	Base          float64        `json:"base"`
	Contributions []Contribution `json:"contributions"`
	Raw           float64        `json:"raw"`
	Score         float64        `json:"score"`
}

const heuristicBase = 40.0

// StudyContribution maps daily study hours to score points.
func StudyContribution(hours float64) float64 {
	switch {
	case hours <= 1:
		return -15
	case hours <= 2:
		return -5
	case hours <= 4:
		return hours * 3
	case hours <= 6:
		return 12 + (hours-4)*2
	default:
		return 16 + (hours-6)*1
	}
}

// AttendanceContribution maps attendance percentage to score points.
func AttendanceContribution(pct int) float64 {
	p := float64(pct)
	switch {
	case p < 60:
		return -20
	case p < 75:
		return (p - 60) * 0.8
	case p < 90:
		return 12 + (p-75)*1.2
	default:
		return 30 + (p-90)*0.5
	}
}

// MentalHealthContribution maps the 1-10 mental health rating to score points.
func MentalHealthContribution(rating int) float64 {
	r := float64(rating)
	switch {
	case r <= 3:
		return -15
	case r <= 5:
		return (r - 3) * 2.5
	case r <= 8:
		return 5 + (r-5)*3
	default:
		return 14 + (r-8)*2
	}
}

// SleepContribution maps nightly sleep hours to score points.
// 7-8 hours is the sweet spot; both ends fall off.
func SleepContribution(hours float64) float64 {
	switch {
	case hours < 5:
		return -20
	case hours < 6:
		return -10
	case hours < 7:
		return -5
	case hours <= 8:
		return 10
	case hours <= 9:
		return 5
	default:
		return -5
	}
}

// JobContribution maps part-time job status to score points.
func JobContribution(hasJob bool) float64 {
	if hasJob {
		return -12
	}
	return 5
}

// HeuristicScore computes the deterministic fallback score for a feature
// vector: base 40 plus five independent contributions, clamped to [0,100]
// and rounded to one decimal.
func HeuristicScore(fv FeatureVector) float64 {
	return HeuristicExplain(fv).Score
}

// HeuristicExplain computes the fallback score with its full decomposition.
func HeuristicExplain(fv FeatureVector) HeuristicBreakdown {
	contribs := []Contribution{
		{Name: "study_hours", Points: StudyContribution(fv.StudyHours)},
		{Name: "attendance", Points: AttendanceContribution(fv.AttendancePct)},
		{Name: "mental_health", Points: MentalHealthContribution(fv.MentalHealth)},
		{Name: "sleep_hours", Points: SleepContribution(fv.SleepHours)},
		{Name: "part_time_job", Points: JobContribution(fv.HasPartTimeJob)},
	}

	raw := heuristicBase
	for _, c := range contribs {
		raw += c.Points
	}

	return HeuristicBreakdown{
		Base:          heuristicBase,
		Contributions: contribs,
		Raw:           raw,
		Score:         RoundScore(raw),
	}
}

// RoundScore clamps a raw score to [0,100] and rounds to one decimal.
func RoundScore(raw float64) float64 {
	return math.Round(clamp(raw, 0, 100)*10) / 10
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
