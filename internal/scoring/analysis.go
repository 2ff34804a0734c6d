package scoring

import "fmt"

// Factor status bands used by the per-entry analysis view.
const (
	StatusGood    = "good"
	StatusOkay    = "okay"
	StatusImprove = "improve"
)

// FactorStatus is one input's standing against its optimal band.
type FactorStatus struct {
	Name    string `json:"name"`
	Value   string `json:"value"`
	Status  string `json:"status"`
	Optimal string `json:"optimal"`
}

// AnalyzeFactors grades each input against the analysis-view bands.
func AnalyzeFactors(fv FeatureVector) []FactorStatus {
	study := StatusImprove
	if fv.StudyHours >= 3 && fv.StudyHours <= 5 {
		study = StatusGood
	} else if fv.StudyHours >= 2 && fv.StudyHours < 3 {
		study = StatusOkay
	}

	attendance := StatusImprove
	if fv.AttendancePct >= 85 {
		attendance = StatusGood
	} else if fv.AttendancePct >= 75 {
		attendance = StatusOkay
	}

	mental := StatusImprove
	if fv.MentalHealth >= 7 {
		mental = StatusGood
	} else if fv.MentalHealth >= 5 {
		mental = StatusOkay
	}

	sleep := StatusImprove
	if fv.SleepHours >= 7 && fv.SleepHours <= 8 {
		sleep = StatusGood
	} else if fv.SleepHours >= 6 && fv.SleepHours <= 9 {
		sleep = StatusOkay
	}

	job := StatusGood
	jobValue := "No"
	if fv.HasPartTimeJob {
		job = StatusOkay
		jobValue = "Yes"
	}

	return []FactorStatus{
		{Name: "study_hours", Value: fmt.Sprintf("%.1fh", fv.StudyHours), Status: study, Optimal: "3-5h optimal"},
		{Name: "attendance", Value: fmt.Sprintf("%d%%", fv.AttendancePct), Status: attendance, Optimal: "85%+ excellent"},
		{Name: "mental_health", Value: fmt.Sprintf("%d/10", fv.MentalHealth), Status: mental, Optimal: "7+ strong"},
		{Name: "sleep_hours", Value: fmt.Sprintf("%.1fh", fv.SleepHours), Status: sleep, Optimal: "7-8h best"},
		{Name: "part_time_job", Value: jobValue, Status: job, Optimal: "No preferred"},
	}
}

// Strengths lists what is already working well for a student. Empty habits
// get a single encouragement line instead.
func Strengths(fv FeatureVector) []string {
	var points []string
	if fv.StudyHours >= 3 {
		points = append(points, fmt.Sprintf("Good study routine (%.1fh daily)", fv.StudyHours))
	}
	if fv.AttendancePct >= 80 {
		points = append(points, fmt.Sprintf("Solid attendance (%d%%)", fv.AttendancePct))
	}
	if fv.MentalHealth >= 6 {
		points = append(points, fmt.Sprintf("Decent mental health (%d/10)", fv.MentalHealth))
	}
	if fv.SleepHours >= 7 && fv.SleepHours <= 8 {
		points = append(points, fmt.Sprintf("Good sleep habits (%.1fh)", fv.SleepHours))
	}
	if !fv.HasPartTimeJob {
		points = append(points, "No part-time job distraction")
	}
	if len(points) == 0 {
		points = append(points, "Keep working on building good habits")
	}
	return points
}

// Comparison classifications for two scored entries.
const (
	ComparisonSecondHigher = "second higher"
	ComparisonSecondLower  = "second lower"
	ComparisonSimilar      = "similar performance"
)

// ClassifyComparison buckets the signed score difference (second minus
// first); differences within 5 points either way count as similar.
func ClassifyComparison(diff float64) string {
	switch {
	case diff > 5:
		return ComparisonSecondHigher
	case diff < -5:
		return ComparisonSecondLower
	default:
		return ComparisonSimilar
	}
}
