package scoring

// Study profile labels, most specific first.
const (
	ProfileHighPerformer    = "High Performer"
	ProfileBalancedStudent  = "Balanced Student"
	ProfileNeedsSupport     = "Needs Support"
	ProfileAveragePerformer = "Average Performer"
)

// FeedbackLabel buckets a score into its display band.
func FeedbackLabel(score float64) string {
	switch {
	case score < 50:
		return "Needs Improvement"
	case score < 75:
		return "Moderate"
	case score < 85:
		return "Good"
	case score < 95:
		return "Excellent"
	default:
		return "Outstanding"
	}
}

// GlowColor returns the accent color for a score band.
func GlowColor(score float64) string {
	switch {
	case score < 50:
		return "#ff4b4b"
	case score < 75:
		return "#ffa500"
	case score < 85:
		return "#4caf50"
	case score < 95:
		return "#2196f3"
	default:
		return "#9c27b0"
	}
}

// StudyProfile derives the coarse classification from the five inputs.
// Clauses are ordered; the first match wins.
func StudyProfile(fv FeatureVector) string {
	switch {
	case fv.StudyHours >= 4 && fv.AttendancePct >= 90 && fv.MentalHealth >= 8 &&
		fv.SleepHours >= 7 && fv.SleepHours <= 8 && !fv.HasPartTimeJob:
		return ProfileHighPerformer
	case fv.StudyHours >= 3 && fv.AttendancePct >= 80 && fv.MentalHealth >= 6:
		return ProfileBalancedStudent
	case fv.StudyHours < 2 || fv.AttendancePct < 70 || fv.MentalHealth < 4:
		return ProfileNeedsSupport
	default:
		return ProfileAveragePerformer
	}
}

// ImprovementTips returns ordered advisory strings, each gated by an
// independent threshold on one input. A student with nothing to fix gets
// the single generic tip.
func ImprovementTips(fv FeatureVector) []string {
	var tips []string
	if fv.StudyHours < 2 {
		tips = append(tips, "Increase study hours to at least 2-3 hours daily")
	} else if fv.StudyHours > 6 {
		tips = append(tips, "Balance study time - avoid burnout")
	}
	if fv.AttendancePct < 75 {
		tips = append(tips, "Improve attendance - aim for at least 75%")
	}
	if fv.MentalHealth < 5 {
		tips = append(tips, "Focus on mental wellbeing - take breaks and manage stress")
	}
	if fv.SleepHours < 6 {
		tips = append(tips, "Get more sleep - aim for 7-8 hours")
	} else if fv.SleepHours > 9 {
		tips = append(tips, "Maintain consistent sleep - 7-8 hours is optimal")
	}
	if fv.HasPartTimeJob && fv.StudyHours > 4 {
		tips = append(tips, "Balance work and study - consider reducing hours during exams")
	}
	if len(tips) == 0 {
		tips = append(tips, "Maintain your current habits - you're on the right track")
	}
	return tips
}

// DefaultInputs returns the documented form defaults, used by the reset
// operation.
func DefaultInputs() FeatureVector {
	return FeatureVector{
		StudyHours:     2.0,
		AttendancePct:  80,
		MentalHealth:   5,
		SleepHours:     7.0,
		HasPartTimeJob: false,
	}
}
