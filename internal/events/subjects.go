package events

const (
	StreamName   = "PREDICTOR_EVENTS"
	StreamMaxAge = "720h" // 30 days

	SubjectHistoryCleared = "predict.history.cleared"
)

func SubjectPredictionCreated(recordID string) string {
	return "predict.prediction." + recordID + ".created"
}

func SubjectEntryDeleted(recordID string) string {
	return "predict.history." + recordID + ".deleted"
}

func SubjectFavoriteToggled(recordID string) string {
	return "predict.history." + recordID + ".favorite"
}
