package events

type PredictionCreatedEvent struct {
	RecordID string  `json:"record_id"`
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
	Profile  string  `json:"profile"`
	Scorer   string  `json:"scorer"`
}

type EntryDeletedEvent struct {
	RecordID string `json:"record_id"`
	Index    int    `json:"index"`
}

type FavoriteToggledEvent struct {
	RecordID  string `json:"record_id"`
	Index     int    `json:"index"`
	Favorited bool   `json:"favorited"`
}

type HistoryClearedEvent struct {
	RemovedCount int `json:"removed_count"`
}
