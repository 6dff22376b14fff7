package model

// Statistics summarizes the collection log, persisted as statistics.json.
type Statistics struct {
	TotalVideos         int            `json:"total_videos"`
	BySubject           map[string]int `json:"by_subject"`
	ByDifficulty        map[string]int `json:"by_difficulty"`
	BySource            map[string]int `json:"by_source"`
	TotalDurationHours  float64        `json:"total_duration_hours"`
	AvgDurationMinutes  float64        `json:"avg_duration_minutes"`
	WithManualSubtitles int            `json:"with_manual_subtitles"`
	NeedsWhisper        int            `json:"needs_whisper"`
}
