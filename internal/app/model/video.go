package model

// VideoRecord is the metadata kept for one collected video. It is written to
// the per-video metadata JSON and appended to the collection log.
type VideoRecord struct {
	VideoIndex  int      `json:"video_index"`
	VideoID     string   `json:"video_id"`
	URL         string   `json:"url"`
	Title       string   `json:"title"`
	Duration    int      `json:"duration"`
	UploadDate  string   `json:"upload_date"`
	Uploader    string   `json:"uploader"`
	UploaderID  string   `json:"uploader_id"`
	Channel     string   `json:"channel"`
	ViewCount   int64    `json:"view_count"`
	LikeCount   int64    `json:"like_count"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Categories  []string `json:"categories"`
	Resolution  string   `json:"resolution"`
	FPS         float64  `json:"fps"`
	VCodec      string   `json:"vcodec"`
	ACodec      string   `json:"acodec"`
	Filesize    int64    `json:"filesize"`

	HasManualSubtitles bool   `json:"has_manual_subtitles"`
	Filename           string `json:"filename"`

	// Annotations carried over from the batch CSV.
	Subject    string `json:"subject"`
	Difficulty string `json:"difficulty"`
	Source     string `json:"source"`

	DownloadDate string `json:"download_date"`

	// Set after transcript extraction: true when no manual subtitles were
	// found and the video still needs speech-to-text elsewhere.
	NeedsWhisperTranscription bool `json:"needs_whisper_transcription"`
}

// CollectionLog is the cumulative record of every collected video, persisted
// as collection_log.json in the output directory. TotalVideos always equals
// len(Videos).
type CollectionLog struct {
	DownloadDate     string        `json:"download_date"`
	GoVersion        string        `json:"go_version"`
	CollectorVersion string        `json:"collector_version"`
	Retriever        string        `json:"retriever"`
	TotalVideos      int           `json:"total_videos"`
	Videos           []VideoRecord `json:"videos"`
}
