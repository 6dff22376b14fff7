package model

// VideoInfo is the subset of yt-dlp's .info.json sidecar that the collector
// consumes. Fields missing from the sidecar unmarshal to their zero values.
type VideoInfo struct {
	ID          string   `json:"id"`
	WebpageURL  string   `json:"webpage_url"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Uploader    string   `json:"uploader"`
	UploaderID  string   `json:"uploader_id"`
	Channel     string   `json:"channel"`
	UploadDate  string   `json:"upload_date"`
	Duration    float64  `json:"duration"`
	ViewCount   int64    `json:"view_count"`
	LikeCount   int64    `json:"like_count"`
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	FPS         float64  `json:"fps"`
	VCodec      string   `json:"vcodec"`
	ACodec      string   `json:"acodec"`
	Filesize    int64    `json:"filesize"`
	Tags        []string `json:"tags"`
	Categories  []string `json:"categories"`

	// Keyed by language code; only the key presence matters here.
	Subtitles map[string][]SubtitleTrack `json:"subtitles"`
}

// SubtitleTrack is one manual subtitle variant listed in the info sidecar.
type SubtitleTrack struct {
	Ext  string `json:"ext"`
	URL  string `json:"url"`
	Name string `json:"name"`
}
