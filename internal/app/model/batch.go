package model

// BatchRow is one line of the batch CSV: url,subject,difficulty,source.
type BatchRow struct {
	URL        string
	Subject    string
	Difficulty string
	Source     string
}
