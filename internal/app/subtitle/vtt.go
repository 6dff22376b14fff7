// Package subtitle turns WebVTT sidecar files produced by the retriever into
// plain-text transcripts for the dataset.
package subtitle

import (
	"regexp"
	"strings"
)

var inlineTagRe = regexp.MustCompile(`<[^>]+>`)

// ParseVTT flattens WebVTT content to plain text. Header lines, cue indices,
// timing lines and metadata lines are dropped, inline tags like <c> and
// <00:00:01.000> are stripped, and the remaining cue text is joined with
// single spaces. Repeated cue text is kept as-is.
func ParseVTT(content string) string {
	var cues []string

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)

		if line == "" ||
			strings.HasPrefix(line, "WEBVTT") ||
			strings.Contains(line, "-->") ||
			isCueIndex(line) ||
			strings.HasPrefix(line, "Kind:") ||
			strings.HasPrefix(line, "Language:") {
			continue
		}

		line = strings.TrimSpace(inlineTagRe.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}

		cues = append(cues, line)
	}

	return strings.Join(cues, " ")
}

// isCueIndex reports whether the line is a bare cue number.
func isCueIndex(line string) bool {
	if line == "" {
		return false
	}
	for _, r := range line {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
