package subtitle

import (
	"fmt"
	"os"
	"path/filepath"

	"uninote-collector/internal/app/util/files"
)

// ExtractTranscript looks for a manual-subtitle .vtt sidecar matching
// baseName in videoDir and, when one exists, writes a verbatim copy and the
// flattened plain text into transcriptDir as <baseName>_transcript.vtt and
// <baseName>_transcript.txt. When several sidecars match (multiple language
// variants), the lexicographically first one wins. The returned text is the
// flattened transcript; found is false when no sidecar matched.
func ExtractTranscript(videoDir, transcriptDir, baseName string) (found bool, text string, err error) {
	matches, err := files.FindByPrefix(videoDir, baseName, ".vtt")
	if err != nil {
		return false, "", err
	}
	if len(matches) == 0 {
		return false, "", nil
	}

	source := matches[0]
	content, err := os.ReadFile(source)
	if err != nil {
		return false, "", fmt.Errorf("failed to read subtitle file %s: %w", source, err)
	}

	vttDest := filepath.Join(transcriptDir, baseName+"_transcript.vtt")
	txtDest := filepath.Join(transcriptDir, baseName+"_transcript.txt")

	if err := os.WriteFile(vttDest, content, 0644); err != nil {
		return false, "", fmt.Errorf("failed to write %s: %w", vttDest, err)
	}

	text = ParseVTT(string(content))
	if err := os.WriteFile(txtDest, []byte(text), 0644); err != nil {
		return false, "", fmt.Errorf("failed to write %s: %w", txtDest, err)
	}

	return true, text, nil
}
