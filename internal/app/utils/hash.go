package utils

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
)

// VideoID derives the stable identifier for a source URL: the first 12 hex
// characters of its MD5 digest. The collection log's duplicate check keys on
// this value, so the same URL always maps to the same id.
func VideoID(url string) string {
	sum := md5.Sum([]byte(url))
	return hex.EncodeToString(sum[:])[:12]
}

// GetFileSize returns the size of a file in bytes
func GetFileSize(filePath string) (int64, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return 0, fmt.Errorf("failed to stat file: %w", err)
	}
	return fileInfo.Size(), nil
}
