package reader

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// Checksum returns a stable identifier for the dataset contents at
// path. Same bytes always yield the same value, so a build run can be
// traced back to the exact dataset it consumed.
func Checksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash dataset: %w", err)
	}
	return "sha256:" + hex.EncodeToString(h.Sum(nil)), nil
}
