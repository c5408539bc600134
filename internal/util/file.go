// Package util holds small file helpers for the operator CLI.
package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"intercity/internal/errors"
)

// FileDigest identifies the exact contents of a data file
type FileDigest struct {
	Path   string
	Size   int64
	SHA256 string
}

// DigestFile hashes a file and counts its bytes in a single read.
func DigestFile(path string) (*FileDigest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	hash := sha256.New()
	size, err := io.Copy(hash, file)
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate checksum")
	}

	return &FileDigest{
		Path:   path,
		Size:   size,
		SHA256: hex.EncodeToString(hash.Sum(nil)),
	}, nil
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}
