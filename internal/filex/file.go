// Package filex contains small file helpers for the CLI.
package filex

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadImageDataURI reads an image file and returns it as a base64 data URI,
// the payload shape the backend's /upload endpoint accepts. The MIME type is
// derived from the file extension; unknown extensions are rejected rather
// than uploaded with a guessed type.
func LoadImageDataURI(path string) (string, error) {
	mime, err := imageMIME(path)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func imageMIME(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg", nil
	case ".png":
		return "image/png", nil
	case ".gif":
		return "image/gif", nil
	case ".webp":
		return "image/webp", nil
	default:
		return "", fmt.Errorf("unsupported image type: %s", filepath.Ext(path))
	}
}
