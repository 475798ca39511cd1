package validation

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// Upload validation constants
const (
	UploadFieldName      = "file"
	MaxFilenameLength    = 255
	DefaultMaxUploadSize = 16 << 20 // 16MB
)

// Upload validation errors
var (
	ErrNoFilePart    = errors.New("no file part in request")
	ErrEmptyFilename = errors.New("no file selected")
	ErrFileTooLarge  = errors.New("file exceeds maximum upload size")
)

// ValidateUploadFilename checks a client supplied filename and returns the
// bare file name with any directory components removed.
func ValidateUploadFilename(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyFilename
	}

	// Browsers on Windows may send full paths with backslashes
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || base == ".." {
		return "", ErrEmptyFilename
	}

	if len(base) > MaxFilenameLength {
		return "", fmt.Errorf("filename cannot exceed %d characters", MaxFilenameLength)
	}

	return base, nil
}

// ValidateUploadSize checks that size does not exceed maxBytes. A
// non-positive maxBytes falls back to DefaultMaxUploadSize.
func ValidateUploadSize(size, maxBytes int64) error {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadSize
	}
	if size > maxBytes {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrFileTooLarge, size, maxBytes)
	}
	return nil
}
