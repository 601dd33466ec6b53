package extract

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// MaxFileSize is the largest upload accepted by Validate.
const MaxFileSize = 10 << 20

var (
	// SupportedSuffixes are the suffixes Extract can read.
	SupportedSuffixes = []string{".txt", ".pdf", ".docx"}

	// AcceptedSuffixes are offered by the file picker. Legacy .doc files
	// pass the picker and are rejected by Validate.
	AcceptedSuffixes = []string{".pdf", ".doc", ".docx", ".txt"}
)

// Validate checks an upload before extraction is attempted.
func Validate(name string, size int64) error {
	if size > MaxFileSize {
		return fmt.Errorf("%w: %s is %s, the limit is 10 MB", ErrFileTooLarge, name, humanSize(size))
	}
	ext := strings.ToLower(filepath.Ext(name))
	if !slices.Contains(SupportedSuffixes, ext) {
		if ext == "" {
			ext = "(none)"
		}
		return fmt.Errorf("%w: %s. Please use %s files", ErrUnsupportedType, ext, strings.Join(SupportedSuffixes, ", "))
	}
	return nil
}

// Accepts reports whether the file picker should offer name.
func Accepts(name string) bool {
	return slices.Contains(AcceptedSuffixes, strings.ToLower(filepath.Ext(name)))
}

func humanSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
