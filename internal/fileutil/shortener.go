package fileutil

import (
	"path/filepath"
	"regexp"
	"strings"
)

var originPattern = regexp.MustCompile(`^https?://[^/]+`)

// Shortener converts trace file paths into display-friendly form.
type Shortener struct {
	// Root is the absolute project root. Empty disables relativization.
	Root string
}

// NewShortener creates a Shortener rooted at root. A relative root is
// resolved against the working directory.
func NewShortener(root string) *Shortener {
	if root != "" {
		if abs, err := filepath.Abs(root); err == nil {
			root = abs
		}
	}
	return &Shortener{Root: root}
}

// Shorten strips a URL origin and makes paths under Root relative to it.
// Paths outside Root are returned unchanged.
func (s *Shortener) Shorten(path string) string {
	path = originPattern.ReplaceAllString(path, "")
	if s == nil || s.Root == "" || !filepath.IsAbs(path) {
		return path
	}

	rel, err := filepath.Rel(s.Root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.ToSlash(rel)
}
