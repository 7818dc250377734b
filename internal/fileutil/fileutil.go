// Package fileutil provides path utility functions.
package fileutil

import (
	"path/filepath"
	"strings"
)

// Stem returns the filename without its directory or extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// SiblingWithExt replaces path's extension with ext (without leading dot),
// keeping directory and stem. Used to derive artifact paths from sources.
func SiblingWithExt(path, ext string) string {
	return filepath.Join(filepath.Dir(path), Stem(path)+"."+ext)
}
