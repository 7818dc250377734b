package swf2pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/alnah/go-swf2pdf/internal/fileutil"
)

// Source identifies one input artifact by path and stem (filename without
// extension). Sources are read-only to the pipeline.
type Source struct {
	Path string
	Stem string
}

// Collect lists the regular files in dir whose extension matches ext
// (without the leading dot), sorted shortest stem first and stems of equal
// length lexicographically. An empty result is valid, not an error.
//
// Plain lexicographic order would put frame10 before frame2; sorting by
// stem length first keeps numeric suffixes of growing width in sequence.
func Collect(dir, ext string) ([]Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	suffix := "." + ext
	var sources []Source
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) != suffix {
			continue
		}
		sources = append(sources, Source{
			Path: filepath.Join(dir, name),
			Stem: fileutil.Stem(name),
		})
	}

	sort.Slice(sources, func(i, j int) bool {
		return stemLess(sources[i].Stem, sources[j].Stem)
	})
	return sources, nil
}

// stemLess orders stems by (length, value).
func stemLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}
