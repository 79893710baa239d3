package csvfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Discoverer lists station CSV files in a directory.
// It implements pipeline.Discoverer.
type Discoverer struct {
	dir     string
	pattern string
}

// NewDiscoverer creates a Discoverer matching pattern (a filepath.Match glob)
// against the entries of dir.
func NewDiscoverer(dir, pattern string) *Discoverer {
	return &Discoverer{dir: dir, pattern: pattern}
}

// Discover returns matching regular files in lexicographic order. A missing
// directory or no matches yields an empty list.
func (d *Discoverer) Discover(_ context.Context) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(d.dir, d.pattern))
	if err != nil {
		return nil, fmt.Errorf("discover %q in %s: %w", d.pattern, d.dir, err)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		info, err := os.Stat(m)
		if err == nil && info.IsDir() {
			continue
		}
		files = append(files, m)
	}
	sort.Strings(files)
	return files, nil
}
