package assets

import (
	"os"
	"path/filepath"
	"strings"
)

// Index maps lowercase apparel directory names to their on-disk paths, so
// lookups are case-insensitive against the art pack.
type Index struct {
	entries map[string]string // name.lower() → full dir path
}

// BuildIndex scans root/Apparel for item directories.
func BuildIndex(root string) *Index {
	idx := &Index{entries: make(map[string]string)}

	parent := filepath.Join(root, "Apparel")
	entries, err := os.ReadDir(parent)
	if err != nil {
		return idx
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		key := strings.ToLower(e.Name())
		// First hit wins when two dirs differ only by case.
		if _, exists := idx.entries[key]; !exists {
			idx.entries[key] = filepath.Join(parent, e.Name())
		}
	}
	return idx
}

// ResolveDir returns the apparel directory for an item name, or ("", false).
func (idx *Index) ResolveDir(name string) (string, bool) {
	dir, ok := idx.entries[strings.ToLower(name)]
	return dir, ok
}

// Len reports the number of indexed apparel directories.
func (idx *Index) Len() int { return len(idx.entries) }
