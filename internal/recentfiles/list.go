// Package recentfiles keeps the bounded most-recently-used statement list in
// a small JSON sidecar file between sessions.
package recentfiles

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// MaxEntries bounds the stored list.
const MaxEntries = 10

// List is the MRU statement-path list. Entries are absolute paths, most
// recent first, no duplicates.
type List struct {
	path    string
	entries []string
}

// Load reads the sidecar at path. A missing or corrupt sidecar yields an
// empty list, never an error: losing the recent-files history must not block
// the session.
func Load(path string) *List {
	l := &List{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return l
	}
	var entries []string
	if err := json.Unmarshal(data, &entries); err != nil {
		return l
	}
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	l.entries = entries
	return l
}

// Paths returns the stored entries whose files still exist, most recent
// first. Stale entries are skipped but kept in storage.
func (l *List) Paths() []string {
	var out []string
	for _, p := range l.entries {
		if _, err := os.Stat(p); err == nil {
			out = append(out, p)
		}
	}
	return out
}

// Add moves path to the front of the list, deduplicating and truncating to
// MaxEntries. Relative paths are made absolute so dedup works across working
// directories.
func (l *List) Add(path string) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	entries := make([]string, 0, len(l.entries)+1)
	entries = append(entries, path)
	for _, p := range l.entries {
		if p != path {
			entries = append(entries, p)
		}
	}
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	l.entries = entries
}

// Save rewrites the sidecar.
func (l *List) Save() error {
	data, err := json.MarshalIndent(l.entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(l.path, data, 0o644)
}
