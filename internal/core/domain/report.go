package domain

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ReportEntry lists the keys a single file is missing.
type ReportEntry struct {
	Path        string   `json:"path"`
	MissingKeys []string `json:"missingKeys"`
}

// Report maps file paths to the keys they are missing, in the order files were compared.
// Files without drift are not present.
type Report struct {
	entries []ReportEntry
	index   map[string]int
}

// NewReport creates an empty Report.
func NewReport() *Report {
	return &Report{index: make(map[string]int)}
}

// Add records the missing keys of path. Empty key lists are ignored.
func (r *Report) Add(path string, missing []string) {
	if len(missing) == 0 {
		return
	}
	keys := make([]string, len(missing))
	copy(keys, missing)

	if i, ok := r.index[path]; ok {
		r.entries[i].MissingKeys = keys
		return
	}
	r.index[path] = len(r.entries)
	r.entries = append(r.entries, ReportEntry{Path: path, MissingKeys: keys})
}

// Entries returns the report entries in order.
func (r *Report) Entries() []ReportEntry {
	out := make([]ReportEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Missing returns the missing keys of path and whether the path has drift.
func (r *Report) Missing(path string) ([]string, bool) {
	i, ok := r.index[path]
	if !ok {
		return nil, false
	}
	return r.entries[i].MissingKeys, true
}

// Len returns the number of files with drift.
func (r *Report) Len() int {
	return len(r.entries)
}

// HasDrift reports whether any file is missing keys.
func (r *Report) HasDrift() bool {
	return len(r.entries) > 0
}

// Fingerprint returns a stable digest of the ordered report.
// Two runs over unchanged inputs produce the same fingerprint.
func (r *Report) Fingerprint() string {
	hasher := xxhash.New()
	for _, e := range r.entries {
		_, _ = hasher.WriteString(e.Path)
		_, _ = hasher.Write([]byte{0}) // Separator
		for _, k := range e.MissingKeys {
			_, _ = hasher.WriteString(k)
			_, _ = hasher.Write([]byte{0})
		}
		_, _ = hasher.Write([]byte{0}) // Section separator
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}
