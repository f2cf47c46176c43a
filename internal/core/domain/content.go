package domain

import "unique"

// ContentMap maps file paths to their top-level keys.
// Enumeration follows insertion order so that drift reports are reproducible.
// Keys are interned: locale and config files tend to share most of their keys.
type ContentMap struct {
	paths []string
	keys  map[string][]unique.Handle[string]
}

// NewContentMap creates an empty ContentMap.
func NewContentMap() *ContentMap {
	return &ContentMap{
		keys: make(map[string][]unique.Handle[string]),
	}
}

// Set records the ordered keys of path. Setting a path twice replaces its keys
// but keeps its original position.
func (c *ContentMap) Set(path string, keys []string) {
	if _, ok := c.keys[path]; !ok {
		c.paths = append(c.paths, path)
	}
	handles := make([]unique.Handle[string], len(keys))
	for i, k := range keys {
		handles[i] = unique.Make(k)
	}
	c.keys[path] = handles
}

// Paths returns the file paths in insertion order.
func (c *ContentMap) Paths() []string {
	out := make([]string, len(c.paths))
	copy(out, c.paths)
	return out
}

// Keys returns the ordered keys of path, or nil if the path is unknown.
func (c *ContentMap) Keys(path string) []string {
	handles, ok := c.keys[path]
	if !ok {
		return nil
	}
	out := make([]string, len(handles))
	for i, h := range handles {
		out[i] = h.Value()
	}
	return out
}

// Handles returns the interned keys of path without copying.
// Callers must not modify the returned slice.
func (c *ContentMap) Handles(path string) []unique.Handle[string] {
	return c.keys[path]
}

// Len returns the number of files in the map.
func (c *ContentMap) Len() int {
	return len(c.paths)
}
