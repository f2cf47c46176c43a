// Package resolver turns user input into the validated list of files to compare.
package resolver

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/keydiff/internal/core/domain"
	"go.trai.ch/keydiff/internal/core/ports"
	"go.trai.ch/zerr"
)

// Request selects the files to compare.
// When Files is non-empty the search fields are ignored.
type Request struct {
	Files         []string
	SearchPath    string
	SearchPattern string
}

// Resolver builds file sets through a FileSystem.
type Resolver struct {
	fs ports.FileSystem
}

// New creates a new Resolver.
func New(fsys ports.FileSystem) *Resolver {
	return &Resolver{fs: fsys}
}

// Resolve returns the ordered, duplicate-free list of files described by req.
// The result always holds at least domain.MinComparableFiles entries.
func (r *Resolver) Resolve(ctx context.Context, req Request) ([]string, error) {
	if len(req.Files) > 0 {
		return r.resolveFiles(ctx, req.Files)
	}
	return r.resolveSearch(ctx, req.SearchPath, req.SearchPattern)
}

// resolveFiles keeps the input order and drops paths naming an already seen file.
func (r *Resolver) resolveFiles(ctx context.Context, files []string) ([]string, error) {
	seen := make(map[domain.FileIdentity]struct{}, len(files))
	resolved := make([]string, 0, len(files))

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		exists, err := r.fs.Exists(path)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, zerr.With(zerr.Wrap(domain.ErrNotFoundPath, "invalid file list"), "path", path)
		}

		id, err := r.fs.Identity(path)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		resolved = append(resolved, path)
	}

	if len(resolved) < domain.MinComparableFiles {
		return nil, zerr.With(zerr.Wrap(domain.ErrNotEnoughFiles, "invalid file list"), "files", len(resolved))
	}
	return resolved, nil
}

func (r *Resolver) resolveSearch(ctx context.Context, searchPath, pattern string) ([]string, error) {
	if searchPath == "" {
		return nil, domain.ErrEmptySearchPath
	}

	isDir, err := r.fs.IsDir(searchPath)
	if err != nil {
		return nil, err
	}
	if !isDir {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidSearchPath, "cannot search for files"), "path", searchPath)
	}

	if pattern == "" {
		pattern = domain.DefaultSearchPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidSearchPattern, err.Error()), "pattern", pattern)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	names, err := r.fs.ListFiles(searchPath)
	if err != nil {
		return nil, err
	}

	dir := normalizeDir(searchPath)
	files := make([]string, 0, len(names))
	for _, name := range names {
		if !re.MatchString(name) {
			continue
		}
		files = append(files, dir+name)
	}

	if len(files) < domain.MinComparableFiles {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrNotEnoughFiles, "too few matching files"),
			"path", searchPath), "pattern", pattern)
	}
	return files, nil
}

// normalizeDir cleans path and returns it with exactly one trailing separator.
func normalizeDir(path string) string {
	cleaned := filepath.Clean(path)
	sep := string(filepath.Separator)
	if strings.HasSuffix(cleaned, sep) {
		return cleaned
	}
	return cleaned + sep
}
