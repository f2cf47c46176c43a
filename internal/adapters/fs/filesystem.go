// Package fs provides the afero-backed file system adapter.
package fs

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/keydiff/internal/core/domain"
	"go.trai.ch/keydiff/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileSystem = (*FileSystem)(nil)

// FileSystem implements ports.FileSystem on top of an afero.Fs.
type FileSystem struct {
	fs afero.Fs
}

// New creates a FileSystem backed by the operating system.
func New() *FileSystem {
	return NewWithFs(afero.NewOsFs())
}

// NewWithFs creates a FileSystem backed by the given afero.Fs.
func NewWithFs(fsys afero.Fs) *FileSystem {
	return &FileSystem{fs: fsys}
}

// Exists reports whether path exists.
func (f *FileSystem) Exists(path string) (bool, error) {
	ok, err := afero.Exists(f.fs, path)
	if err != nil {
		return false, zerr.With(zerr.Wrap(domain.ErrPathStatFailed, err.Error()), "path", path)
	}
	return ok, nil
}

// IsDir reports whether path is a directory. A missing path is not a directory.
func (f *FileSystem) IsDir(path string) (bool, error) {
	ok, err := afero.IsDir(f.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(domain.ErrPathStatFailed, err.Error()), "path", path)
	}
	return ok, nil
}

// ListFiles returns the names of the non-directory entries of dir.
// afero lists entries sorted by name.
func (f *FileSystem) ListFiles(dir string) ([]string, error) {
	infos, err := afero.ReadDir(f.fs, dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrDirectoryListFailed, err.Error()), "path", dir)
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		names = append(names, info.Name())
	}
	return names, nil
}

// Identity returns the device and inode of path when the file system exposes them,
// or its canonical absolute path otherwise.
func (f *FileSystem) Identity(path string) (domain.FileIdentity, error) {
	info, err := f.fs.Stat(path)
	if err != nil {
		return domain.FileIdentity{}, zerr.With(zerr.Wrap(domain.ErrPathStatFailed, err.Error()), "path", path)
	}

	if id, ok := inodeIdentity(info); ok {
		return id, nil
	}

	canonical, err := f.canonicalPath(path)
	if err != nil {
		return domain.FileIdentity{}, zerr.With(zerr.Wrap(domain.ErrPathStatFailed, err.Error()), "path", path)
	}
	return domain.NewPathIdentity(canonical), nil
}

// ReadFile returns the contents of path.
func (f *FileSystem) ReadFile(path string) ([]byte, error) {
	data, err := afero.ReadFile(f.fs, path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrDocumentReadFailed, err.Error()), "path", path)
	}
	return data, nil
}

func (f *FileSystem) canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	// Only the OS file system knows about symbolic links.
	if _, ok := f.fs.(*afero.OsFs); ok {
		resolved, err := filepath.EvalSymlinks(abs)
		if err != nil {
			return "", err
		}
		return resolved, nil
	}
	return abs, nil
}
