package ports

import "go.trai.ch/keydiff/internal/core/domain"

// FileSystem abstracts the file system operations needed to locate and read documents.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Exists reports whether path exists. Symbolic links are followed.
	Exists(path string) (bool, error)

	// IsDir reports whether path is a directory. Symbolic links are followed.
	IsDir(path string) (bool, error)

	// ListFiles returns the names of the non-directory entries of dir, in listing order.
	ListFiles(dir string) ([]string, error)

	// Identity returns the identity of the file behind path.
	Identity(path string) (domain.FileIdentity, error)

	// ReadFile returns the full contents of path.
	ReadFile(path string) ([]byte, error)
}
