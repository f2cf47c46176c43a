package domain

// FileIdentity identifies the storage object a path resolves to.
// Two path strings with equal identities refer to the same file.
//
// On filesystems exposing inode semantics Device and Inode are set and Path is empty.
// Otherwise Path holds the canonical absolute path and Device and Inode are zero.
type FileIdentity struct {
	Device uint64
	Inode  uint64
	Path   string
}

// NewInodeIdentity returns an identity keyed on device and inode numbers.
func NewInodeIdentity(device, inode uint64) FileIdentity {
	return FileIdentity{Device: device, Inode: inode}
}

// NewPathIdentity returns an identity keyed on a canonical absolute path.
func NewPathIdentity(canonical string) FileIdentity {
	return FileIdentity{Path: canonical}
}

// IsPathBased reports whether the identity falls back to path equality.
func (id FileIdentity) IsPathBased() bool {
	return id.Path != ""
}
