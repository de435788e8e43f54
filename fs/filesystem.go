package fs

import (
	"io/fs"
	"time"
)

// FileSystem abstracts the path-level queries an inspector needs, so that
// local paths and SFTP mounts can be inspected interchangeably.
// Every call goes to the underlying filesystem; nothing is cached.
type FileSystem interface {
	// Stat returns metadata of path, following symlinks.
	Stat(path string) (FileInfo, error)

	// ReadDir returns the paths of the immediate children of dirPath.
	ReadDir(dirPath string) ([]string, error)

	// Walk returns every path under root, root included. Symlinks are
	// reported with the kind of their target but are never descended,
	// except root itself, which is walked through its target.
	Walk(root string) ([]DirEntry, error)

	// Owner returns the name of the user owning path (following symlinks).
	Owner(path string) (string, error)

	// Close releases any resources held by the filesystem (e.g. SSH connections).
	Close() error
}

// FileInfo holds the subset of stat fields the inspector reports.
type FileInfo struct {
	Name       string
	Size       int64
	Mode       fs.FileMode
	IsDir      bool
	ModTime    time.Time
	AccessTime time.Time
	// CreateTime is the birth time, or ModTime where the platform has none.
	CreateTime time.Time
	UID        uint32
}

// IsRegular reports whether the info describes a regular file
func (f FileInfo) IsRegular() bool {
	return f.Mode.IsRegular()
}

// DirEntry represents a single path discovered during Walk.
type DirEntry struct {
	Path string
	// IsDir and IsRegular describe the symlink target for symlinks;
	// both are false for dangling links.
	IsDir     bool
	IsRegular bool
	// Size is the byte length of regular files, 0 otherwise.
	Size int64
}
