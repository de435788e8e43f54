// Package inspector reports read-only metadata of a single filesystem path.
//
// A PathInspector holds a path and re-resolves it against the filesystem on
// every query: nothing is cached, so changing the path with SetPath, or changing
// the filesystem between two calls, is always reflected in the next result.
//
// In safe-fetch mode a missing path is an expected condition and queries return
// sentinels (-1 for sizes and counts, the not-found string for string queries,
// an empty slice for listings). Otherwise filesystem errors are returned to the
// caller, except by Permission which is always best-effort.
//
// A PathInspector is not safe for concurrent use if its path or mode is changed.
package inspector

import (
	"fmt"

	fsi "github.com/m-manu/fsinspect/fs"
	"github.com/m-manu/fsinspect/permission"
)

// DefaultNotFound is returned by string queries for missing paths in safe-fetch mode
const DefaultNotFound = "Error"

// Options configures a PathInspector. The zero value inspects the local
// filesystem, fails on missing paths and reads permissions with "stat -c".
type Options struct {
	// SafeFetch returns sentinels instead of errors for missing paths
	SafeFetch bool
	// NotFound is the sentinel of string queries; empty means DefaultNotFound
	NotFound string
	// FS defaults to fs.NewLocalFS()
	FS fsi.FileSystem
	// Permissions defaults to permission.NewStatQuerier()
	Permissions permission.Querier
}

// PathInspector answers metadata queries about one path at a time.
type PathInspector struct {
	path        string
	safeFetch   bool
	notFound    string
	fs          fsi.FileSystem
	permissions permission.Querier
}

// New creates a PathInspector for path
func New(path string, opts Options) *PathInspector {
	in := &PathInspector{
		path:        path,
		safeFetch:   opts.SafeFetch,
		notFound:    opts.NotFound,
		fs:          opts.FS,
		permissions: opts.Permissions,
	}
	if in.notFound == "" {
		in.notFound = DefaultNotFound
	}
	if in.fs == nil {
		in.fs = fsi.NewLocalFS()
	}
	if in.permissions == nil {
		in.permissions = permission.NewStatQuerier()
	}
	return in
}

// Path returns the path under inspection
func (in *PathInspector) Path() string {
	return in.path
}

// SetPath points the inspector at another path; the next query resolves it
func (in *PathInspector) SetPath(path string) {
	in.path = path
}

// SafeFetch tells whether missing paths yield sentinels instead of errors
func (in *PathInspector) SafeFetch() bool {
	return in.safeFetch
}

// SetSafeFetch switches between safe-fetch and failing mode
func (in *PathInspector) SetSafeFetch(safeFetch bool) {
	in.safeFetch = safeFetch
}

// NotFound returns the sentinel of string queries
func (in *PathInspector) NotFound() string {
	return in.notFound
}

// missing is the existence guard: true only in safe-fetch mode for a path that
// doesn't resolve right now (absent, or a dangling or looping symlink).
// Other stat failures are left for the query to report.
func (in *PathInspector) missing() bool {
	if !in.safeFetch {
		return false
	}
	_, err := in.fs.Stat(in.path)
	return fsi.IsUnresolvable(err)
}

func (in *PathInspector) stat() (fsi.FileInfo, error) {
	fi, err := in.fs.Stat(in.path)
	if err != nil {
		return fsi.FileInfo{}, fmt.Errorf("couldn't stat %s: %w", in.path, err)
	}
	return fi, nil
}

// Size returns the byte length of a file, or the sum of the lengths of all
// regular files under a directory (0 when empty).
func (in *PathInspector) Size() (int64, error) {
	if in.missing() {
		return -1, nil
	}
	fi, err := in.stat()
	if err != nil {
		return 0, err
	}
	if !fi.IsDir {
		return fi.Size, nil
	}
	entries, err := in.fs.Walk(in.path)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, e := range entries {
		if e.IsRegular {
			total += e.Size
		}
	}
	return total, nil
}

// Owner returns the name of the user owning the path
func (in *PathInspector) Owner() (string, error) {
	if in.missing() {
		return in.notFound, nil
	}
	owner, err := in.fs.Owner(in.path)
	if err != nil {
		return "", fmt.Errorf("couldn't get owner of %s: %w", in.path, err)
	}
	return owner, nil
}
