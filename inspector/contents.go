package inspector

import (
	"fmt"

	"github.com/m-manu/fsinspect/entity"
	fsi "github.com/m-manu/fsinspect/fs"
)

// children returns the immediate children that still exist, with their kind
func (in *PathInspector) children() (paths []string, isDir []bool, err error) {
	listed, err := in.fs.ReadDir(in.path)
	if err != nil {
		return nil, nil, fmt.Errorf("couldn't list %s: %w", in.path, err)
	}
	paths = make([]string, 0, len(listed))
	isDir = make([]bool, 0, len(listed))
	for _, child := range listed {
		fi, statErr := in.fs.Stat(child)
		if fsi.IsUnresolvable(statErr) {
			// removed since listing, or a dangling or looping symlink
			continue
		}
		if statErr != nil {
			return nil, nil, fmt.Errorf("couldn't stat %s: %w", child, statErr)
		}
		paths = append(paths, child)
		isDir = append(isDir, fi.IsDir)
	}
	return paths, isDir, nil
}

// CountImmediate counts the direct children of a directory matching t.
// A path that is not a directory counts as 1.
func (in *PathInspector) CountImmediate(t entity.ContentType) (int64, error) {
	if in.missing() {
		return -1, nil
	}
	fi, err := in.stat()
	if err != nil {
		return 0, err
	}
	if !fi.IsDir {
		return 1, nil
	}
	_, isDir, err := in.children()
	if err != nil {
		return 0, err
	}
	var count int64
	for _, d := range isDir {
		if t.Matches(d) {
			count++
		}
	}
	return count, nil
}

// CountRecursive counts the whole subtree of a directory, excluding the directory itself.
// For t == ContentFile only regular files count. A path that is not a directory counts as 1.
func (in *PathInspector) CountRecursive(t entity.ContentType) (int64, error) {
	if in.missing() {
		return -1, nil
	}
	fi, err := in.stat()
	if err != nil {
		return 0, err
	}
	if !fi.IsDir {
		return 1, nil
	}
	entries, err := in.fs.Walk(in.path)
	if err != nil {
		return 0, err
	}
	var count int64
	for _, e := range entries {
		switch t {
		case entity.ContentFile:
			if e.IsRegular {
				count++
			}
		case entity.ContentFolder:
			if e.IsDir {
				count++
			}
		default:
			count++
		}
	}
	if t != entity.ContentFile {
		count-- // the root
	}
	return count, nil
}

// ListImmediate returns the direct children of a directory matching t, in no
// particular order. It is empty for anything but a directory.
func (in *PathInspector) ListImmediate(t entity.ContentType) ([]string, error) {
	isDirectory, err := in.isListable()
	if err != nil || !isDirectory {
		return []string{}, err
	}
	paths, isDir, err := in.children()
	if err != nil {
		return []string{}, err
	}
	listing := make([]string, 0, len(paths))
	for i, p := range paths {
		if t.Matches(isDir[i]) {
			listing = append(listing, p)
		}
	}
	return listing, nil
}

// ListSubtree returns every path of a directory's subtree matching t, in no
// particular order. Unlike CountRecursive, the directory itself is included
// for ContentAll and ContentFolder. It is empty for anything but a directory.
func (in *PathInspector) ListSubtree(t entity.ContentType) ([]string, error) {
	isDirectory, err := in.isListable()
	if err != nil || !isDirectory {
		return []string{}, err
	}
	entries, err := in.fs.Walk(in.path)
	if err != nil {
		return []string{}, err
	}
	listing := make([]string, 0, len(entries))
	for _, e := range entries {
		if t.Matches(e.IsDir) {
			listing = append(listing, e.Path)
		}
	}
	return listing, nil
}

// isListable is false (without error) for safe-fetch misses and non-directories
func (in *PathInspector) isListable() (bool, error) {
	if in.missing() {
		return false, nil
	}
	fi, err := in.stat()
	if err != nil {
		return false, err
	}
	return fi.IsDir, nil
}
