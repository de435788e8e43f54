package fs

import (
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
)

// LocalFS implements FileSystem using standard os.* calls and the platform stat.
type LocalFS struct{}

// NewLocalFS returns a new LocalFS.
func NewLocalFS() *LocalFS {
	return &LocalFS{}
}

func (l *LocalFS) Stat(path string) (FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, err
	}
	fi := FileInfo{
		Name:       info.Name(),
		Size:       info.Size(),
		Mode:       info.Mode(),
		IsDir:      info.IsDir(),
		ModTime:    info.ModTime(),
		AccessTime: info.ModTime(),
		CreateTime: info.ModTime(),
	}
	if err := fillPlatformStat(path, &fi); err != nil {
		return FileInfo{}, err
	}
	return fi, nil
}

func (l *LocalFS) ReadDir(dirPath string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}
	children := make([]string, len(entries))
	for i, e := range entries {
		children[i] = filepath.Join(dirPath, e.Name())
	}
	return children, nil
}

func (l *LocalFS) Walk(root string) ([]DirEntry, error) {
	walkRoot := root
	if info, err := os.Lstat(root); err == nil && info.Mode()&fs.ModeSymlink != 0 {
		if target, err := os.Stat(root); err == nil && target.IsDir() {
			// A trailing separator makes WalkDir descend into the link target
			walkRoot = root + string(filepath.Separator)
		}
	}
	entries := make([]DirEntry, 0, 1_000)
	err := filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		entry := DirEntry{
			Path:      path,
			IsDir:     d.IsDir(),
			IsRegular: d.Type().IsRegular(),
		}
		if d.Type()&fs.ModeSymlink != 0 {
			// Dangling links stay neither a file nor a directory
			if target, statErr := os.Stat(path); statErr == nil {
				entry.IsDir = target.IsDir()
				entry.IsRegular = target.Mode().IsRegular()
				if entry.IsRegular {
					entry.Size = target.Size()
				}
			}
		} else if entry.IsRegular {
			info, infoErr := d.Info()
			if infoErr != nil {
				return infoErr
			}
			entry.Size = info.Size()
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("couldn't walk %s: %w", root, err)
	}
	if len(entries) > 0 {
		entries[0].Path = root
	}
	return entries, nil
}

func (l *LocalFS) Owner(path string) (string, error) {
	fi, err := l.Stat(path)
	if err != nil {
		return "", err
	}
	if !ownerLookupSupported {
		return "", ErrOwnerUnsupported
	}
	return lookupUserName(fi.UID), nil
}

func (l *LocalFS) Close() error {
	return nil
}

// lookupUserName falls back to the numeric uid when the user database has no entry
func lookupUserName(uid uint32) string {
	id := strconv.FormatUint(uint64(uid), 10)
	u, err := user.LookupId(id)
	if err != nil {
		return id
	}
	return u.Username
}
