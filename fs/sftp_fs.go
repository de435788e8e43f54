package fs

import (
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/sftp"
)

// SFTPFS implements FileSystem over an SFTP connection.
// SFTP reports no birth time, so CreateTime is the modification time.
type SFTPFS struct {
	client *sftp.Client
}

// NewSFTPFS wraps an existing sftp.Client in a FileSystem.
func NewSFTPFS(client *sftp.Client) *SFTPFS {
	return &SFTPFS{client: client}
}

func (s *SFTPFS) Stat(p string) (FileInfo, error) {
	info, err := s.client.Stat(p)
	if err != nil {
		return FileInfo{}, err
	}
	return sftpFileInfo(info), nil
}

func (s *SFTPFS) ReadDir(dirPath string) ([]string, error) {
	infos, err := s.client.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}
	children := make([]string, 0, len(infos))
	for _, info := range infos {
		if info.Name() == "." || info.Name() == ".." {
			continue
		}
		children = append(children, path.Join(dirPath, info.Name()))
	}
	return children, nil
}

// maxLinkHops bounds symlink resolution of a walk root, like the kernel's ELOOP limit
const maxLinkHops = 40

func (s *SFTPFS) Walk(root string) ([]DirEntry, error) {
	// sftp's walker uses Lstat, so a symlinked root is walked through its target
	walkRoot := s.resolveLinks(root)
	entries := make([]DirEntry, 0, 1_000)
	walker := s.client.Walk(walkRoot)
	for walker.Step() {
		if err := walker.Err(); err != nil {
			return nil, fmt.Errorf("couldn't walk %s: %w", root, err)
		}
		info := walker.Stat()
		entryPath := walker.Path()
		if walkRoot != root {
			entryPath = path.Join(root, strings.TrimPrefix(entryPath, walkRoot))
		}
		entry := DirEntry{
			Path:      entryPath,
			IsDir:     info.IsDir(),
			IsRegular: info.Mode().IsRegular(),
		}
		if info.Mode()&fs.ModeSymlink != 0 {
			if target, statErr := s.client.Stat(walker.Path()); statErr == nil {
				info = target
				entry.IsDir = target.IsDir()
				entry.IsRegular = target.Mode().IsRegular()
			}
		}
		if entry.IsRegular {
			entry.Size = info.Size()
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// resolveLinks follows p while it is a symlink. Unresolvable links yield p itself.
func (s *SFTPFS) resolveLinks(p string) string {
	resolved := p
	for i := 0; i < maxLinkHops; i++ {
		info, err := s.client.Lstat(resolved)
		if err != nil || info.Mode()&fs.ModeSymlink == 0 {
			return resolved
		}
		target, err := s.client.ReadLink(resolved)
		if err != nil {
			return p
		}
		if !path.IsAbs(target) {
			target = path.Join(path.Dir(resolved), target)
		}
		resolved = path.Clean(target)
	}
	return p
}

// Owner returns the numeric uid: SFTP v3 carries no user names.
func (s *SFTPFS) Owner(p string) (string, error) {
	fi, err := s.Stat(p)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(uint64(fi.UID), 10), nil
}

func (s *SFTPFS) Close() error {
	return s.client.Close()
}

func sftpFileInfo(info fs.FileInfo) FileInfo {
	fi := FileInfo{
		Name:       info.Name(),
		Size:       info.Size(),
		Mode:       info.Mode(),
		IsDir:      info.IsDir(),
		ModTime:    info.ModTime(),
		AccessTime: info.ModTime(),
		CreateTime: info.ModTime(),
	}
	if stat, ok := info.Sys().(*sftp.FileStat); ok {
		fi.UID = stat.UID
		fi.AccessTime = time.Unix(int64(stat.Atime), 0)
	}
	return fi
}
