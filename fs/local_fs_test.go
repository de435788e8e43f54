package fs

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0644))
}

func TestLocalFSStat(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	writeFile(t, file, 42)
	stamp := time.Date(2020, time.January, 2, 3, 4, 5, 0, time.Local)
	require.NoError(t, os.Chtimes(file, stamp, stamp))

	fi, err := NewLocalFS().Stat(file)
	require.NoError(t, err)
	assert.Equal(t, "a.txt", fi.Name)
	assert.Equal(t, int64(42), fi.Size)
	assert.False(t, fi.IsDir)
	assert.True(t, fi.IsRegular())
	assert.True(t, fi.ModTime.Equal(stamp))
	assert.False(t, fi.CreateTime.IsZero())
	if runtime.GOOS == "linux" || runtime.GOOS == "darwin" {
		assert.True(t, fi.AccessTime.Equal(stamp))
		assert.Equal(t, uint32(os.Getuid()), fi.UID)
	}
}

func TestLocalFSStatMissing(t *testing.T) {
	_, err := NewLocalFS().Stat(filepath.Join(t.TempDir(), "nope"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLocalFSReadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "one"), 1)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	children, err := NewLocalFS().ReadDir(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{filepath.Join(dir, "one"), filepath.Join(dir, "sub")}, children)
}

func TestLocalFSWalk(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.bin"), 10)
	writeFile(t, filepath.Join(dir, "x", "y", "b.bin"), 20)

	entries, err := NewLocalFS().Walk(dir)
	require.NoError(t, err)
	byPath := make(map[string]DirEntry, len(entries))
	for _, e := range entries {
		byPath[e.Path] = e
	}
	assert.Len(t, byPath, 5)
	assert.True(t, byPath[dir].IsDir)
	assert.True(t, byPath[filepath.Join(dir, "x", "y")].IsDir)
	assert.Equal(t, int64(10), byPath[filepath.Join(dir, "a.bin")].Size)
	assert.True(t, byPath[filepath.Join(dir, "x", "y", "b.bin")].IsRegular)
	assert.Equal(t, int64(20), byPath[filepath.Join(dir, "x", "y", "b.bin")].Size)
}

func TestLocalFSWalkSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	dir := t.TempDir()
	target := filepath.Join(t.TempDir(), "target")
	writeFile(t, filepath.Join(target, "inner.bin"), 7)
	writeFile(t, filepath.Join(dir, "real.bin"), 3)
	require.NoError(t, os.Symlink(target, filepath.Join(dir, "dirlink")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "real.bin"), filepath.Join(dir, "filelink")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), filepath.Join(dir, "dangling")))

	entries, err := NewLocalFS().Walk(dir)
	require.NoError(t, err)
	byPath := make(map[string]DirEntry, len(entries))
	for _, e := range entries {
		byPath[e.Path] = e
	}
	// the linked directory is reported but not descended
	assert.Len(t, byPath, 5)
	assert.True(t, byPath[filepath.Join(dir, "dirlink")].IsDir)
	assert.True(t, byPath[filepath.Join(dir, "filelink")].IsRegular)
	assert.Equal(t, int64(3), byPath[filepath.Join(dir, "filelink")].Size)
	dangling := byPath[filepath.Join(dir, "dangling")]
	assert.False(t, dangling.IsDir)
	assert.False(t, dangling.IsRegular)
}

func TestLocalFSWalkSymlinkedRoot(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	target := filepath.Join(t.TempDir(), "target")
	writeFile(t, filepath.Join(target, "inner.bin"), 7)
	link := filepath.Join(t.TempDir(), "link")
	require.NoError(t, os.Symlink(target, link))

	entries, err := NewLocalFS().Walk(link)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, link, entries[0].Path)
	assert.True(t, entries[0].IsDir)
	assert.Equal(t, filepath.Join(link, "inner.bin"), entries[1].Path)
	assert.Equal(t, int64(7), entries[1].Size)
}

func TestLocalFSOwner(t *testing.T) {
	if !ownerLookupSupported {
		t.Skip("no POSIX ownership on " + runtime.GOOS)
	}
	dir := t.TempDir()
	owner, err := NewLocalFS().Owner(dir)
	require.NoError(t, err)
	assert.NotEmpty(t, owner)

	_, err = NewLocalFS().Owner(filepath.Join(dir, "missing"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
