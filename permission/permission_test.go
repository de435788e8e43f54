package permission

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/m-manu/fsinspect/entity"
	fsi "github.com/m-manu/fsinspect/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceNumeric(t *testing.T) {
	tests := []struct {
		raw      string
		scope    entity.PermissionScope
		expected string
	}{
		{"755", entity.ScopeAll, "755"},
		{"755", entity.ScopeOwner, "7"},
		{"755", entity.ScopeGroup, "5"},
		{"640", entity.ScopeOthers, "0"},
		{"4755", entity.ScopeOwner, "7"},
		{"4755", entity.ScopeAll, "4755"},
		{"644\n", entity.ScopeAll, "644"},
		{"44", entity.ScopeOwner, "0"},
		{"44", entity.ScopeGroup, "4"},
		{"44", entity.ScopeOthers, "4"},
		{"0", entity.ScopeOwner, "0"},
		{"0", entity.ScopeOthers, "0"},
		{"7", entity.ScopeOthers, "7"},
	}
	for _, tt := range tests {
		actual, err := Slice(tt.raw, tt.scope, true)
		assert.NoError(t, err, "raw: %q scope: %v", tt.raw, tt.scope)
		assert.Equal(t, tt.expected, actual, "raw: %q scope: %v", tt.raw, tt.scope)
	}
}

func TestSliceSymbolic(t *testing.T) {
	tests := []struct {
		raw      string
		scope    entity.PermissionScope
		expected string
	}{
		{"drwxr-xr-x", entity.ScopeAll, "drwxr-xr-x"},
		{"drwxr-xr-x", entity.ScopeOwner, "rwx"},
		{"-rw-r-----", entity.ScopeGroup, "r--"},
		{"-rw-r---w-", entity.ScopeOthers, "-w-"},
		{"rwxr-x---", entity.ScopeOwner, "rwx"},
		{"rwxr-x---", entity.ScopeOthers, "---"},
	}
	for _, tt := range tests {
		actual, err := Slice(tt.raw, tt.scope, false)
		assert.NoError(t, err, "raw: %q scope: %v", tt.raw, tt.scope)
		assert.Equal(t, tt.expected, actual, "raw: %q scope: %v", tt.raw, tt.scope)
	}
}

func TestSliceMalformed(t *testing.T) {
	_, err := Slice("", entity.ScopeOwner, true)
	assert.True(t, errors.Is(err, ErrMalformed))
	_, err = Slice("rwx", entity.ScopeOwner, true)
	assert.True(t, errors.Is(err, ErrMalformed))
	_, err = Slice("rwx", entity.ScopeGroup, false)
	assert.True(t, errors.Is(err, ErrMalformed))
}

func TestModeFormats(t *testing.T) {
	assert.Equal(t, "755", Numeric(fs.ModeDir|0755))
	assert.Equal(t, "drwxr-xr-x", Symbolic(fs.ModeDir|0755))
	assert.Equal(t, "644", Numeric(0644))
	assert.Equal(t, "-rw-r--r--", Symbolic(0644))
	assert.Equal(t, "4755", Numeric(fs.ModeSetuid|0755))
	assert.Equal(t, "-rwsr-xr-x", Symbolic(fs.ModeSetuid|0755))
	assert.Equal(t, "1777", Numeric(fs.ModeDir|fs.ModeSticky|0777))
	assert.Equal(t, "drwxrwxrwt", Symbolic(fs.ModeDir|fs.ModeSticky|0777))
	assert.Equal(t, "-rwSr--r--", Symbolic(fs.ModeSetuid|0644))
	assert.Equal(t, "lrwxrwxrwx", Symbolic(fs.ModeSymlink|0777))
	assert.Equal(t, "044", Numeric(0044))
	assert.Equal(t, "000", Numeric(0))
	assert.Equal(t, "----r--r--", Symbolic(0044))
}

func TestUnpaddedModeSlicesPerScope(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX modes only")
	}
	file := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0600))
	require.NoError(t, os.Chmod(file, 0044))

	queriers := map[string]Querier{"mode": NewModeQuerier(fsi.NewLocalFS())}
	if _, err := exec.LookPath("stat"); err == nil && runtime.GOOS == "linux" {
		queriers["stat"] = NewStatQuerier()
	}
	for name, q := range queriers {
		raw, err := q.QueryPermissionString(file, true)
		require.NoError(t, err, name)
		for scope, expected := range map[entity.PermissionScope]string{
			entity.ScopeOwner:  "0",
			entity.ScopeGroup:  "4",
			entity.ScopeOthers: "4",
		} {
			actual, err := Slice(raw, scope, true)
			assert.NoError(t, err, "%s raw: %q", name, raw)
			assert.Equal(t, expected, actual, "%s raw: %q", name, raw)
		}
	}
}

func TestModeQuerier(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX modes only")
	}
	file := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0600))
	require.NoError(t, os.Chmod(file, 0640))

	q := NewModeQuerier(fsi.NewLocalFS())
	numeric, err := q.QueryPermissionString(file, true)
	require.NoError(t, err)
	assert.Equal(t, "640", numeric)
	symbolic, err := q.QueryPermissionString(file, false)
	require.NoError(t, err)
	assert.Equal(t, "-rw-r-----", symbolic)

	_, err = q.QueryPermissionString(file+".missing", true)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func fakeCommand(name string, args ...string) CommandFunc {
	return func(ctx context.Context, path string, format string) *exec.Cmd {
		return exec.CommandContext(ctx, name, args...)
	}
}

func TestStatQuerierReadsFirstLine(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs printf")
	}
	q := &StatQuerier{Command: fakeCommand("printf", "750\\nextra\\n")}
	raw, err := q.QueryPermissionString("/whatever", true)
	require.NoError(t, err)
	assert.Equal(t, "750", raw)
}

func TestStatQuerierFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs false")
	}
	q := &StatQuerier{Command: fakeCommand("false")}
	_, err := q.QueryPermissionString("/whatever", true)
	assert.Error(t, err)

	q = &StatQuerier{Command: fakeCommand("/definitely/not/a/binary")}
	_, err = q.QueryPermissionString("/whatever", false)
	assert.Error(t, err)
}

func TestStatQuerierTimeout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs sleep")
	}
	q := &StatQuerier{Command: fakeCommand("sleep", "5"), Timeout: 50 * time.Millisecond}
	start := time.Now()
	_, err := q.QueryPermissionString("/whatever", true)
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestLocalStat(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("GNU stat expected")
	}
	if _, err := exec.LookPath("stat"); err != nil {
		t.Skip("stat not installed")
	}
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0750))
	q := NewStatQuerier()

	numeric, err := q.QueryPermissionString(dir, true)
	require.NoError(t, err)
	assert.Equal(t, "750", numeric)
	symbolic, err := q.QueryPermissionString(dir, false)
	require.NoError(t, err)
	assert.Equal(t, "drwxr-x---", symbolic)
}
