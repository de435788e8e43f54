//go:build linux

package fs

import (
	"errors"
	"time"

	"golang.org/x/sys/unix"
)

const ownerLookupSupported = true

// fillPlatformStat reads access/birth times and the owner uid through statx,
// falling back to stat(2) on kernels without statx.
func fillPlatformStat(path string, fi *FileInfo) error {
	var stx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, path, unix.AT_STATX_SYNC_AS_STAT,
		unix.STATX_BASIC_STATS|unix.STATX_BTIME, &stx)
	if errors.Is(err, unix.ENOSYS) {
		return fillFromStat(path, fi)
	}
	if err != nil {
		return &PathError{Op: "statx", Path: path, Err: err}
	}
	fi.UID = stx.Uid
	fi.AccessTime = statxTime(stx.Atime)
	if stx.Mask&unix.STATX_BTIME != 0 {
		fi.CreateTime = statxTime(stx.Btime)
	}
	return nil
}

func fillFromStat(path string, fi *FileInfo) error {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return &PathError{Op: "stat", Path: path, Err: err}
	}
	fi.UID = st.Uid
	fi.AccessTime = time.Unix(st.Atim.Unix())
	return nil
}

func statxTime(ts unix.StatxTimestamp) time.Time {
	return time.Unix(ts.Sec, int64(ts.Nsec))
}
