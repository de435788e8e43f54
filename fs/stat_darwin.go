//go:build darwin

package fs

import (
	"time"

	"golang.org/x/sys/unix"
)

const ownerLookupSupported = true

func fillPlatformStat(path string, fi *FileInfo) error {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return &PathError{Op: "stat", Path: path, Err: err}
	}
	fi.UID = st.Uid
	fi.AccessTime = time.Unix(st.Atim.Unix())
	fi.CreateTime = time.Unix(st.Btim.Unix())
	return nil
}
