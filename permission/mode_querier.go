package permission

import (
	"fmt"
	"io/fs"

	fsi "github.com/m-manu/fsinspect/fs"
)

// ModeQuerier derives permission strings from the mode bits a FileSystem reports,
// for hosts where no stat(1) binary understands "-c".
type ModeQuerier struct {
	FS fsi.FileSystem
}

// NewModeQuerier returns a ModeQuerier reading modes through fsys
func NewModeQuerier(fsys fsi.FileSystem) *ModeQuerier {
	return &ModeQuerier{FS: fsys}
}

func (q *ModeQuerier) QueryPermissionString(path string, numeric bool) (string, error) {
	fi, err := q.FS.Stat(path)
	if err != nil {
		return "", err
	}
	if numeric {
		return Numeric(fi.Mode), nil
	}
	return Symbolic(fi.Mode), nil
}

// Numeric formats the permission bits as octal, like "stat -c %a" but always
// with at least three digits. Special bits (setuid, setgid, sticky) add a leading digit.
func Numeric(mode fs.FileMode) string {
	bits := uint32(mode.Perm())
	if mode&fs.ModeSetuid != 0 {
		bits |= 0o4000
	}
	if mode&fs.ModeSetgid != 0 {
		bits |= 0o2000
	}
	if mode&fs.ModeSticky != 0 {
		bits |= 0o1000
	}
	return fmt.Sprintf("%03o", bits)
}

// Symbolic formats the mode like "stat -c %A": a type character followed by nine permission characters
func Symbolic(mode fs.FileMode) string {
	perm := []byte(mode.Perm().String()[1:])
	if mode&fs.ModeSetuid != 0 {
		perm[2] = special(perm[2], 's')
	}
	if mode&fs.ModeSetgid != 0 {
		perm[5] = special(perm[5], 's')
	}
	if mode&fs.ModeSticky != 0 {
		perm[8] = special(perm[8], 't')
	}
	return string(typeChar(mode)) + string(perm)
}

func special(execBit byte, letter byte) byte {
	if execBit == 'x' {
		return letter
	}
	return letter - 'a' + 'A'
}

func typeChar(mode fs.FileMode) byte {
	switch {
	case mode.IsDir():
		return 'd'
	case mode&fs.ModeSymlink != 0:
		return 'l'
	case mode&fs.ModeNamedPipe != 0:
		return 'p'
	case mode&fs.ModeSocket != 0:
		return 's'
	case mode&fs.ModeCharDevice != 0:
		return 'c'
	case mode&fs.ModeDevice != 0:
		return 'b'
	}
	return '-'
}
