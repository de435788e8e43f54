package fs

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

// ErrOwnerUnsupported is returned by Owner on platforms without POSIX ownership
var ErrOwnerUnsupported = errors.New("owner lookup is not supported on this platform")

// PathError records a failed platform stat call. It unwraps to the errno, so
// errors.Is(err, os.ErrNotExist) holds for missing paths.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// IsUnresolvable reports whether err means the path can't be resolved to
// anything: it doesn't exist, or it is a dangling or looping symlink.
func IsUnresolvable(err error) bool {
	return errors.Is(err, os.ErrNotExist) || errors.Is(err, syscall.ELOOP)
}
