// Package permission reads POSIX permission strings of a path and slices them by scope.
package permission

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m-manu/fsinspect/entity"
)

// Querier produces the raw permission string of a path: octal digits ("755")
// when numeric is true, otherwise the symbolic form ("drwxr-xr-x").
type Querier interface {
	QueryPermissionString(path string, numeric bool) (string, error)
}

// ErrMalformed is returned by Slice for a symbolic string too short for the scope
// or a numeric string that is not octal digits
var ErrMalformed = errors.New("malformed permission string")

// Slice extracts the portion of raw selected by scope.
// Numeric strings are zero-padded to three digits ("44" is 044) and then use
// their last three digits, so a setuid "4755" yields 7/5/5 rather than the
// leading 4/7/5 a positional read of the first three characters would give.
// Symbolic strings use their last nine characters, skipping the type indicator.
func Slice(raw string, scope entity.PermissionScope, numeric bool) (string, error) {
	raw = strings.TrimSpace(raw)
	if scope == entity.ScopeAll {
		return raw, nil
	}
	width := 1
	if numeric {
		if raw == "" || strings.Trim(raw, "01234567") != "" {
			return "", fmt.Errorf("%w: %q", ErrMalformed, raw)
		}
		if len(raw) < 3 {
			raw = strings.Repeat("0", 3-len(raw)) + raw
		}
	} else {
		width = 3
	}
	bits := 3 * width
	if len(raw) < bits {
		return "", fmt.Errorf("%w: %q", ErrMalformed, raw)
	}
	tail := raw[len(raw)-bits:]
	var idx int
	switch scope {
	case entity.ScopeOwner:
		idx = 0
	case entity.ScopeGroup:
		idx = 1
	case entity.ScopeOthers:
		idx = 2
	default:
		return "", fmt.Errorf("unknown permission scope %v", scope)
	}
	return tail[idx*width : (idx+1)*width], nil
}
