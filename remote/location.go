package remote

import (
	"fmt"
	"strconv"
	"strings"
)

// Location is the target of an inspection: a local path or [user@]host[:port]:path.
type Location struct {
	IsRemote bool
	User     string // empty = current user
	Host     string
	Port     int // 0 = ssh default
	Path     string
}

// ParseLocation parses a CLI argument into a Location.
//
// Rules:
//   - Starts with "/", "./", "../" or "~" → local
//   - Contains ":" before any "/" → remote ([user@]host:path or [user@]host:port:path)
//   - Everything else → local
func ParseLocation(arg string) (Location, error) {
	if arg == "" {
		return Location{}, fmt.Errorf("empty path argument")
	}
	if strings.HasPrefix(arg, "/") || strings.HasPrefix(arg, "./") ||
		strings.HasPrefix(arg, "../") || strings.HasPrefix(arg, "~") {
		return Location{Path: arg}, nil
	}
	colonIdx := strings.Index(arg, ":")
	if colonIdx < 0 || strings.Contains(arg[:colonIdx], "/") {
		// "dir/a:b" is a local file name containing a colon
		return Location{Path: arg}, nil
	}

	hostPart, rest := arg[:colonIdx], arg[colonIdx+1:]
	loc := Location{IsRemote: true, Host: hostPart}
	if atIdx := strings.LastIndex(hostPart, "@"); atIdx >= 0 {
		loc.User = hostPart[:atIdx]
		loc.Host = hostPart[atIdx+1:]
	}
	if loc.Host == "" {
		return Location{}, fmt.Errorf("empty host in remote path %q", arg)
	}

	if portEnd := strings.Index(rest, ":"); portEnd > 0 {
		if port, err := strconv.Atoi(rest[:portEnd]); err == nil {
			if port <= 0 || port > 65535 {
				return Location{}, fmt.Errorf("invalid port %d in remote path %q", port, arg)
			}
			loc.Port = port
			rest = rest[portEnd+1:]
		}
	}
	if rest == "" {
		return Location{}, fmt.Errorf("empty path in remote spec %q", arg)
	}
	loc.Path = rest
	return loc, nil
}

// SSHSpec returns "user@host" or "host", suitable for display and ssh commands.
func (l Location) SSHSpec() string {
	if l.User != "" {
		return l.User + "@" + l.Host
	}
	return l.Host
}

func (l Location) String() string {
	if !l.IsRemote {
		return l.Path
	}
	if l.Port != 0 {
		return fmt.Sprintf("%s:%d:%s", l.SSHSpec(), l.Port, l.Path)
	}
	return l.SSHSpec() + ":" + l.Path
}
