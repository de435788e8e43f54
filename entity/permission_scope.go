package entity

import (
	"fmt"
	"strings"
)

// PermissionScope selects which portion of a permission string is returned
type PermissionScope int8

const (
	ScopeOwner PermissionScope = iota
	ScopeGroup
	ScopeOthers
	ScopeAll
)

func (s PermissionScope) String() string {
	switch s {
	case ScopeOwner:
		return "owner"
	case ScopeGroup:
		return "group"
	case ScopeOthers:
		return "others"
	case ScopeAll:
		return "all"
	}
	return fmt.Sprintf("PermissionScope(%d)", int8(s))
}

// ParsePermissionScope parses "owner", "group", "others" or "all"
func ParsePermissionScope(s string) (PermissionScope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "owner", "user", "u":
		return ScopeOwner, nil
	case "group", "g":
		return ScopeGroup, nil
	case "others", "other", "o":
		return ScopeOthers, nil
	case "all", "a", "":
		return ScopeAll, nil
	}
	return ScopeAll, fmt.Errorf("unknown permission scope %q (expected owner, group, others or all)", s)
}
