package entity

import (
	"fmt"
	"strings"
)

// ContentType filters directory entries during counting and listing
type ContentType int8

const (
	ContentFile ContentType = iota
	ContentFolder
	ContentAll
)

func (c ContentType) String() string {
	switch c {
	case ContentFile:
		return "file"
	case ContentFolder:
		return "folder"
	case ContentAll:
		return "all"
	}
	return fmt.Sprintf("ContentType(%d)", int8(c))
}

// Matches tells whether an entry of the given kind passes this filter
func (c ContentType) Matches(isDir bool) bool {
	switch c {
	case ContentFile:
		return !isDir
	case ContentFolder:
		return isDir
	}
	return true
}

// ParseContentType parses "file", "folder" or "all" (case-insensitive)
func ParseContentType(s string) (ContentType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "file", "files":
		return ContentFile, nil
	case "folder", "folders", "dir", "directory":
		return ContentFolder, nil
	case "all", "":
		return ContentAll, nil
	}
	return ContentAll, fmt.Errorf("unknown content type %q (expected file, folder or all)", s)
}
