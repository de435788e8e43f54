package entity

import (
	"fmt"
	"strings"
)

// Report is the aggregate description of a single path
type Report struct {
	Path              string `yaml:"path"`
	Size              int64  `yaml:"size"`
	Modified          string `yaml:"modified"`
	Created           string `yaml:"created"`
	Accessed          string `yaml:"accessed"`
	Owner             string `yaml:"owner"`
	Permission        string `yaml:"permission"`
	PermissionNumeric string `yaml:"permission_numeric"`
	Type              string `yaml:"type"`
}

func (r Report) String() string {
	var sb strings.Builder
	sb.Grow(256)
	sb.WriteString(fmt.Sprintf("Path: %s\n", r.Path))
	sb.WriteString(fmt.Sprintf("Size: %d\n", r.Size))
	sb.WriteString(fmt.Sprintf("Modify time: %s\n", r.Modified))
	sb.WriteString(fmt.Sprintf("Creation time: %s\n", r.Created))
	sb.WriteString(fmt.Sprintf("Access time: %s\n", r.Accessed))
	sb.WriteString(fmt.Sprintf("Owner: %s\n", r.Owner))
	sb.WriteString(fmt.Sprintf("Permission: %s (%s)\n", r.Permission, r.PermissionNumeric))
	sb.WriteString(fmt.Sprintf("Type: %s\n", r.Type))
	return sb.String()
}
