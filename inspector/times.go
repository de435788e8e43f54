package inspector

import (
	"time"

	"github.com/m-manu/fsinspect/entity"
	fsi "github.com/m-manu/fsinspect/fs"
)

// LastModified formats the modification time in the local time zone
func (in *PathInspector) LastModified(g entity.DateTimeGranularity) (string, error) {
	return in.formatTime(g, func(fi fsi.FileInfo) time.Time { return fi.ModTime })
}

// Created formats the creation (birth) time in the local time zone.
// Platforms without birth times report the modification time.
func (in *PathInspector) Created(g entity.DateTimeGranularity) (string, error) {
	return in.formatTime(g, func(fi fsi.FileInfo) time.Time { return fi.CreateTime })
}

// LastAccessed formats the access time in the local time zone
func (in *PathInspector) LastAccessed(g entity.DateTimeGranularity) (string, error) {
	return in.formatTime(g, func(fi fsi.FileInfo) time.Time { return fi.AccessTime })
}

func (in *PathInspector) formatTime(g entity.DateTimeGranularity, pick func(fsi.FileInfo) time.Time) (string, error) {
	if in.missing() {
		return in.notFound, nil
	}
	fi, err := in.stat()
	if err != nil {
		return "", err
	}
	return g.Format(pick(fi)), nil
}
