package entity

import (
	"fmt"
	"strings"
	"time"
)

// DateTimeGranularity selects the precision of a formatted timestamp
type DateTimeGranularity int8

const (
	GranularityDate DateTimeGranularity = iota
	GranularityTime
	GranularityDateTime
)

const (
	dateLayout     = "2006-01-02"
	timeLayout     = "15:04:05"
	dateTimeLayout = dateLayout + " " + timeLayout
)

// Layout returns the time.Format layout for this granularity
func (g DateTimeGranularity) Layout() string {
	switch g {
	case GranularityDate:
		return dateLayout
	case GranularityTime:
		return timeLayout
	}
	return dateTimeLayout
}

// Format renders t in the local time zone
func (g DateTimeGranularity) Format(t time.Time) string {
	return t.Local().Format(g.Layout())
}

func (g DateTimeGranularity) String() string {
	switch g {
	case GranularityDate:
		return "date"
	case GranularityTime:
		return "time"
	case GranularityDateTime:
		return "datetime"
	}
	return fmt.Sprintf("DateTimeGranularity(%d)", int8(g))
}

// ParseGranularity parses "date", "time" or "datetime"
func ParseGranularity(s string) (DateTimeGranularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "date":
		return GranularityDate, nil
	case "time":
		return GranularityTime, nil
	case "datetime", "date-time", "":
		return GranularityDateTime, nil
	}
	return GranularityDateTime, fmt.Errorf("unknown granularity %q (expected date, time or datetime)", s)
}
