package bytesutil

import "fmt"

const (
	KILO int64 = 1000        // 1000 power 1 (10 power 3)
	KIBI int64 = 1024        // 1024 power 1 (2 power 10)
	MEGA       = KILO * KILO // 1000 power 2 (10 power 6)
	MEBI       = KIBI * KIBI // 1024 power 2 (2 power 20)
	GIGA       = MEGA * KILO // 1000 power 3 (10 power 9)
	GIBI       = MEBI * KIBI // 1024 power 3 (2 power 30)
)

var (
	binaryUnits  = []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	decimalUnits = []string{"KB", "MB", "GB", "TB", "PB", "EB"}
)

// BinaryFormat renders size with 1024-based units, e.g. "2.09 KiB".
// Negative sizes (the inspector's "not found" value) render as "".
func BinaryFormat(size int64) string {
	return format(size, KIBI, binaryUnits)
}

// DecimalFormat renders size with 1000-based units, e.g. "2.14 KB"
func DecimalFormat(size int64) string {
	return format(size, KILO, decimalUnits)
}

func format(size int64, base int64, units []string) string {
	if size < 0 {
		return ""
	}
	if size < base {
		return fmt.Sprintf("%d B", size)
	}
	value := float64(size) / float64(base)
	unit := 0
	for value >= float64(base) && unit < len(units)-1 {
		value /= float64(base)
		unit++
	}
	return fmt.Sprintf("%.2f %s", value, units[unit])
}
