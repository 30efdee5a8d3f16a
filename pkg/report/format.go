package report

import (
	"fmt"
	"strings"
)

var byteUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// Bytes formats a raw byte count using binary units up to PB, whole
// numbers for plain bytes and one decimal place beyond. Zero renders as
// "0 B".
func Bytes(n uint64) string {
	if n == 0 {
		return "0 B"
	}
	size := float64(n)
	unit := 0
	for size >= 1024 && unit < len(byteUnits)-1 {
		size /= 1024
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%d %s", n, byteUnits[0])
	}
	return fmt.Sprintf("%.1f %s", size, byteUnits[unit])
}

// KiloBytes formats a kB count the same way but renders zero as a bare
// "0" and stops at TB. meminfo and diskls have always disagreed on the
// zero form; both behaviors are kept rather than unified.
func KiloBytes(kb uint64) string {
	if kb == 0 {
		return "0"
	}
	size := float64(kb) * 1024
	unit := 0
	for size >= 1024 && unit < 4 {
		size /= 1024
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%d %s", uint64(size), byteUnits[0])
	}
	return fmt.Sprintf("%.1f %s", size, byteUnits[unit])
}

// Frequency renders a MHz value, switching to "X.Y GHz" at 1000 MHz.
// The decimal digit comes from the MHz remainder divided by 100.
func Frequency(mhz float64) string {
	if mhz >= 1000 {
		return fmt.Sprintf("%d.%d GHz", int(mhz/1000), int(mhz)%1000/100)
	}
	return fmt.Sprintf("%d MHz", int(mhz))
}

// Duration decomposes seconds into days, hours, minutes and seconds,
// dropping leading zero units and pluralizing each label by value.
func Duration(seconds uint64) string {
	days := seconds / 86400
	hours := seconds % 86400 / 3600
	minutes := seconds % 3600 / 60
	secs := seconds % 60

	var b strings.Builder
	if days > 0 {
		fmt.Fprintf(&b, "%d day%s, ", days, plural(days))
	}
	if hours > 0 || days > 0 {
		fmt.Fprintf(&b, "%d hour%s, ", hours, plural(hours))
	}
	if minutes > 0 || hours > 0 || days > 0 {
		fmt.Fprintf(&b, "%d minute%s, ", minutes, plural(minutes))
	}
	fmt.Fprintf(&b, "%d second%s", secs, plural(secs))
	return b.String()
}

func plural(n uint64) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// Percent returns used/total*100, or 0 when total is zero.
func Percent(used, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(used) / float64(total) * 100
}

// Truncate shortens s to at most max runes of the original text,
// appending an ellipsis when anything was cut.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
