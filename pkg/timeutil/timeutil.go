package timeutil

import (
	"strconv"
	"strings"
)

// ParseClock converts an "H:MM" or "HH:MM" clock string into minutes since
// midnight. Malformed segments are treated as zero so that report generation
// degrades instead of failing on dirty data.
func ParseClock(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	parts := strings.SplitN(s, ":", 2)
	hours := atoiOrZero(parts[0])
	minutes := 0
	if len(parts) == 2 {
		minutes = atoiOrZero(parts[1])
	}
	return hours*60 + minutes
}

// Duration returns the minute span between two clock strings, clamped to zero
// when the end does not come after the start.
func Duration(start, end string) int {
	d := ParseClock(end) - ParseClock(start)
	if d < 0 {
		return 0
	}
	return d
}

// Overlaps reports whether two half-open minute intervals intersect. Intervals
// that merely touch at a boundary do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	lo := aStart
	if bStart > lo {
		lo = bStart
	}
	hi := aEnd
	if bEnd < hi {
		hi = bEnd
	}
	return lo < hi
}

func atoiOrZero(raw string) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < 0 {
		return 0
	}
	return value
}
