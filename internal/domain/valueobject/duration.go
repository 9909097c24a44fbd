// Package valueobject contains domain value objects for the Barber Manager system.
package valueobject

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	durationHoursPattern   = regexp.MustCompile(`(\d+)h`)
	durationMinutesPattern = regexp.MustCompile(`(\d+)min`)
)

// ParseDurationText converts a "<H>h <M>min" duration text into total
// minutes. Either component may be absent ("45min", "1h"). Text with neither
// component normalizes to zero, the lenient fallback shared with ParseAmount.
func ParseDurationText(text string) int {
	total := 0
	if m := durationHoursPattern.FindStringSubmatch(text); m != nil {
		hours, _ := strconv.Atoi(m[1])
		total += hours * 60
	}
	if m := durationMinutesPattern.FindStringSubmatch(text); m != nil {
		minutes, _ := strconv.Atoi(m[1])
		total += minutes
	}
	return total
}

// FormatDurationMinutes renders total minutes as "<H>h <M>min", renormalized
// so the minutes component stays within [0,59].
func FormatDurationMinutes(totalMinutes int) string {
	if totalMinutes < 0 {
		totalMinutes = 0
	}
	return fmt.Sprintf("%dh %dmin", totalMinutes/60, totalMinutes%60)
}
