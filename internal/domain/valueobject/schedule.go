// Package valueobject contains domain value objects for the Barber Manager system.
package valueobject

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DayLabelLayout is the wall-clock day format used across the application.
const DayLabelLayout = "02/01/2006"

// scheduleSeparator joins the time component and the client name in a
// schedule label.
const scheduleSeparator = " - "

// summarySeparator joins the service list and the barber name in a service
// summary ("Corte, Barba com João").
const summarySeparator = " com "

var scheduleLabelPattern = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4}) às (\d{2}):(\d{2})`)

var dayLabelPattern = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)

// ParseScheduleLabel extracts the schedule instant and client name from a
// canonical label of the form "DD/MM/YYYY às HH:MM - <client>".
// Unparseable input yields the zero time sentinel and an empty client; it
// never returns an error so that malformed labels degrade to an "invalid
// instant" instead of failing the whole view.
func ParseScheduleLabel(label string) (time.Time, string) {
	m := scheduleLabelPattern.FindStringSubmatch(label)
	if m == nil {
		return time.Time{}, ""
	}

	instant, err := time.ParseInLocation("02/01/2006 15:04", fmt.Sprintf("%s/%s/%s %s:%s", m[1], m[2], m[3], m[4], m[5]), time.Local)
	if err != nil {
		return time.Time{}, ""
	}

	client := ""
	if idx := strings.Index(label, scheduleSeparator); idx >= 0 {
		client = strings.TrimSpace(label[idx+len(scheduleSeparator):])
	}

	return instant, client
}

// FormatScheduleLabel renders the canonical schedule label. It is the exact
// inverse of ParseScheduleLabel for the labels it produces.
func FormatScheduleLabel(instant time.Time, client string) string {
	return fmt.Sprintf("%s às %s%s%s", instant.Format(DayLabelLayout), instant.Format("15:04"), scheduleSeparator, client)
}

// ParseDayLabel extracts a comparable date from a "DD/MM/YYYY" label.
// Unparseable input yields the zero time sentinel.
func ParseDayLabel(label string) time.Time {
	if !dayLabelPattern.MatchString(label) {
		return time.Time{}
	}

	day, err := time.ParseInLocation(DayLabelLayout, label, time.Local)
	if err != nil {
		return time.Time{}
	}
	return day
}

// FormatDayLabel renders a day-granularity "DD/MM/YYYY" label.
func FormatDayLabel(day time.Time) string {
	return day.Format(DayLabelLayout)
}

// FormatServiceSummary renders the "<services> com <barber>" summary string
// used as the appointment's display detail.
func FormatServiceSummary(serviceDescriptions []string, barber string) string {
	return strings.Join(serviceDescriptions, ", ") + summarySeparator + barber
}

// ParseServiceSummary splits a service summary at the first barber-attribution
// separator, returning the service list text and the barber name. A summary
// without the separator yields the whole text as the service part and an
// empty barber.
func ParseServiceSummary(summary string) (services, barber string) {
	idx := strings.Index(summary, summarySeparator)
	if idx < 0 {
		return summary, ""
	}
	return summary[:idx], summary[idx+len(summarySeparator):]
}
