package services

import (
	"fmt"
	"time"
)

// Locale holds the display-string tables for dashboard rendering. The
// dashboard client was built against the "fr" strings below (a mix of
// French day names and English relative-time phrasing), so those exact
// values are load-bearing.
type Locale struct {
	Name string

	// Days is indexed by time.Weekday (Sunday = 0).
	Days [7]string

	Yesterday        string
	MinutesAgoFormat string
	HoursAgoFormat   string
	DaysAgoFormat    string
	DateLayout       string
}

var locales = map[string]Locale{
	"fr": {
		Name:             "fr",
		Days:             [7]string{"Dim", "Lun", "Mar", "Mer", "Jeu", "Ven", "Sam"},
		Yesterday:        "Hier",
		MinutesAgoFormat: "%d min ago",
		HoursAgoFormat:   "%d h ago",
		DaysAgoFormat:    "%d days ago",
		DateLayout:       "1/2/2006",
	},
}

// GetLocale returns the table for the given name, falling back to "fr".
func GetLocale(name string) Locale {
	if locale, ok := locales[name]; ok {
		return locale
	}
	return locales["fr"]
}

// DayAbbrev returns the 3-letter day-of-week label for a date.
func (l Locale) DayAbbrev(t time.Time) string {
	return l.Days[int(t.Weekday())]
}

// FormatRelativeTime renders an event time relative to now: minutes under
// an hour, hours under a day, "Hier" at exactly one day, day counts under
// a week, absolute date beyond that.
func (l Locale) FormatRelativeTime(t, now time.Time) string {
	diff := now.Sub(t)
	mins := int(diff.Minutes())
	hours := int(diff.Hours())
	days := int(diff.Hours() / 24)

	switch {
	case mins < 60:
		return fmt.Sprintf(l.MinutesAgoFormat, mins)
	case hours < 24:
		return fmt.Sprintf(l.HoursAgoFormat, hours)
	case days == 1:
		return l.Yesterday
	case days < 7:
		return fmt.Sprintf(l.DaysAgoFormat, days)
	default:
		return t.Format(l.DateLayout)
	}
}
