package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ===============================
// Date arithmetic
// ===============================

// Midnight normalizes t to 00:00:00 in its own location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekStart returns the most recent Sunday at or before t, at midnight.
func WeekStart(t time.Time) time.Time {
	d := Midnight(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// DayCell is one cell of a month grid.
type DayCell struct {
	Date    time.Time
	APIDate string
	Day     int
	InMonth bool
	Today   bool
	Past    bool
}

// MonthCalendarDays returns the full-week grid covering the month of t:
// leading and trailing days from adjacent months are included so the length
// is always divisible by 7 (typically 35 or 42). today controls the Today and
// Past flags and is midnight-normalized before comparison.
func MonthCalendarDays(t time.Time, today time.Time) []DayCell {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)

	start := WeekStart(first)
	end := WeekStart(last).AddDate(0, 0, 7)

	today = Midnight(today)

	var cells []DayCell
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		cells = append(cells, DayCell{
			Date:    d,
			APIDate: FormatDateForAPI(d),
			Day:     d.Day(),
			InMonth: d.Month() == first.Month() && d.Year() == first.Year(),
			Today:   d.Equal(today),
			Past:    d.Before(today),
		})
	}
	return cells
}

// WeekDates returns the seven dates of the week containing t, Sunday first.
func WeekDates(t time.Time) []time.Time {
	start := WeekStart(t)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// ===============================
// Hours
// ===============================

type Hour struct {
	Value   int
	Display string
}

// HoursOfDay returns the 24 hour rows of a Day/Week grid with 12-hour labels.
func HoursOfDay() []Hour {
	hours := make([]Hour, 24)
	for h := 0; h < 24; h++ {
		hours[h] = Hour{Value: h, Display: hourLabel(h)}
	}
	return hours
}

func hourLabel(h int) string {
	switch {
	case h == 0:
		return "12 AM"
	case h < 12:
		return fmt.Sprintf("%d AM", h)
	case h == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", h-12)
	}
}

// IsBusinessHour reports whether h falls in the styled business window.
// Visual only, never a scheduling constraint.
func IsBusinessHour(h int) bool {
	return h >= 8 && h < 18
}

// ===============================
// Formatting / parsing
// ===============================

// FormatDateForAPI renders YYYY-MM-DD from local calendar fields. Callers
// must not hand in timezone-shifted values or bucketing misaligns by a day.
func FormatDateForAPI(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseAPIDate parses YYYY-MM-DD in loc.
func ParseAPIDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, loc)
}

// FormatTimeDisplay converts 24-hour "HH:MM" to a 12-hour display string.
// Empty input yields the empty string.
func FormatTimeDisplay(hm string) string {
	if hm == "" {
		return ""
	}
	h, m, ok := splitHM(hm)
	if !ok {
		return hm
	}

	suffix := "am"
	if h >= 12 {
		suffix = "pm"
	}
	h = h % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, m, suffix)
}

// StartHour returns the integer hour floor of an "HH:MM" string, or 0 when
// the value is absent or unparseable.
func StartHour(hm string) int {
	h, _, ok := splitHM(hm)
	if !ok || h < 0 || h > 23 {
		return 0
	}
	return h
}

func splitHM(hm string) (int, int, bool) {
	parts := strings.SplitN(hm, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	return h, m, true
}
